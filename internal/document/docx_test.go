package document

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParagraphs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"one chunk", "a b\nc d", []string{"a b", "c d"}},
		{"two chunks", "a b\nc\n\nd e", []string{"a b", "c", "", "d e"}},
		{"stray blank chunks", "\n\na\n\n\n\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := paragraphs(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("paragraphs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talk.docx")
	if err := Write("Talk", "hello world\nsecond line\n\nnext chunk", path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 4 || string(data[:2]) != "PK" {
		t.Error("Write() did not produce a zip container")
	}
}
