package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vicky469/audio-classifier/internal/workflow"
)

const testVTT = "WEBVTT\n\n00:00:00.000 --> 00:00:02.000\nhello and welcome\n"

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", missing, "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeCaption(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "talk.en.vtt")
	if err := os.WriteFile(path, []byte(testVTT), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCleanPrint(t *testing.T) {
	input := writeCaption(t)
	outDir := t.TempDir()

	got, err := runCLI(t, "clean", "--out", outDir, "--print", input)
	if err != nil {
		t.Fatalf("clean error = %v", err)
	}
	if got != "hello and welcome.\n" {
		t.Errorf("output = %q, want %q", got, "hello and welcome.\n")
	}
	if _, err := os.Stat(filepath.Join(outDir, "talk.en_clean.txt")); err != nil {
		t.Errorf("clean file not written: %v", err)
	}
}

func TestCleanSummary(t *testing.T) {
	input := writeCaption(t)
	outDir := t.TempDir()

	got, err := runCLI(t, "clean", "--out", outDir, input)
	if err != nil {
		t.Fatalf("clean error = %v", err)
	}
	for _, want := range []string{"talk.en.vtt", "word-segmented", "ok"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestCleanMissingFile(t *testing.T) {
	got, err := runCLI(t, "clean", "--out", t.TempDir(), filepath.Join(t.TempDir(), "nope.vtt"))
	if err == nil {
		t.Fatal("clean of missing file succeeded")
	}
	if !strings.Contains(got, "failed") {
		t.Errorf("summary should mark the file failed:\n%s", got)
	}
}

func TestCleanUnknownLanguage(t *testing.T) {
	_, err := runCLI(t, "clean", "--lang", "!!", writeCaption(t))
	if err == nil || !strings.Contains(err.Error(), "unknown language") {
		t.Fatalf("error = %v, want unknown language", err)
	}
}

func TestCleanRequiresArgs(t *testing.T) {
	if _, err := runCLI(t, "clean"); err == nil {
		t.Fatal("clean without files succeeded")
	}
}

func TestUploadWithoutToken(t *testing.T) {
	t.Setenv("NOTION_TOKEN", "")
	_, err := runCLI(t, "upload", writeCaption(t))
	if !errors.Is(err, workflow.ErrNoUploader) {
		t.Fatalf("error = %v, want ErrNoUploader", err)
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	got := renderTable(&buf, []string{"A", "B"}, [][]string{{"one"}, {"two", "three"}})
	for _, want := range []string{"one", "two", "three"} {
		if !strings.Contains(got, want) {
			t.Errorf("table missing %q:\n%s", want, got)
		}
	}
	if renderTable(&buf, nil, nil) != "" {
		t.Error("table without headers should be empty")
	}
}

func TestRenderRunSummary(t *testing.T) {
	var buf bytes.Buffer
	res := workflow.Results{
		Download: workflow.DownloadStep{Success: true, CaptionPath: "talk.txt", Transcribed: true},
		Process:  workflow.ProcessStep{Success: true, OutputPath: "out/talk_clean.txt"},
		Upload:   workflow.UploadStep{Err: errors.New("unauthorized")},
	}
	got := renderRunSummary(&buf, res)
	for _, want := range []string{"(transcribed)", "out/talk_clean.txt", "unauthorized", "failed"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}
