package transcript

// Kind tells the extractor whether a document carries timing markers.
type Kind int

const (
	KindPlainText Kind = iota
	KindTimedCaption
)

func (k Kind) String() string {
	if k == KindTimedCaption {
		return "timed-caption"
	}
	return "plain-text"
}

// RawDocument is the unprocessed input handed to Clean.
type RawDocument struct {
	Text string
	Kind Kind
}

// LanguageTag selects the chunking unit used by Format.
type LanguageTag int

const (
	// LanguageAuto means no tag was supplied; Format infers one from the text.
	LanguageAuto LanguageTag = iota
	WordSegmented
	CharacterSegmented
)

func (t LanguageTag) String() string {
	switch t {
	case WordSegmented:
		return "word-segmented"
	case CharacterSegmented:
		return "character-segmented"
	default:
		return "auto"
	}
}

// Segment is the caption text found between two timing markers.
type Segment struct {
	Index int
	Text  string
}
