package eduformat

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/studycraft/go-eduformat/heuristic"
)

// Options controls formatting. The zero value is usable: adult age group,
// subtle colors, icons on, default paragraph chunking.
type Options struct {
	// AgeGroup selects the styling class on the output wrapper. Empty means
	// AgeAdult.
	AgeGroup AgeGroup
	// ColorScheme overrides the scheme derived from the age group.
	ColorScheme ColorScheme
	// DisableIcons strips emoji icons from callouts.
	DisableIcons bool
	// MaxSentencesPerParagraph caps paragraph length before chunking. Zero
	// means the default of four.
	MaxSentencesPerParagraph int
	// Concurrency bounds FormatBatch workers. Zero means the default of four.
	Concurrency int

	// Chapters, Vocabulary, and Exercises drive post-assembly enrichment of
	// heuristic output. All three are optional.
	Chapters   []Chapter
	Vocabulary []VocabularyTerm
	Exercises  []Exercise

	// ContentBlocks, when non-empty, takes precedence over heuristic
	// formatting: the document is rendered from this validated structure
	// instead of being analyzed.
	ContentBlocks []ContentBlock
}

func (o Options) ageOrDefault() AgeGroup {
	if o.AgeGroup == "" {
		return AgeAdult
	}
	return o.AgeGroup
}

func (o Options) maxSentences() int {
	if o.MaxSentencesPerParagraph <= 0 {
		return heuristic.DefaultMaxSentences
	}
	return o.MaxSentencesPerParagraph
}

// optionsFile is the on-disk shape of an options document.
type optionsFile struct {
	AgeGroup                 string           `yaml:"ageGroup"`
	ColorScheme              string           `yaml:"colorScheme"`
	DisableIcons             bool             `yaml:"disableIcons"`
	MaxSentencesPerParagraph int              `yaml:"maxSentencesPerParagraph"`
	Concurrency              int              `yaml:"concurrency"`
	Chapters                 []Chapter        `yaml:"chapters"`
	Vocabulary               []VocabularyTerm `yaml:"vocabulary"`
	Exercises                []Exercise       `yaml:"exercises"`
}

// LoadOptionsFile reads formatting options from a YAML file.
func LoadOptionsFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read options file: %w", err)
	}

	var file optionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Options{}, fmt.Errorf("failed to parse options file: %w", err)
	}

	return Options{
		AgeGroup:                 AgeGroup(file.AgeGroup),
		ColorScheme:              ColorScheme(file.ColorScheme),
		DisableIcons:             file.DisableIcons,
		MaxSentencesPerParagraph: file.MaxSentencesPerParagraph,
		Concurrency:              file.Concurrency,
		Chapters:                 file.Chapters,
		Vocabulary:               file.Vocabulary,
		Exercises:                file.Exercises,
	}, nil
}
