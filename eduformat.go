// Package eduformat turns raw, loosely-structured educational text (extracted
// from PDFs and slide decks, or emitted as tagged content blocks by an
// upstream generation step) into stable, styled markup. Rendering is fully
// deterministic: no model is called, formatting never fails, and degraded
// output is always readable.
package eduformat

import (
	"errors"
	"strings"
)

// AgeGroup selects age-appropriate styling defaults.
type AgeGroup string

const (
	AgeElementary AgeGroup = "elementary"
	AgeMiddle     AgeGroup = "middle-school"
	AgeHigh       AgeGroup = "high-school"
	AgeAdult      AgeGroup = "adult"
)

// ColorScheme names the two built-in styling schemes.
type ColorScheme string

const (
	SchemeVibrant ColorScheme = "vibrant"
	SchemeSubtle  ColorScheme = "subtle"
)

// Document is a text document to be formatted, with an ID used only for
// logging context in batch runs.
type Document struct {
	ID      string
	Content string
}

// Chapter is caller-supplied chapter metadata used by the chapter-marking
// enrichment pass.
type Chapter struct {
	Number int    `yaml:"number"`
	Title  string `yaml:"title"`
}

// VocabularyTerm is a term/definition pair used by the vocabulary
// highlighting pass.
type VocabularyTerm struct {
	Term       string `yaml:"term"`
	Definition string `yaml:"definition"`
}

// Exercise locates a practice question inside the document text so export
// services can attach interactive behavior to it.
type Exercise struct {
	ID       string `yaml:"id"`
	Type     string `yaml:"type"`
	Question string `yaml:"question"`
}

var (
	// ErrEmptyBlockList is returned when a structured render is requested
	// with no blocks.
	ErrEmptyBlockList = errors.New("content block list is empty")
	// ErrMissingBlockType is returned when a block carries no type
	// discriminant.
	ErrMissingBlockType = errors.New("content block has no type")
	// ErrUnknownBlockType is returned when a block's type is outside the
	// closed set.
	ErrUnknownBlockType = errors.New("unknown content block type")
)

func cleanContent(content string) string {
	// Removes spaces and null characters.
	str := strings.TrimSpace(content)
	return strings.ReplaceAll(str, "\x00", "")
}
