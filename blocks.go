package eduformat

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	"github.com/studycraft/go-eduformat/internal"
)

// BlockType discriminates the closed set of content block kinds emitted by
// the upstream content-analysis step.
type BlockType string

const (
	BlockMetadata      BlockType = "metadata"
	BlockHeader        BlockType = "header"
	BlockParagraph     BlockType = "paragraph"
	BlockExplanation   BlockType = "explanation"
	BlockExample       BlockType = "example"
	BlockKeyConceptBox BlockType = "keyConceptBox"
	BlockRule          BlockType = "rule"
	BlockFormula       BlockType = "formula"
	BlockWordProblem   BlockType = "wordProblem"
	BlockBulletList    BlockType = "bulletList"
	BlockNumberedList  BlockType = "numberedList"
	BlockStepByStep    BlockType = "stepByStep"
	BlockTip           BlockType = "tip"
	BlockNote          BlockType = "note"
	BlockWarning       BlockType = "warning"
	BlockQuestion      BlockType = "question"
	BlockAnswer        BlockType = "answer"
	BlockDefinition    BlockType = "definition"
	BlockVocabulary    BlockType = "vocabulary"
	BlockTable         BlockType = "table"
	BlockDivider       BlockType = "divider"
)

var validBlockTypes = map[BlockType]bool{
	BlockMetadata: true, BlockHeader: true, BlockParagraph: true,
	BlockExplanation: true, BlockExample: true, BlockKeyConceptBox: true,
	BlockRule: true, BlockFormula: true, BlockWordProblem: true,
	BlockBulletList: true, BlockNumberedList: true, BlockStepByStep: true,
	BlockTip: true, BlockNote: true, BlockWarning: true,
	BlockQuestion: true, BlockAnswer: true, BlockDefinition: true,
	BlockVocabulary: true, BlockTable: true, BlockDivider: true,
}

// ContentBlock is one typed unit of document content. Blocks are
// order-significant and carry only primitive and string-array fields; they
// are validated on entry and never mutated.
type ContentBlock struct {
	Type BlockType `json:"type"`

	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
	Level   int    `json:"level,omitempty"`

	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`

	Term       string `json:"term,omitempty"`
	Definition string `json:"definition,omitempty"`

	Question string `json:"question,omitempty"`
	Answer   string `json:"answer,omitempty"`

	Items []string `json:"items,omitempty"`

	Headers []string   `json:"headers,omitempty"`
	Rows    [][]string `json:"rows,omitempty"`
}

// StructuredContent is an ordered block sequence plus derived document-level
// metadata. It is owned transiently by a single render call.
type StructuredContent struct {
	Blocks  []ContentBlock
	Summary ContentSummary
}

// ContentSummary carries document-level counts and a read-time estimate.
type ContentSummary struct {
	BlockCounts map[BlockType]int
	WordCount   int
	TokenCount  int
	ReadMinutes int
}

// ValidateBlocks checks that a block sequence is renderable: it is non-empty
// and every element carries a type from the closed set.
func ValidateBlocks(blocks []ContentBlock) error {
	if len(blocks) == 0 {
		return ErrEmptyBlockList
	}
	for i, block := range blocks {
		if block.Type == "" {
			return fmt.Errorf("block %d: %w", i, ErrMissingBlockType)
		}
		if !validBlockTypes[block.Type] {
			return fmt.Errorf("block %d: %w: %q", i, ErrUnknownBlockType, block.Type)
		}
	}
	return nil
}

// ParseContentBlocks decodes a content-block payload from the upstream
// analysis step. Model-emitted JSON is frequently malformed, so the payload
// is repaired before unmarshalling. Both a bare array and a {"blocks": [...]}
// wrapper are accepted. The result is validated before it is returned.
func ParseContentBlocks(raw string) ([]ContentBlock, error) {
	repaired, err := jsonrepair.RepairJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to repair block payload: %w", err)
	}

	var blocks []ContentBlock
	if err := json.Unmarshal([]byte(repaired), &blocks); err != nil {
		var wrapper struct {
			Blocks []ContentBlock `json:"blocks"`
		}
		if werr := json.Unmarshal([]byte(repaired), &wrapper); werr != nil {
			return nil, fmt.Errorf("failed to parse block payload: %w", err)
		}
		blocks = wrapper.Blocks
	}

	if err := ValidateBlocks(blocks); err != nil {
		return nil, fmt.Errorf("invalid block payload: %w", err)
	}
	return blocks, nil
}

// Summarize derives document-level metadata from a block sequence. Token
// counting failures degrade to a zero count rather than failing the render.
func Summarize(blocks []ContentBlock) ContentSummary {
	summary := ContentSummary{BlockCounts: make(map[BlockType]int, len(blocks))}

	var text strings.Builder
	for _, block := range blocks {
		summary.BlockCounts[block.Type]++
		for _, field := range blockTextFields(block) {
			text.WriteString(field)
			text.WriteByte('\n')
		}
	}

	summary.WordCount = len(strings.Fields(text.String()))
	if tokens, err := internal.CountTokens(text.String()); err == nil {
		summary.TokenCount = tokens
	}

	// 200 words per minute, rounded up, minimum one minute for any content.
	if summary.WordCount > 0 {
		summary.ReadMinutes = (summary.WordCount + 199) / 200
	}

	return summary
}

func blockTextFields(block ContentBlock) []string {
	fields := []string{
		block.Title, block.Content, block.Term, block.Definition,
		block.Question, block.Answer, block.Key, block.Value,
	}
	fields = append(fields, block.Items...)
	fields = append(fields, block.Headers...)
	for _, row := range block.Rows {
		fields = append(fields, row...)
	}

	nonEmpty := fields[:0]
	for _, f := range fields {
		if f != "" {
			nonEmpty = append(nonEmpty, f)
		}
	}
	return nonEmpty
}
