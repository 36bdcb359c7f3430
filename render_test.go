package eduformat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eduformat "github.com/studycraft/go-eduformat"
	"github.com/studycraft/go-eduformat/heuristic"
)

func TestRenderBlocksWrapper(t *testing.T) {
	blocks := []eduformat.ContentBlock{
		{Type: eduformat.BlockParagraph, Content: "Hello class."},
	}

	t.Run("Elementary defaults to vibrant", func(t *testing.T) {
		got := eduformat.NewRenderer().RenderBlocks(blocks, eduformat.Options{AgeGroup: eduformat.AgeElementary})
		assert.Contains(t, got, `<div class="doc doc-age-elementary doc-scheme-vibrant"`)
	})

	t.Run("Adult defaults to subtle", func(t *testing.T) {
		got := eduformat.NewRenderer().RenderBlocks(blocks, eduformat.Options{})
		assert.Contains(t, got, `<div class="doc doc-age-adult doc-scheme-subtle"`)
	})

	t.Run("Explicit scheme wins", func(t *testing.T) {
		got := eduformat.NewRenderer().RenderBlocks(blocks, eduformat.Options{
			AgeGroup:    eduformat.AgeElementary,
			ColorScheme: eduformat.SchemeSubtle,
		})
		assert.Contains(t, got, "doc-scheme-subtle")
	})
}

func TestRenderBlocksKinds(t *testing.T) {
	r := eduformat.NewRenderer()

	tests := []struct {
		name             string
		block            eduformat.ContentBlock
		verificationFunc func(t *testing.T, got string)
	}{
		{
			name:  "Header with anchor",
			block: eduformat.ContentBlock{Type: eduformat.BlockHeader, Title: "Adding Fractions", Level: 2},
			verificationFunc: func(t *testing.T, got string) {
				anchor := heuristic.HeadingAnchor("Adding Fractions")
				assert.Contains(t, got, `<h2 id="`+anchor+`">Adding Fractions</h2>`)
			},
		},
		{
			name:  "Header level clamped",
			block: eduformat.ContentBlock{Type: eduformat.BlockHeader, Title: "Deep", Level: 9},
			verificationFunc: func(t *testing.T, got string) {
				assert.Contains(t, got, "<h2")
			},
		},
		{
			name:  "Metadata from key and value",
			block: eduformat.ContentBlock{Type: eduformat.BlockMetadata, Key: "Grade", Value: "4"},
			verificationFunc: func(t *testing.T, got string) {
				assert.Contains(t, got, `<span class="meta-field">Grade:</span> 4`)
			},
		},
		{
			name: "Formula renders math inside code",
			block: eduformat.ContentBlock{
				Type: eduformat.BlockFormula, Content: "x + 5 = 12",
			},
			verificationFunc: func(t *testing.T, got string) {
				assert.Contains(t, got, `<code class="formula">`)
				assert.Contains(t, got, "math-algebraic")
			},
		},
		{
			name: "Step by step renders as steps list",
			block: eduformat.ContentBlock{
				Type:  eduformat.BlockStepByStep,
				Items: []string{"Find the denominator", "Add numerators"},
			},
			verificationFunc: func(t *testing.T, got string) {
				assert.Contains(t, got, `<ol class="steps">`)
				assert.Equal(t, 2, strings.Count(got, "<li>"))
			},
		},
		{
			name: "Table with headers and rows",
			block: eduformat.ContentBlock{
				Type:    eduformat.BlockTable,
				Headers: []string{"Fraction", "Decimal"},
				Rows:    [][]string{{"1/2", "0.5"}, {"1/4", "0.25"}},
			},
			verificationFunc: func(t *testing.T, got string) {
				assert.Contains(t, got, `<table class="content-table">`)
				assert.Contains(t, got, "<th>Fraction</th>")
				assert.Equal(t, 2, strings.Count(got, "<tr>")-1)
			},
		},
		{
			name: "Definition uses dfn",
			block: eduformat.ContentBlock{
				Type: eduformat.BlockDefinition,
				Term: "Numerator", Definition: "the number above the bar",
			},
			verificationFunc: func(t *testing.T, got string) {
				assert.Contains(t, got, `<dfn class="definition-term">Numerator</dfn>`)
			},
		},
		{
			name: "Question and answer",
			block: eduformat.ContentBlock{
				Type: eduformat.BlockQuestion, Question: "What is 1/2 + 1/4?",
			},
			verificationFunc: func(t *testing.T, got string) {
				assert.Contains(t, got, `<p class="question">`)
				assert.Contains(t, got, "math-fraction")
			},
		},
		{
			name:  "Divider",
			block: eduformat.ContentBlock{Type: eduformat.BlockDivider},
			verificationFunc: func(t *testing.T, got string) {
				assert.Contains(t, got, `<hr class="section-break"/>`)
			},
		},
		{
			name: "Content is escaped",
			block: eduformat.ContentBlock{
				Type: eduformat.BlockParagraph, Content: "Watch for <script> tags & such.",
			},
			verificationFunc: func(t *testing.T, got string) {
				assert.NotContains(t, got, "<script>")
				assert.Contains(t, got, "&lt;script&gt;")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := r.RenderBlocks([]eduformat.ContentBlock{tc.block}, eduformat.Options{})
			tc.verificationFunc(t, got)
		})
	}
}

func TestRenderContentSummary(t *testing.T) {
	content := eduformat.StructuredContent{
		Blocks: []eduformat.ContentBlock{
			{Type: eduformat.BlockParagraph, Content: "Short paragraph."},
		},
		Summary: eduformat.ContentSummary{ReadMinutes: 7},
	}

	got := eduformat.NewRenderer().RenderContent(content, eduformat.Options{})
	assert.Contains(t, got, `data-read-minutes="7"`)
	assert.Contains(t, got, `data-blocks="1"`)
}

func TestRenderBlocksDerivesSummary(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 250; i++ {
		b.WriteString("word ")
	}
	blocks := []eduformat.ContentBlock{
		{Type: eduformat.BlockParagraph, Content: strings.TrimSpace(b.String())},
	}

	// 250 words at 200 words per minute round up to 2 minutes.
	got := eduformat.NewRenderer().RenderBlocks(blocks, eduformat.Options{})
	assert.Contains(t, got, `data-read-minutes="2"`)
}

func TestRenderBlocksIconToggle(t *testing.T) {
	blocks := []eduformat.ContentBlock{
		{Type: eduformat.BlockTip, Content: "Check your work."},
	}

	withIcons := eduformat.NewRenderer().RenderBlocks(blocks, eduformat.Options{})
	assert.Contains(t, withIcons, "💡")

	withoutIcons := eduformat.NewRenderer().RenderBlocks(blocks, eduformat.Options{DisableIcons: true})
	assert.NotContains(t, withoutIcons, "💡")
}

func TestRenderBlocksParagraphChunking(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 9; i++ {
		b.WriteString("Another full sentence sits right here. ")
	}
	blocks := []eduformat.ContentBlock{
		{Type: eduformat.BlockParagraph, Content: strings.TrimSpace(b.String())},
	}

	got := eduformat.NewRenderer().RenderBlocks(blocks, eduformat.Options{})
	require.Equal(t, 3, strings.Count(got, "<p>"), "nine sentences should split into three paragraphs")
}
