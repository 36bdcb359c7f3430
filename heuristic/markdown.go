package heuristic

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"
)

// FlattenMarkdown converts markdown-shaped input into the line-oriented form
// the assembler consumes: headings become header-classifiable lines, list
// items get explicit markers, thematic breaks become section dividers. Any
// parse anomaly degrades to returning the input unchanged; this path never
// fails.
func FlattenMarkdown(content string) (flat string) {
	defer func() {
		if r := recover(); r != nil {
			flat = content
		}
	}()

	source := []byte(content)
	doc := goldmark.New().Parser().Parse(gtext.NewReader(source))

	var lines []string
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		lines = append(lines, flattenBlock(node, source)...)
		lines = append(lines, "")
	}

	out := strings.TrimSpace(strings.Join(lines, "\n"))
	if out == "" {
		return content
	}
	return out
}

func flattenBlock(node ast.Node, source []byte) []string {
	switch n := node.(type) {
	case *ast.Heading:
		text := strings.TrimSpace(blockText(n, source))
		if text == "" {
			return nil
		}
		if n.Level <= 2 {
			// Top-level headings surface through the ALL-CAPS header rule;
			// the classifier title-cases them back on render.
			return []string{strings.ToUpper(text)}
		}
		if !strings.HasSuffix(text, ":") && !strings.HasSuffix(text, "?") {
			text += ":"
		}
		return []string{text}

	case *ast.List:
		return flattenList(n, source)

	case *ast.ThematicBreak:
		return []string{"---"}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return strings.Split(strings.TrimRight(blockText(node, source), "\n"), "\n")

	case *ast.Blockquote:
		var lines []string
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			lines = append(lines, flattenBlock(child, source)...)
		}
		return lines

	default:
		text := strings.TrimSpace(blockText(node, source))
		if text == "" {
			return nil
		}
		return []string{collapseWhitespace(text)}
	}
}

func flattenList(list *ast.List, source []byte) []string {
	var lines []string
	ordinal := list.Start
	if ordinal == 0 {
		ordinal = 1
	}

	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		text := collapseWhitespace(strings.TrimSpace(blockText(item, source)))
		if text == "" {
			continue
		}
		if list.IsOrdered() {
			lines = append(lines, fmt.Sprintf("%d. %s", ordinal, text))
			ordinal++
		} else {
			lines = append(lines, "• "+text)
		}
	}
	return lines
}

// blockText joins the raw source segments of a block node, recursing into
// children for container nodes that carry no segments of their own.
func blockText(node ast.Node, source []byte) string {
	if block, ok := node.(interface{ Lines() *gtext.Segments }); ok {
		if lines := block.Lines(); lines != nil && lines.Len() > 0 {
			var b strings.Builder
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				b.Write(seg.Value(source))
			}
			return b.String()
		}
	}

	var b strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		b.WriteString(blockText(child, source))
		b.WriteByte(' ')
	}
	return b.String()
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
