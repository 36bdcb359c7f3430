package heuristic

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// HeaderMatch is the result of classifying a line as a section header.
type HeaderMatch struct {
	Level int
	Text  string
}

// ListKind discriminates the three recognized list-marker styles.
type ListKind string

const (
	ListBullet   ListKind = "bullet"
	ListNumbered ListKind = "numbered"
	ListLettered ListKind = "lettered"
)

// ListItemMatch is the result of classifying a line as a list item, with the
// marker already stripped from the item text.
type ListItemMatch struct {
	Kind ListKind
	Text string
}

var titleCaser = cases.Title(language.English)

var (
	numberedHeadingPattern = regexp.MustCompile(`(?i)^(step|example|part|section|chapter|lesson|unit|question|problem|exercise)\s+\d+\s*[:.)]`)
	bulletItemPattern      = regexp.MustCompile(`^[•·▪‣◦*+-]\s+(.+)$`)
	numberedItemPattern    = regexp.MustCompile(`^\d{1,3}[.)]\s+(.+)$`)
	letteredItemPattern    = regexp.MustCompile(`^[a-zA-Z][.)]\s+(.+)$`)
)

// MatchHeader classifies a trimmed line as a header. The next line is used
// only to disambiguate short title-cased lines from short sentences. Rules
// run in a fixed order; the first hit wins.
func MatchHeader(line, next string) (HeaderMatch, bool) {
	bare := strings.TrimSpace(strings.TrimSuffix(line, ":"))

	for _, kw := range SectionKeywords {
		if strings.EqualFold(kw, bare) {
			return HeaderMatch{Level: 2, Text: kw}, true
		}
	}

	if len(line) >= 6 && isAllCaps(line) {
		return HeaderMatch{Level: 2, Text: titleCaser.String(strings.ToLower(line))}, true
	}

	if numberedHeadingPattern.MatchString(line) {
		return HeaderMatch{Level: 3, Text: strings.TrimSuffix(line, ":")}, true
	}

	if len(line) < 50 && strings.HasSuffix(line, ":") {
		if _, isItem := MatchListItem(line); !isItem {
			return HeaderMatch{Level: 3, Text: bare}, true
		}
	}

	if len(line) < 40 && isTitleCase(line) && len(next) > len(line) {
		return HeaderMatch{Level: 3, Text: line}, true
	}

	return HeaderMatch{}, false
}

// MatchListItem classifies a trimmed line as a list item. Lettered markers
// are checked last so a numbered marker never reads as lettered.
func MatchListItem(line string) (ListItemMatch, bool) {
	if m := bulletItemPattern.FindStringSubmatch(line); m != nil {
		return ListItemMatch{Kind: ListBullet, Text: m[1]}, true
	}
	if m := numberedItemPattern.FindStringSubmatch(line); m != nil {
		return ListItemMatch{Kind: ListNumbered, Text: m[1]}, true
	}
	if m := letteredItemPattern.FindStringSubmatch(line); m != nil {
		return ListItemMatch{Kind: ListLettered, Text: m[1]}, true
	}
	return ListItemMatch{}, false
}

// isAllCaps reports whether the line contains letters and none of them are
// lowercase.
func isAllCaps(line string) bool {
	hasLetter := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// isTitleCase reports whether a line reads like a short title: it starts
// uppercase, carries no terminal punctuation, and most of its words are
// capitalized. A mid-line colon means a field or definition shape, which
// later classifier stages own.
func isTitleCase(line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false
	}
	if strings.Contains(line, ": ") {
		return false
	}
	last := line[len(line)-1]
	if last == '.' || last == '!' || last == '?' || last == ',' || last == ';' {
		return false
	}

	capitalized := 0
	for _, w := range words {
		r := []rune(w)[0]
		if unicode.IsUpper(r) || unicode.IsDigit(r) {
			capitalized++
		}
	}
	if !unicode.IsUpper([]rune(words[0])[0]) {
		return false
	}
	return float64(capitalized)/float64(len(words)) >= 0.6
}
