package shelf

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// letterOffset marks the first store index of a run of items whose sort
// labels share a leading letter.
type letterOffset struct {
	Index  int
	Letter rune
}

// letterTable is a run-length index of leading sort-label letters, in store
// order.
type letterTable []letterOffset

// leadingLetter folds the first letter of a sort label: accents stripped,
// upper-cased. Returns 0 for an empty label.
func leadingLetter(caser cases.Caser, label string) rune {
	for _, r := range norm.NFD.String(label) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		up := caser.String(string(r))
		first, _ := utf8.DecodeRuneInString(up)
		return first
	}
	return 0
}

// buildLetterTable scans items once and records every index where the
// leading letter changes. Items with empty sort labels are skipped.
func buildLetterTable(items []Item) letterTable {
	caser := cases.Upper(language.Und)
	var table letterTable
	for i, it := range items {
		letter := leadingLetter(caser, it.SortLabel())
		if letter == 0 {
			continue
		}
		if len(table) == 0 || table[len(table)-1].Letter != letter {
			table = append(table, letterOffset{Index: i, Letter: letter})
		}
	}
	return table
}

// next returns the first entry strictly after index.
func (t letterTable) next(index int) (letterOffset, bool) {
	i := sort.Search(len(t), func(i int) bool { return t[i].Index > index })
	if i == len(t) {
		return letterOffset{}, false
	}
	return t[i], true
}

// prev returns the last entry strictly before index. The scan stops at the
// first entry.
func (t letterTable) prev(index int) (letterOffset, bool) {
	i := sort.Search(len(t), func(i int) bool { return t[i].Index >= index })
	if i == 0 {
		return letterOffset{}, false
	}
	return t[i-1], true
}

// hasPrefixFold reports whether label starts with prefix, ignoring case and
// accents.
func hasPrefixFold(label, prefix string) bool {
	fold := cases.Fold()
	l := stripMarks(fold.String(label))
	p := stripMarks(fold.String(prefix))
	return strings.HasPrefix(l, p)
}

func stripMarks(s string) string {
	var b strings.Builder
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
