package publisher

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf16"

	"go.trai.ch/digest/internal/core/domain"
)

var linkPattern = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)

// Link is a reference stripped out of report text.
// Offset is the rune offset of the label in the stripped text.
type Link struct {
	Label  string
	URL    string
	Offset int
}

// ExtractLinks replaces every [label](url) with label and returns the links in order.
// Duplicate labels are kept.
func ExtractLinks(text string) (string, []Link) {
	var (
		b     strings.Builder
		links []Link
		last  int
		runes int
	)

	for _, m := range linkPattern.FindAllStringSubmatchIndex(text, -1) {
		before := text[last:m[0]]
		b.WriteString(before)
		runes += len([]rune(before))

		label := text[m[2]:m[3]]
		links = append(links, Link{Label: label, URL: text[m[4]:m[5]], Offset: runes})
		b.WriteString(label)
		runes += len([]rune(label))
		last = m[1]
	}
	b.WriteString(text[last:])

	return b.String(), links
}

// LocateLinks finds each link label in the document text and returns its range in
// UTF-16 code units. The body is expected to start with the stripped text, so a
// label found at its recorded offset wins. Otherwise the k-th link matches the first
// occurrence of its label after the previous match that is not followed by a letter
// or digit. Links whose label cannot be found are returned in missing.
func LocateLinks(runs []domain.TextRun, links []Link) (ranges []domain.StyleRange, missing []Link) {
	units, index := flatten(runs)

	cursor := 0
	for _, link := range links {
		needle := utf16.Encode([]rune(link.Label))
		if len(needle) == 0 {
			missing = append(missing, link)
			continue
		}

		pos := unitOffset(units, link.Offset)
		if pos < cursor || !matchAt(units, needle, pos) {
			pos = find(units, needle, cursor)
		}
		if pos < 0 {
			missing = append(missing, link)
			continue
		}

		end := pos + len(needle)
		ranges = append(ranges, domain.StyleRange{
			Start: index[pos],
			End:   index[end-1] + 1,
			URL:   link.URL,
		})
		cursor = end
	}
	return ranges, missing
}

// unitOffset converts a rune offset into a code unit offset, or -1 past the end.
func unitOffset(units []uint16, runes int) int {
	pos := 0
	for ; runes > 0 && pos < len(units); runes-- {
		if utf16.IsSurrogate(rune(units[pos])) && pos+1 < len(units) {
			pos++
		}
		pos++
	}
	if runes > 0 {
		return -1
	}
	return pos
}

func matchAt(units, needle []uint16, pos int) bool {
	if pos < 0 || pos+len(needle) > len(units) {
		return false
	}
	return hasPrefix(units[pos:], needle) && boundaryAt(units, pos+len(needle))
}

func find(haystack, needle []uint16, from int) int {
	for i := from; i+len(needle) <= len(haystack); i++ {
		if matchAt(haystack, needle, i) {
			return i
		}
	}
	return -1
}

// flatten concatenates runs in document order and maps every code unit to its document index.
func flatten(runs []domain.TextRun) ([]uint16, []int64) {
	sorted := make([]domain.TextRun, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].StartIndex < sorted[j].StartIndex })

	var units []uint16
	var index []int64
	for _, run := range sorted {
		encoded := utf16.Encode([]rune(run.Content))
		for i, u := range encoded {
			units = append(units, u)
			index = append(index, run.StartIndex+int64(i))
		}
	}
	return units, index
}

func hasPrefix(s, prefix []uint16) bool {
	for i, u := range prefix {
		if s[i] != u {
			return false
		}
	}
	return true
}

// boundaryAt reports whether the code unit at pos does not continue a word.
func boundaryAt(units []uint16, pos int) bool {
	if pos >= len(units) {
		return true
	}
	r := rune(units[pos])
	if utf16.IsSurrogate(r) && pos+1 < len(units) {
		r = utf16.DecodeRune(r, rune(units[pos+1]))
	}
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
