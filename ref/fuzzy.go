package ref

import(
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Ratio is a [0,100] similarity between two strings: 100 for identical, falling with the
// edit distance relative to the longer string. Empty strings score 0 against anything.
func Ratio(s1, s2 string) int {
	if s1 == "" || s2 == "" { return 0 }
	if s1 == s2 { return 100 }

	n := utf8.RuneCountInString(s1)
	if n2 := utf8.RuneCountInString(s2); n2 > n { n = n2 }

	d := levenshtein.ComputeDistance(s1, s2)
	return int(math.Round(100.0 * float64(n-d) / float64(n)))
}

// TokenSetRatio compares two strings as sets of words, so that word order doesn't matter, and
// one string being a subset of the other scores 100 ("Nashville" vs "NASHVILLE INTL").
//
// Both strings are lowercased and stripped of punctuation; the shared words (sorted) are then
// compared against each side's full sorted word list, and the best of those ratios is returned.
func TokenSetRatio(s1, s2 string) int {
	t1,t2 := tokenSet(s1), tokenSet(s2)
	if len(t1) == 0 || len(t2) == 0 { return 0 }

	both,only1,only2 := []string{}, []string{}, []string{}
	for w,_ := range t1 {
		if t2[w] {
			both = append(both, w)
		} else {
			only1 = append(only1, w)
		}
	}
	for w,_ := range t2 {
		if !t1[w] { only2 = append(only2, w) }
	}
	sort.Strings(both)
	sort.Strings(only1)
	sort.Strings(only2)

	sect := strings.Join(both, " ")
	combined1 := strings.TrimSpace(sect + " " + strings.Join(only1, " "))
	combined2 := strings.TrimSpace(sect + " " + strings.Join(only2, " "))

	best := Ratio(sect, combined1)
	if r := Ratio(sect, combined2); r > best { best = r }
	if r := Ratio(combined1, combined2); r > best { best = r }
	return best
}

func tokenSet(s string) map[string]bool {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) { return unicode.ToLower(r) }
		return ' '
	}, s)

	set := map[string]bool{}
	for _,w := range strings.Fields(clean) { set[w] = true }
	return set
}
