// Package entity maps HTML named character references to Unicode code points.
package entity

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

var (
	exact  = make(map[string]rune, len(table))
	folded = make(map[string]rune, len(table))
)

func init() {
	for _, e := range table {
		exact[e.name] = e.code
		folded[strings.ToUpper(e.name)] = e.code
	}
}

// Lookup returns the code point for an HTML 4 entity name. Names are matched
// exactly first so that pairs such as "Alpha" and "alpha" keep their own code
// points, then case-insensitively.
func Lookup(name string) (rune, bool) {
	if code, ok := exact[name]; ok {
		return code, true
	}
	code, ok := folded[strings.ToUpper(name)]
	return code, ok
}

// LookupHTML5 resolves names from the much larger HTML5 named character
// reference list. Only references that decode to a single code point are
// reported.
func LookupHTML5(name string) (rune, bool) {
	if name == "" {
		return 0, false
	}
	ref := "&" + name + ";"
	decoded := html.UnescapeString(ref)
	if decoded == ref || utf8.RuneCountInString(decoded) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(decoded)
	return r, true
}

// Len reports the number of entries in the HTML 4 table.
func Len() int {
	return len(exact)
}
