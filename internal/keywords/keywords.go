// Package keywords carries the four Dart word lists the colouriser
// classifies identifiers against. The defaults ship with the package; hosts
// may extend each list from configuration.
package keywords

import (
	"strings"

	"github.com/techee/lexilla/internal/lexer"
)

// Set is an exact-match, case-sensitive word list.
type Set map[string]struct{}

// NewSet builds a Set from whitespace-separated words.
func NewSet(words string) Set {
	s := make(Set)
	for _, w := range strings.Fields(words) {
		s[w] = struct{}{}
	}
	return s
}

// Contains implements lexer.WordList.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Add inserts extra words into the set.
func (s Set) Add(words ...string) {
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			s[w] = struct{}{}
		}
	}
}

const (
	primaryWords = `abstract as assert async await base break case catch class const continue
		covariant default deferred do dynamic else enum export extends extension
		external factory final finally for get hide if implements import in
		interface is late library mixin new null of on operator part required
		rethrow return sealed set show static super switch sync this throw true
		try typedef var void when while with yield false`

	secondaryWords = `override deprecated pragma visibleForTesting protected immutable
		mustCallSuper nonVirtual optionalTypeArgs`

	tertiaryWords = `print identical identityHashCode main runtimeType hashCode toString
		noSuchMethod`

	typeWords = `bool double int num String List Map Set Object Function Never Null
		Iterable Iterator Symbol Record Type BigInt DateTime Duration Uri
		Future FutureOr Stream Comparable Exception Error StringBuffer
		RegExp Pattern Match RuneIterator Runes`
)

// Defaults returns the built-in word lists in keyword-index order.
func Defaults() [lexer.KeywordListCount]lexer.WordList {
	return [lexer.KeywordListCount]lexer.WordList{
		lexer.KeywordPrimary:   NewSet(primaryWords),
		lexer.KeywordSecondary: NewSet(secondaryWords),
		lexer.KeywordTertiary:  NewSet(tertiaryWords),
		lexer.KeywordType:      NewSet(typeWords),
	}
}

// WithExtensions returns the default lists with per-list extra words merged
// in. The slices are addressed by keyword index; missing entries extend
// nothing.
func WithExtensions(extra [lexer.KeywordListCount][]string) [lexer.KeywordListCount]lexer.WordList {
	lists := [lexer.KeywordListCount]lexer.WordList{}
	defaults := [lexer.KeywordListCount]string{primaryWords, secondaryWords, tertiaryWords, typeWords}
	for i, words := range defaults {
		s := NewSet(words)
		s.Add(extra[i]...)
		lists[i] = s
	}
	return lists
}
