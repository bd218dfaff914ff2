// Package words provides the word bank used by the game engine: secret word
// candidates, dictionary lookups and the built-in word packs.
//
// A Bank is read-only after construction and safe for concurrent use, so a
// single bank can be shared by every engine in the process.
package words

import (
	"errors"
	"math/rand"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// ErrEmptyBank is returned when no secret word candidates remain after
// normalization and filtering. It indicates a broken word source.
var ErrEmptyBank = errors.New("words: no secret word candidates")

// Bank owns the secret word candidates and the dictionary of accepted guesses.
type Bank struct {
	answers    []string
	dictionary map[string]struct{}
	lengths    []int
}

type bankOptions struct {
	length int
}

// BankOption configures NewBank.
type BankOption func(*bankOptions)

// WithLength restricts secret candidates to words of n letters.
// The dictionary keeps every length. n <= 0 disables the filter.
func WithLength(n int) BankOption {
	return func(o *bankOptions) {
		o.length = n
	}
}

// NewBank builds a bank from raw answer and allowed-guess lists.
// Words are upper-cased, trimmed and de-duplicated; entries containing
// anything other than letters are dropped. Every answer is also a valid guess.
func NewBank(answers, allowed []string, opts ...BankOption) (*Bank, error) {
	var o bankOptions
	for _, opt := range opts {
		opt(&o)
	}

	normAnswers := normalize(answers)
	normAllowed := normalize(allowed)

	dictionary := make(map[string]struct{}, len(normAnswers)+len(normAllowed))
	for _, w := range normAnswers {
		dictionary[w] = struct{}{}
	}
	for _, w := range normAllowed {
		dictionary[w] = struct{}{}
	}

	if o.length > 0 {
		normAnswers = lo.Filter(normAnswers, func(w string, _ int) bool {
			return utf8.RuneCountInString(w) == o.length
		})
	}
	if len(normAnswers) == 0 {
		return nil, ErrEmptyBank
	}

	lengths := lo.Uniq(lo.Map(normAnswers, func(w string, _ int) int {
		return utf8.RuneCountInString(w)
	}))
	sort.Ints(lengths)

	return &Bank{
		answers:    normAnswers,
		dictionary: dictionary,
		lengths:    lengths,
	}, nil
}

// Pick returns a uniformly chosen secret word.
func (b *Bank) Pick(r *rand.Rand) string {
	return b.answers[r.Intn(len(b.answers))]
}

// PickExcluding returns a uniformly chosen secret word different from prev.
// When prev is the only candidate it is returned anyway.
func (b *Bank) PickExcluding(r *rand.Rand, prev string) string {
	prev = strings.ToUpper(prev)
	rest := lo.Filter(b.answers, func(w string, _ int) bool {
		return w != prev
	})
	if len(rest) == 0 {
		return b.Pick(r)
	}
	return rest[r.Intn(len(rest))]
}

// IsValid reports whether text is a dictionary word, ignoring case and
// surrounding whitespace.
func (b *Bank) IsValid(text string) bool {
	_, ok := b.dictionary[strings.ToUpper(strings.TrimSpace(text))]
	return ok
}

// Len returns the number of secret candidates.
func (b *Bank) Len() int {
	return len(b.answers)
}

// DictionarySize returns the number of accepted guesses, answers included.
func (b *Bank) DictionarySize() int {
	return len(b.dictionary)
}

// Lengths returns the distinct secret word lengths, ascending.
func (b *Bank) Lengths() []int {
	return append([]int(nil), b.lengths...)
}

// normalize upper-cases and trims each word, keeping only purely
// alphabetic entries, and removes duplicates while preserving order.
func normalize(list []string) []string {
	out := make([]string, 0, len(list))
	for _, raw := range list {
		w := strings.ToUpper(strings.TrimSpace(raw))
		if w == "" || !isAlpha(w) {
			continue
		}
		out = append(out, w)
	}
	return lo.Uniq(out)
}

// isAlpha reports whether s is all upper-case ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
