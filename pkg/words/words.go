// Package words manages custom profanity terms passed to PurgoMalum in the
// add parameter.
package words

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Limits documented by PurgoMalum for the add parameter.
const (
	MaxWords  = 10
	MaxLength = 200
)

var (
	ErrInvalidWord  = errors.New("invalid word")
	ErrListTooLarge = errors.New("word list too large")
)

var wordPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

type List struct {
	words []string
}

// New returns a List of the given words. Words are lowercased and
// duplicates dropped, the filter is case-insensitive anyway.
func New(words ...string) (*List, error) {
	var l List
	seen := make(map[string]bool)

	for _, w := range words {
		w = normalize(w)
		if !wordPattern.MatchString(w) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, w)
		}
		if seen[w] {
			continue
		}
		seen[w] = true
		l.words = append(l.words, w)
	}

	if len(l.words) > MaxWords {
		return nil, fmt.Errorf("%w: %d words, max %d", ErrListTooLarge, len(l.words), MaxWords)
	}
	if n := len(l.String()); n > MaxLength {
		return nil, fmt.Errorf("%w: %d characters, max %d", ErrListTooLarge, n, MaxLength)
	}

	return &l, nil
}

// LoadFromJSON reads a JSON array of words from path.
func LoadFromJSON(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, err
	}

	return New(words...)
}

func normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// Len returns the number of words in the list.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.words)
}

// String returns the list in the comma separated form the service expects.
func (l *List) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(l.words, ",")
}

// Merge appends the list to add, a comma separated list supplied by a caller,
// skipping words add already has. Caller words are passed through unchanged.
func (l *List) Merge(add string) string {
	if l.Len() == 0 {
		return add
	}
	if strings.TrimSpace(add) == "" {
		return l.String()
	}

	present := make(map[string]bool)
	for _, w := range strings.Split(add, ",") {
		present[normalize(w)] = true
	}

	merged := []string{add}
	for _, w := range l.words {
		if !present[w] {
			merged = append(merged, w)
		}
	}

	return strings.Join(merged, ",")
}
