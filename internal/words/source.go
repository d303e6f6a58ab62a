// Package words supplies target words for newly spawned hostiles.
package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"go-typing-defense/internal/text"
	"go-typing-defense/internal/utils"
)

//go:embed default_words.txt
var defaultList string

// Source hands out words for a given wave. Returned strings are already
// normalized.
type Source interface {
	// WordsForWave returns the pool eligible for the wave, in list order.
	WordsForWave(maxLen int) []string
	// RandomWord picks a word respecting the length ceiling. maxLen <= 0
	// means no ceiling. A filter that empties the pool falls back to the
	// unfiltered list.
	RandomWord(maxLen int) string
}

// ListSource is a Source backed by an in-memory word list.
type ListSource struct {
	words []string
	rng   *utils.PRNGService
}

// NewListSource normalizes and keeps the given words. An empty pool is a
// fatal configuration error: the game must never spawn a hostile with an
// empty target.
func NewListSource(raw []string, rng *utils.PRNGService) (*ListSource, error) {
	words := make([]string, 0, len(raw))
	for _, w := range raw {
		n := text.Normalize(w)
		if n != "" {
			words = append(words, n)
		}
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word pool is empty")
	}
	return &ListSource{words: words, rng: rng}, nil
}

// Default returns a source backed by the embedded word list.
func Default(rng *utils.PRNGService) (*ListSource, error) {
	return NewListSource(strings.Fields(defaultList), rng)
}

// LoadFile reads one word per line, skipping blanks.
func LoadFile(path string, rng *utils.PRNGService) (*ListSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer file.Close()

	var raw []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		raw = append(raw, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return NewListSource(raw, rng)
}

func (s *ListSource) WordsForWave(maxLen int) []string {
	if maxLen <= 0 {
		out := make([]string, len(s.words))
		copy(out, s.words)
		return out
	}
	var out []string
	for _, w := range s.words {
		if len([]rune(w)) <= maxLen {
			out = append(out, w)
		}
	}
	return out
}

func (s *ListSource) RandomWord(maxLen int) string {
	pool := s.WordsForWave(maxLen)
	if len(pool) == 0 {
		// Ceiling filtered everything out; fall back to the full pool
		// rather than failing.
		pool = s.words
	}
	return pool[s.rng.Intn(len(pool))]
}
