// internal/words/words.go
//
// Provides the word source for the game.
//
// Responsibilities:
//   - Load a word list from a configured file or fall back to the embedded default.
//   - Keep only purely alphabetic words, with their original casing.
//   - Pick a secret word: uniformly at random, or the word of the day.
//
// File format:
//   Words are separated by any whitespace; one per line is typical but not required.
//   Tokens are composed to NFC; tokens containing anything other than letters are skipped.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/xSyrax123/Hangman-game/assets"
)

// ErrEmptyList is returned when a source yields no usable words.
var ErrEmptyList = errors.New("words: list is empty")

// List is an immutable set of candidate secret words.
type List struct {
	words []string
}

// Open loads the list at path, or the embedded list when path is empty.
func Open(path string) (*List, error) {
	if path == "" {
		return Embedded()
	}
	return Load(path)
}

// Load reads a word list file.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	ws, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return newList(ws)
}

// Embedded returns the word list compiled into the binary.
func Embedded() (*List, error) {
	f, err := assets.OpenWords()
	if err != nil {
		return nil, fmt.Errorf("open embedded words: %w", err)
	}
	defer f.Close()

	ws, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read embedded words: %w", err)
	}
	return newList(ws)
}

// FromSlice builds a list from already-split words, applying the same filter as Parse.
func FromSlice(ws []string) (*List, error) {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		if w = norm.NFC.String(w); isAlpha(w) {
			out = append(out, w)
		}
	}
	return newList(out)
}

// Parse splits r on whitespace and returns every alphabetic token in NFC form.
func Parse(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		if w := norm.NFC.String(sc.Text()); isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

func newList(ws []string) (*List, error) {
	if len(ws) == 0 {
		return nil, ErrEmptyList
	}
	return &List{words: ws}, nil
}

// isAlpha reports whether s is non-empty and made of letters only.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Random returns a cryptographically random word from the list.
func (l *List) Random() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	if err != nil {
		return "", fmt.Errorf("pick random word: %w", err)
	}
	return l.words[n.Int64()], nil
}

// Len returns the number of words in the list.
func (l *List) Len() int { return len(l.words) }
