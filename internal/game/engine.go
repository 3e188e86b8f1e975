// internal/game/engine.go
//
// Core game engine for a single hangman round.
// Responsibilities:
//   - Create new sessions with every position hidden and MaxTrials trials.
//   - Normalize and validate guesses (one letter, case-insensitive).
//   - Reveal matching positions or charge a trial, once per distinct letter.
//   - Report terminal state: won / lost / over.
//
// Notes:
//   - The secret word is lowercased once at construction, one rune at a time,
//     so the pattern has exactly one position per rune of the word. The
//     original casing is kept only for display through Word().
//   - Letters match by case class: "Σ", "σ" and "ς" are the same letter, as
//     are "İ" and "i".
//   - Nothing outside SubmitGuess mutates a Session.
package game

import (
	"slices"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// New constructs a session for word.
// Returns ErrInvalidWord if word is empty.
func New(word string) (*Session, error) {
	if word == "" {
		return nil, ErrInvalidWord
	}
	rs := []rune(word)
	lower := make([]rune, len(rs))
	keys := make([]rune, len(rs))
	revealed := make([]rune, len(rs))
	for i, r := range rs {
		lower[i] = unicode.ToLower(r)
		keys[i] = letterKey(r)
		revealed[i] = Placeholder
	}
	return &Session{
		ID:         uuid.NewString(),
		word:       word,
		lower:      lower,
		keys:       keys,
		revealed:   revealed,
		guessed:    make(map[rune]struct{}),
		trialsLeft: MaxTrials,
	}, nil
}

// SubmitGuess normalizes raw input and applies it to the session.
//
// Evaluation order:
//   - Input that is not a single letter → Invalid, no state change.
//   - A letter already submitted → AlreadyGuessed, no state change.
//   - Otherwise the letter is recorded, then every matching position is
//     revealed (Hit) or one trial is lost (Miss).
//
// Once the round is over every call returns Invalid and changes nothing.
func (s *Session) SubmitGuess(raw string) Outcome {
	if s.Over() {
		return s.outcome(Invalid, 0)
	}
	letter, ok := normalize(raw)
	if !ok {
		return s.outcome(Invalid, 0)
	}
	if _, seen := s.guessed[letter]; seen {
		return s.outcome(AlreadyGuessed, letter)
	}
	s.guessed[letter] = struct{}{}

	hit := false
	for i, k := range s.keys {
		if k == letter {
			s.revealed[i] = s.lower[i]
			hit = true
		}
	}
	if hit {
		return s.outcome(Hit, letter)
	}
	s.trialsLeft--
	return s.outcome(Miss, letter)
}

// ValidGuess reports whether input normalizes to exactly one letter.
func ValidGuess(input string) bool {
	_, ok := normalize(input)
	return ok
}

// Won reports whether every position has been revealed.
func (s *Session) Won() bool { return string(s.revealed) == string(s.lower) }

// Lost reports whether all trials are used up without a win.
func (s *Session) Lost() bool { return s.trialsLeft == 0 && !s.Won() }

// Over reports whether the round has reached a terminal state.
func (s *Session) Over() bool { return s.Won() || s.Lost() }

// Stage is the index of the current drawing; it grows with every miss.
func (s *Session) Stage() int { return MaxTrials - s.trialsLeft }

// Drawing returns the drawing for the current stage.
func (s *Session) Drawing() string { return DrawingAt(s.Stage()) }

// Word returns the secret word in its original casing.
func (s *Session) Word() string { return s.word }

// Revealed returns the current pattern, e.g. "c_t".
func (s *Session) Revealed() string { return string(s.revealed) }

// Len is the number of positions in the pattern.
func (s *Session) Len() int { return len(s.revealed) }

// TrialsLeft is the number of misses still allowed.
func (s *Session) TrialsLeft() int { return s.trialsLeft }

// MaxTrials is the number of misses a fresh session allows.
func (s *Session) MaxTrials() int { return MaxTrials }

// Guessed returns every submitted letter in ascending order.
func (s *Session) Guessed() []rune {
	out := make([]rune, 0, len(s.guessed))
	for r := range s.guessed {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

func (s *Session) outcome(k Kind, letter rune) Outcome {
	return Outcome{
		Kind:       k,
		Letter:     letter,
		Revealed:   s.Revealed(),
		TrialsLeft: s.trialsLeft,
		Stage:      s.Stage(),
	}
}

// normalize trims surrounding whitespace and composes the input (NFC), so a
// letter typed with a combining accent still counts as one letter.
// It succeeds only when exactly one letter remains, returned as its key.
func normalize(raw string) (rune, bool) {
	rs := []rune(norm.NFC.String(strings.TrimSpace(raw)))
	if len(rs) != 1 || !unicode.IsLetter(rs[0]) {
		return 0, false
	}
	return letterKey(rs[0]), true
}

// letterKey maps r to a lowercase representative of its case class.
// Every rune maps to exactly one rune.
func letterKey(r rune) rune {
	r = unicode.ToLower(r)
	key := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < key {
			key = f
		}
	}
	return unicode.ToLower(key)
}
