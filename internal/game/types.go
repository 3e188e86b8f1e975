// internal/game/types.go
//
// Core type definitions for the hangman game engine.
// Defines:
//   - Kind: how a single guess was classified (invalid/repeat/hit/miss).
//   - Outcome: the result of a guess, with everything needed to render it.
//   - Session: state for a single round.

package game

import "errors"

// ErrInvalidWord is returned by New when the secret word is empty.
var ErrInvalidWord = errors.New("game: secret word must not be empty")

// Placeholder marks an unrevealed position in the revealed pattern.
const Placeholder = '_'

// Kind classifies the result of a guess.
//   - Invalid:        input was not a single letter (or the round is over).
//   - AlreadyGuessed: the letter was submitted before; nothing changed.
//   - Hit:            the letter occurs in the word; positions were revealed.
//   - Miss:           the letter does not occur; one trial was lost.
type Kind int

const (
	Invalid Kind = iota
	AlreadyGuessed
	Hit
	Miss
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case AlreadyGuessed:
		return "already_guessed"
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	}
	return "unknown"
}

// Outcome is returned by Session.SubmitGuess.
type Outcome struct {
	Kind       Kind   // classification of the guess
	Letter     rune   // normalized lowercase letter; zero for Invalid
	Revealed   string // revealed pattern after the guess
	TrialsLeft int    // remaining trials after the guess
	Stage      int    // index into the stage table after the guess
}

// Session holds the state of a single hangman round.
type Session struct {
	ID         string            // Round identifier (UUID), used for log correlation.
	word       string            // Secret word in its original casing.
	lower      []rune            // Lowercase secret word, one rune per rune of word.
	keys       []rune            // letterKey of each position; guesses match against these.
	revealed   []rune            // Placeholder or revealed letter, one per rune of lower.
	guessed    map[rune]struct{} // Key of every letter submitted so far, hit or miss.
	trialsLeft int               // In [0, MaxTrials].
}
