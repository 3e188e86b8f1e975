// internal/console/console.go
//
// Terminal driver for one round of hangman.
// Responsibilities:
//   - Build a game.Session for the chosen word.
//   - Prompt for one line per turn and feed it to the session.
//   - Render every outcome (pattern, drawing, messages) and the final verdict.
//
// Notes:
//   - Exactly one round is played; Play returns once the session is over.
//   - Running out of input before that is reported as ErrInputClosed.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/xSyrax123/Hangman-game/internal/game"
)

// ErrInputClosed is returned when input ends before the round is decided.
var ErrInputClosed = errors.New("console: input closed before the round ended")

const (
	prompt = "Enter a letter: "
	spacer = "--------------------------------------------------"
)

// Console plays rounds over a line-oriented reader and a writer.
type Console struct {
	in  *bufio.Reader
	out io.Writer
	log zerolog.Logger
}

// Result summarizes a finished round.
type Result struct {
	ID         string
	Word       string
	Won        bool
	Turns      int // lines read, including invalid and repeated guesses
	TrialsLeft int
}

// New returns a Console reading from in and writing to out.
func New(in io.Reader, out io.Writer, logger zerolog.Logger) *Console {
	return &Console{in: bufio.NewReader(in), out: out, log: logger}
}

// Play runs a single round for word.
func (c *Console) Play(word string) (Result, error) {
	s, err := game.New(word)
	if err != nil {
		return Result{}, err
	}
	log := c.log.With().Str("round", s.ID).Logger()
	log.Info().Int("letters", s.Len()).Msg("round started")

	c.printf("\nSecret word (%d letters): %s\n", s.Len(), s.Revealed())
	c.printf("%s\n\n", s.Drawing())

	res := Result{ID: s.ID, Word: s.Word()}
	for !s.Over() {
		c.printf("%s\n\n%s", spacer, prompt)
		line, err := c.readLine()
		if err != nil {
			log.Warn().Err(err).Int("turns", res.Turns).Msg("round aborted")
			return res, err
		}
		res.Turns++

		out := s.SubmitGuess(line)
		log.Debug().
			Str("kind", out.Kind.String()).
			Int("trials_left", out.TrialsLeft).
			Msg("guess")
		c.render(out)
	}

	res.Won = s.Won()
	res.TrialsLeft = s.TrialsLeft()
	if res.Won {
		c.printf("You won. The secret word was: %s.\n", s.Word())
	} else {
		c.printf("You lost. The secret word was: %s.\n", s.Word())
	}
	log.Info().
		Bool("won", res.Won).
		Int("turns", res.Turns).
		Int("trials_left", res.TrialsLeft).
		Str("guessed", string(s.Guessed())).
		Msg("round finished")
	return res, nil
}

// render writes the feedback for a single outcome.
func (c *Console) render(o game.Outcome) {
	switch o.Kind {
	case game.Invalid:
		c.printf("The value entered is invalid.\n\n")
	case game.AlreadyGuessed:
		c.printf("This letter has already been entered. Enter another letter.\n\n")
	case game.Hit:
		c.printf("%s\n\n", o.Revealed)
	case game.Miss:
		c.printf("You missed and lost a life. You have %d trials left.\n", o.TrialsLeft)
		c.printf("%s\n\n", game.DrawingAt(o.Stage))
	}
}

// readLine returns the next line without its terminator.
// A final line with no newline is still returned.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return strings.TrimRight(line, "\r"), nil
			}
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read guess: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
