package main

import (
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xSyrax123/Hangman-game/internal/config"
	"github.com/xSyrax123/Hangman-game/internal/console"
	"github.com/xSyrax123/Hangman-game/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogging(cfg)

	list, err := words.Open(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.WordsFile).Msg("failed to load word list")
	}
	log.Debug().Int("words", list.Len()).Str("mode", cfg.Mode).Msg("word list loaded")

	word, err := pickWord(cfg, list, time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to pick a word")
	}

	c := console.New(os.Stdin, os.Stdout, log.Logger)
	res, err := c.Play(word)
	if err != nil {
		if errors.Is(err, console.ErrInputClosed) {
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("round failed")
	}
	logResult(res)
}

// logResult records the outcome of the round, including the secret word.
func logResult(res console.Result) {
	log.Info().
		Str("round", res.ID).
		Str("word", res.Word).
		Bool("won", res.Won).
		Int("turns", res.Turns).
		Int("trials_left", res.TrialsLeft).
		Msg("game over")
}

// setupLogging applies LOG_LEVEL and LOG_FORMAT to the global logger.
// Logs always go to stderr so they never mix with the game on stdout.
func setupLogging(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFormat == config.FormatJSON {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

func pickWord(cfg config.Config, list *words.List, now time.Time) (string, error) {
	if cfg.Mode == config.ModeDaily {
		return list.Daily(now, cfg.DailySalt), nil
	}
	return list.Random()
}
