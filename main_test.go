package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xSyrax123/Hangman-game/internal/config"
	"github.com/xSyrax123/Hangman-game/internal/console"
	"github.com/xSyrax123/Hangman-game/internal/words"
)

func TestPickWordDaily(t *testing.T) {
	list, err := words.FromSlice([]string{"alpha", "beta", "gamma", "delta"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	cfg := config.Config{Mode: config.ModeDaily, DailySalt: "salt"}
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	a, err := pickWord(cfg, list, now)
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	b, _ := pickWord(cfg, list, now.Add(time.Hour))
	if a != b {
		t.Fatalf("expected same daily word, got %q and %q", a, b)
	}
	if a != list.Daily(now, "salt") {
		t.Fatalf("expected %q, got %q", list.Daily(now, "salt"), a)
	}
}

func TestPickWordRandom(t *testing.T) {
	list, err := words.FromSlice([]string{"only"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	w, err := pickWord(config.Config{Mode: config.ModeRandom}, list, time.Now())
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if w != "only" {
		t.Fatalf("expected only, got %q", w)
	}
}

func TestLogResult(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	logResult(console.Result{ID: "r-1", Word: "Cat", Won: true, Turns: 4, TrialsLeft: 5})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["round"] != "r-1" || entry["word"] != "Cat" || entry["won"] != true {
		t.Fatalf("unexpected log entry: %v", entry)
	}
	if entry["trials_left"] != float64(5) || entry["turns"] != float64(4) {
		t.Fatalf("unexpected counters: %v", entry)
	}
}
