package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/antidote-run/internal/audio"
	"github.com/vovakirdan/antidote-run/internal/core"
	"github.com/vovakirdan/antidote-run/internal/logging"
	"github.com/vovakirdan/antidote-run/internal/platform/tui"
	"github.com/vovakirdan/antidote-run/internal/storage"
)

// runtimeConfig sizes the run to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// fileLogger opens the log file. The alt screen owns the terminal during
// play, so interactive commands never log to stderr.
func fileLogger() (*log.Logger, io.Closer) {
	path, err := logging.DefaultFilePath()
	if err != nil {
		return logging.Discard(), nopCloser{}
	}
	logger, closer, err := logging.OpenFile(path, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return logging.Discard(), nopCloser{}
	}
	return logger, closer
}

// stderrLogger is used by the commands that keep the terminal.
func stderrLogger() *log.Logger {
	logger, err := logging.New(os.Stderr, flagLogLevel, logging.Prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger
}

// interactiveDeps opens the optional collaborators of a local session. Each
// one that fails is logged and left out. The returned func releases them.
func interactiveDeps(logger *log.Logger) (tui.Deps, func()) {
	deps := tui.Deps{Logger: logger}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("run history disabled", "error", err)
	} else {
		deps.Store = store
	}

	var sm *audio.SoundManager
	if !flagMute {
		sm = audio.NewSoundManager(audio.DefaultVolume)
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio disabled", "error", err)
		}
		deps.Sound = sm
	}

	return deps, func() {
		if sm != nil {
			sm.Cleanup()
		}
		if store != nil {
			if err := store.Close(); err != nil {
				logger.Warn("closing run history", "error", err)
			}
		}
	}
}
