// Command catchstars-tui plays Catch the Stars in a terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"catchstars/internal/config"
	"catchstars/internal/gamemode"
	"catchstars/internal/logging"
	"catchstars/internal/profile"
	"catchstars/internal/sound"
	"catchstars/internal/world"
)

var (
	profileFlag = flag.String("profile", "", "save file path (default: per-user location)")
	seedFlag    = flag.Int64("seed", 0, "random seed (0: time based)")
	debugFlag   = flag.Bool("debug", false, "write a debug log next to the save file")
	muteFlag    = flag.Bool("mute", false, "disable audio")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "catchstars: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		return err
	}

	path := *profileFlag
	if path == "" {
		p, err := profile.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	// The terminal is the display, so logs only go to the debug file.
	logFile, err := logging.Setup(*debugFlag, filepath.Join(filepath.Dir(path), "logs"), io.Discard)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	store := profile.NewFileStore(path, rng)
	prof, err := store.Load()
	switch {
	case errors.Is(err, profile.ErrMalformed):
		return fmt.Errorf("load profile: %w", err)
	case err != nil:
		log.Printf("load profile: %v", err)
		if prof.Username == "" {
			prof = profile.Default(rng)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}

	a := newApp(screen, gamemode.New(world.New(cfg, rng), store, prof))
	defer a.cleanup()

	if !*muteFlag {
		spk, err := sound.OpenSpeaker(sound.SampleRate, sound.NewLoop(sound.SampleRate), cfg.Volume)
		if err != nil {
			// Non-fatal, game can run without sound
			log.Printf("audio disabled: %v", err)
		} else {
			a.speaker = spk
		}
	}

	a.run(cfg.FrameDuration())
	return nil
}
