package main

import (
	"errors"
	"flag"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"catchstars/internal/assets"
	"catchstars/internal/config"
	"catchstars/internal/gamemode"
	"catchstars/internal/logging"
	"catchstars/internal/profile"
	"catchstars/internal/world"
)

var (
	profileFlag = flag.String("profile", "", "save file path (default: per-user location)")
	assetsFlag  = flag.String("assets", "", "directory with star.png, box.png, background.png overrides")
	musicFlag   = flag.String("music", "", "mp3 file to loop instead of the built-in tune")
	seedFlag    = flag.Int64("seed", 0, "random seed (0: time based)")
	debugFlag   = flag.Bool("debug", false, "write a debug log next to the save file")
	muteFlag    = flag.Bool("mute", false, "disable audio")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	path := *profileFlag
	if path == "" {
		p, err := profile.DefaultPath()
		if err != nil {
			log.Fatal(err)
		}
		path = p
	}

	logFile, err := logging.Setup(*debugFlag, filepath.Join(filepath.Dir(path), "logs"), os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// 1. Profile
	store := profile.NewFileStore(path, rng)
	prof, err := store.Load()
	switch {
	case errors.Is(err, profile.ErrMalformed):
		log.Fatalf("load profile: %v", err)
	case err != nil:
		log.Printf("load profile: %v", err)
		if prof.Username == "" {
			prof = profile.Default(rng)
		}
	}
	log.Printf("profile %q (highscore %d) at %s", prof.Username, prof.Highscore, store.Path())

	// 2. Assets and audio
	sprites, err := assets.LoadSprites(*assetsFlag)
	if err != nil {
		log.Fatal(err)
	}
	var snd *Audio
	if !*muteFlag {
		if snd, err = NewAudio(*musicFlag, cfg.Volume); err != nil {
			// Non-fatal, the game runs without sound
			log.Printf("audio disabled: %v", err)
			snd = nil
		}
	}

	// 3. Window Setup
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TPS)

	// 4. Run Loop
	machine := gamemode.New(world.New(cfg, rng), store, prof)
	if err := ebiten.RunGame(NewGame(machine, sprites, snd)); err != nil {
		log.Fatal(err)
	}
}
