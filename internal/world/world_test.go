package world

import (
	"math/rand"
	"testing"

	"catchstars/internal/config"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	return New(config.Default(), rand.New(rand.NewSource(1)))
}

// far is an x position well clear of the player's starting box.
const far = 0.0

func TestNewWorldStartsFresh(t *testing.T) {
	w := newTestWorld(t)
	cfg := config.Default()
	if w.Player.X != cfg.PlayerStartX || w.Player.Y != cfg.PlayerStartY {
		t.Fatalf("player at (%v,%v), want (%v,%v)", w.Player.X, w.Player.Y, cfg.PlayerStartX, cfg.PlayerStartY)
	}
	if w.Player.Lives != cfg.StartLives || w.Player.Score != 0 {
		t.Fatalf("lives=%d score=%d, want %d/0", w.Player.Lives, w.Player.Score, cfg.StartLives)
	}
	if w.Active() != 0 {
		t.Fatalf("active = %d, want 0", w.Active())
	}
}

func TestStarsFallLinearly(t *testing.T) {
	for _, speed := range []float64{3, 4, 5, 6} {
		w := newTestWorld(t)
		const y0 = 10.0
		if !w.AddStar(far, y0, speed) {
			t.Fatal("AddStar refused on empty world")
		}
		for n := 1; n <= 60; n++ {
			w.Update()
			stars := w.Stars()
			want := y0 + float64(n)*speed
			if want > 600 {
				break
			}
			if len(stars) != 1 {
				t.Fatalf("speed %v frame %d: %d stars, want 1", speed, n, len(stars))
			}
			if stars[0].Y != want {
				t.Fatalf("speed %v frame %d: y = %v, want %v", speed, n, stars[0].Y, want)
			}
		}
	}
}

func TestMissCostsOneLife(t *testing.T) {
	w := newTestWorld(t)
	w.AddStar(far, 598, 5)

	res := w.Update()
	if res.Missed != 1 || res.Caught != 0 {
		t.Fatalf("result = %+v, want one miss", res)
	}
	if w.Player.Lives != 9 {
		t.Fatalf("lives = %d, want 9", w.Player.Lives)
	}
	if w.Player.Score != 0 {
		t.Fatalf("score = %d, want 0", w.Player.Score)
	}
	if w.Active() != 0 {
		t.Fatalf("active = %d, want 0", w.Active())
	}
}

func TestCatchScoresOnce(t *testing.T) {
	w := newTestWorld(t)
	// Player box is (360,540)-(425,585); this star lands at y=505..555.
	w.AddStar(370, 500, 5)

	res := w.Update()
	if res.Caught != 1 || res.Missed != 0 {
		t.Fatalf("result = %+v, want one catch", res)
	}
	if w.Player.Score != 1 {
		t.Fatalf("score = %d, want 1", w.Player.Score)
	}
	if w.Player.Lives != 10 {
		t.Fatalf("lives = %d, want 10", w.Player.Lives)
	}
	if w.Active() != 0 {
		t.Fatalf("active = %d, want 0", w.Active())
	}

	// Nothing left to resolve on the next frame.
	if res := w.Update(); res.Caught != 0 || res.Missed != 0 {
		t.Fatalf("second update = %+v, want nothing", res)
	}
}

func TestStarClearOfPlayerStays(t *testing.T) {
	w := newTestWorld(t)
	w.AddStar(far, 100, 4)
	res := w.Update()
	if res.Caught != 0 || res.Missed != 0 {
		t.Fatalf("result = %+v, want nothing resolved", res)
	}
	if w.Active() != 1 {
		t.Fatalf("active = %d, want 1", w.Active())
	}
}

func TestExpiryWinsOverCatch(t *testing.T) {
	w := newTestWorld(t)
	// Drop the player so its box reaches past the bottom edge.
	w.Player.Y = 580
	w.syncPlayer()
	w.AddStar(370, 595, 10)

	res := w.Update()
	if res.Missed != 1 || res.Caught != 0 {
		t.Fatalf("result = %+v, want a miss only", res)
	}
	if w.Player.Score != 0 || w.Player.Lives != 9 {
		t.Fatalf("score=%d lives=%d, want 0/9", w.Player.Score, w.Player.Lives)
	}
}

func TestLastLifeEndsRound(t *testing.T) {
	w := newTestWorld(t)
	w.Player.Lives = 1
	w.AddStar(far, 600, 3)

	w.Update()
	if w.Player.Lives != 0 {
		t.Fatalf("lives = %d, want 0", w.Player.Lives)
	}
	if !w.Over() {
		t.Fatal("round should be over")
	}
}

func TestLivesNeverNegative(t *testing.T) {
	w := newTestWorld(t)
	w.Player.Lives = 1
	w.AddStar(0, 599, 5)
	w.AddStar(100, 599, 5)
	w.AddStar(200, 599, 5)

	res := w.Update()
	if res.Missed != 3 {
		t.Fatalf("missed = %d, want 3", res.Missed)
	}
	if w.Player.Lives != 0 {
		t.Fatalf("lives = %d, want 0", w.Player.Lives)
	}
}

func TestAddStarRespectsCap(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 3; i++ {
		if !w.AddStar(float64(i*60), 0, 3) {
			t.Fatalf("AddStar %d refused under cap", i)
		}
	}
	if w.AddStar(500, 0, 3) {
		t.Fatal("AddStar accepted a fourth star")
	}
}

func TestActiveNeverExceedsCap(t *testing.T) {
	w := newTestWorld(t)
	rng := rand.New(rand.NewSource(7))
	maxStars := config.Default().MaxStars
	for frame := 0; frame < 20000; frame++ {
		w.Step(rng.Intn(3) - 1)
		if w.Active() > maxStars {
			t.Fatalf("frame %d: active = %d > cap %d", frame, w.Active(), maxStars)
		}
		if w.Over() {
			w.Reset()
		}
	}
}

func TestStepKeepsPlayerInBounds(t *testing.T) {
	w := newTestWorld(t)
	rng := rand.New(rand.NewSource(3))
	maxX := float64(config.Default().ScreenWidth) - w.Player.Width
	for frame := 0; frame < 5000; frame++ {
		w.Step(rng.Intn(3) - 1)
		if w.Player.X < 0 || w.Player.X > maxX {
			t.Fatalf("frame %d: x = %v out of [0,%v]", frame, w.Player.X, maxX)
		}
		if w.Over() {
			w.Reset()
		}
	}
}

func TestSpawnedStarsWithinRanges(t *testing.T) {
	cfg := config.Default()
	w := newTestWorld(t)
	frames := int(cfg.SpawnInterval/cfg.FrameDuration()) + 2

	seen := 0
	for round := 0; round < 50; round++ {
		w.Reset()
		var res Result
		for i := 0; i < frames && res.Spawned == 0; i++ {
			res = w.Step(0)
		}
		if res.Spawned != 1 {
			t.Fatalf("round %d: no spawn within %d frames", round, frames)
		}
		for _, s := range w.Stars() {
			seen++
			if s.X < 0 || s.X > float64(cfg.ScreenWidth)-cfg.StarWidth {
				t.Fatalf("star x = %v out of range", s.X)
			}
			if s.Speed < float64(cfg.MinFallSpeed) || s.Speed > float64(cfg.MaxFallSpeed) {
				t.Fatalf("star speed = %v out of [%d,%d]", s.Speed, cfg.MinFallSpeed, cfg.MaxFallSpeed)
			}
			// Spawned at y=0 then advanced once in the same frame.
			if s.Y != s.Speed {
				t.Fatalf("star y = %v, want %v after its first frame", s.Y, s.Speed)
			}
		}
	}
	if seen == 0 {
		t.Fatal("no stars observed")
	}
}

func TestResetClearsRound(t *testing.T) {
	w := newTestWorld(t)
	w.AddStar(370, 500, 5)
	w.Update()
	w.AddStar(far, 10, 3)
	w.Player.Lives = 2
	w.Player.X = 0

	w.Reset()
	if w.Player.Score != 0 || w.Player.Lives != 10 || w.Active() != 0 {
		t.Fatalf("after reset score=%d lives=%d active=%d", w.Player.Score, w.Player.Lives, w.Active())
	}
	if w.Player.X != 360 {
		t.Fatalf("after reset x = %v, want 360", w.Player.X)
	}
}

func TestCatchMatchesBoxOverlap(t *testing.T) {
	// Player box is (360,540)-(425,585). Every star falls 5px in the
	// update, so y0+5 is the position it is resolved at.
	tests := []struct {
		name   string
		x, y0  float64
		caught bool
	}{
		{"left gap", 305, 514, false},
		{"left edge", 310, 514, false},
		{"left overlap", 315, 514, true},
		{"centered", 370, 514, true},
		{"right overlap", 420, 514, true},
		{"right edge", 425, 514, false},
		{"right gap", 430, 514, false},
		{"top gap", 370, 480, false},
		{"top edge", 370, 485, false},
		{"top overlap", 370, 486, true},
		{"corner overlap", 311, 486, true},
		{"corner edge", 310, 485, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			p := w.Player
			sx, sy := tt.x, tt.y0+5
			overlap := sx < p.X+p.Width && p.X < sx+50 && sy < p.Y+p.Height && p.Y < sy+50
			if overlap != tt.caught {
				t.Fatalf("case expects caught=%v but boxes overlap=%v", tt.caught, overlap)
			}

			w.AddStar(tt.x, tt.y0, 5)
			res := w.Update()
			if got := res.Caught == 1; got != tt.caught {
				t.Fatalf("caught = %v, want %v (result %+v)", got, tt.caught, res)
			}
			if res.Missed != 0 {
				t.Fatalf("missed = %d, want 0", res.Missed)
			}
			wantActive := 1
			if tt.caught {
				wantActive = 0
			}
			if w.Active() != wantActive {
				t.Fatalf("active = %d, want %d", w.Active(), wantActive)
			}
		})
	}
}

func TestCatchFollowsPlayerMovement(t *testing.T) {
	w := newTestWorld(t)
	// Star resolves at (310,519)-(360,569), touching the player's left edge.
	w.AddStar(310, 514, 5)
	if res := w.Update(); res.Caught != 0 {
		t.Fatalf("edge contact caught: %+v", res)
	}

	// One step left puts the player at x=350, overlapping the star by 10px
	// after its next fall.
	res := w.Step(-1)
	if w.Player.X != 350 {
		t.Fatalf("player x = %v, want 350", w.Player.X)
	}
	if res.Caught != 1 {
		t.Fatalf("result = %+v, want one catch", res)
	}
}
