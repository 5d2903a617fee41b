package world

import (
	"math/rand"

	"github.com/solarlune/resolv"

	"catchstars/internal/config"
	"catchstars/internal/entity"
)

const cellSize = 32

var tagStar = resolv.NewTag("star")

// Result counts what a frame resolved.
type Result struct {
	Spawned int
	Caught  int
	Missed  int
}

type item struct {
	entity.Star
	shape resolv.IShape
}

// World owns the player, the active stars and the collision space for a
// single round of play.
type World struct {
	Player entity.Player

	cfg     config.Tuning
	rng     *rand.Rand
	spawner Spawner
	items   []item

	space       *resolv.Space
	playerShape resolv.IShape
}

// New builds a world ready for a fresh round.
func New(cfg config.Tuning, rng *rand.Rand) *World {
	w := &World{
		cfg:     cfg,
		rng:     rng,
		spawner: Spawner{Interval: cfg.SpawnInterval, Cap: cfg.MaxStars},
		items:   make([]item, 0, cfg.MaxStars),
		space:   resolv.NewSpace(cfg.ScreenWidth, cfg.ScreenHeight, cellSize, cellSize),
	}
	w.playerShape = resolv.NewRectangleFromTopLeft(0, 0, cfg.PlayerWidth, cfg.PlayerHeight)
	w.space.Add(w.playerShape)
	w.Reset()
	return w
}

// Reset clears all stars and restores the player's starting state.
func (w *World) Reset() {
	for _, it := range w.items {
		w.space.Remove(it.shape)
	}
	clear(w.items)
	w.items = w.items[:0]
	w.spawner.Reset()

	w.Player = entity.Player{
		X:      w.cfg.PlayerStartX,
		Y:      w.cfg.PlayerStartY,
		Width:  w.cfg.PlayerWidth,
		Height: w.cfg.PlayerHeight,
		Speed:  w.cfg.PlayerSpeed,
		Lives:  w.cfg.StartLives,
	}
	w.Player.Clamp(float64(w.cfg.ScreenWidth))
	w.syncPlayer()
}

// Step runs one frame: spawn, move the player by dir (-1, 0, 1), then
// advance and resolve the stars.
func (w *World) Step(dir int) Result {
	var res Result
	if w.spawner.Tick(w.cfg.FrameDuration(), len(w.items)) && w.spawn() {
		res.Spawned = 1
	}

	w.Player.Move(dir, float64(w.cfg.ScreenWidth))
	w.syncPlayer()

	r := w.Update()
	res.Caught, res.Missed = r.Caught, r.Missed
	return res
}

// Update advances every star by its speed, then partitions them in one
// pass: stars past the bottom edge are missed, stars overlapping the
// player are caught, the rest stay. Expiry is checked first so a star
// can never count as both.
func (w *World) Update() Result {
	var res Result
	bottom := float64(w.cfg.ScreenHeight)

	for i := range w.items {
		it := &w.items[i]
		it.Fall()
		placeTopLeft(it.shape, it.X, it.Y, it.Width, it.Height)
	}

	touching := w.touchingPlayer()

	kept := w.items[:0]
	for _, it := range w.items {
		switch {
		case it.Below(bottom):
			w.space.Remove(it.shape)
			if w.Player.Lives > 0 {
				w.Player.Lives--
			}
			res.Missed++
		case touching[it.shape]:
			w.space.Remove(it.shape)
			w.Player.Score++
			res.Caught++
		default:
			kept = append(kept, it)
		}
	}
	clear(w.items[len(kept):])
	w.items = kept
	return res
}

// AddStar places a star at x,y with the given speed. It refuses when the
// cap is reached.
func (w *World) AddStar(x, y, speed float64) bool {
	if len(w.items) >= w.cfg.MaxStars {
		return false
	}
	shape := resolv.NewRectangleFromTopLeft(x, y, w.cfg.StarWidth, w.cfg.StarHeight)
	shape.Tags().Set(tagStar)
	w.space.Add(shape)
	w.items = append(w.items, item{
		Star: entity.Star{
			X: x, Y: y,
			Width: w.cfg.StarWidth, Height: w.cfg.StarHeight,
			Speed: speed,
		},
		shape: shape,
	})
	return true
}

// Stars returns a copy of the active stars.
func (w *World) Stars() []entity.Star {
	out := make([]entity.Star, len(w.items))
	for i, it := range w.items {
		out[i] = it.Star
	}
	return out
}

// Active returns the number of stars in play.
func (w *World) Active() int {
	return len(w.items)
}

// Over reports whether the round has ended.
func (w *World) Over() bool {
	return !w.Player.Alive()
}

// Tuning returns the tuning the world was built with.
func (w *World) Tuning() config.Tuning {
	return w.cfg
}

func (w *World) spawn() bool {
	maxX := int(float64(w.cfg.ScreenWidth) - w.cfg.StarWidth)
	x := float64(w.rng.Intn(maxX + 1))
	speed := float64(w.cfg.MinFallSpeed + w.rng.Intn(w.cfg.MaxFallSpeed-w.cfg.MinFallSpeed+1))
	return w.AddStar(x, 0, speed)
}

func (w *World) syncPlayer() {
	p := &w.Player
	placeTopLeft(w.playerShape, p.X, p.Y, p.Width, p.Height)
}

// placeTopLeft moves shape so its top-left corner is at x,y. resolv
// positions shapes by their center.
func placeTopLeft(shape resolv.IShape, x, y, width, height float64) {
	shape.SetPosition(x+width/2, y+height/2)
}

// touchingPlayer returns the star shapes whose boxes overlap the
// player's. resolv also reports shapes that only share an edge, so every
// hit is rechecked against the strict box overlap.
func (w *World) touchingPlayer() map[resolv.IShape]bool {
	stars := make(map[resolv.IShape]*item, len(w.items))
	for i := range w.items {
		stars[w.items[i].shape] = &w.items[i]
	}

	hit := make(map[resolv.IShape]bool)
	w.playerShape.IntersectionTest(resolv.IntersectionTestSettings{
		TestAgainst: w.playerShape.SelectTouchingCells(0).FilterShapes().ByTags(tagStar),
		OnIntersect: func(set resolv.IntersectionSet) bool {
			if it, ok := stars[set.OtherShape]; ok && it.Overlaps(&w.Player) {
				hit[set.OtherShape] = true
			}
			return true
		},
	})
	return hit
}
