package invaders

import (
	"math"
	"slices"
	"time"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
)

// Rules are the fixed parameters of a game, in playfield units.
type Rules struct {
	Width, Height float64
	AlienSize     float64
	AlienGap      float64
	OriginX       float64
	OriginY       float64
	Rows, Cols    int
	MaxRows       int
	MaxCols       int
	Speed         float64
	SpeedFactor   float64
	MaxSpeed      float64
	Drop          float64
	ShipSize      float64
	ShipStep      float64
	ShotSize      float64
	ShotSpeed     float64
	Cooldown      int // Ticks between shots
	Points        int
}

// RulesFrom converts settings into game rules.
func RulesFrom(cfg config.InvadersConfig, tickRate int) Rules {
	cooldown := 0
	if cfg.Projectile.CooldownMs > 0 {
		cooldown = core.TicksFor(time.Duration(cfg.Projectile.CooldownMs)*time.Millisecond, tickRate)
	}
	a := cfg.Aliens
	return Rules{
		Width:       cfg.Field.Width,
		Height:      cfg.Field.Height,
		AlienSize:   a.Size,
		AlienGap:    a.Gap,
		OriginX:     a.OriginX,
		OriginY:     a.OriginY,
		Rows:        a.Rows,
		Cols:        a.Cols,
		MaxRows:     a.MaxRows,
		MaxCols:     a.MaxCols,
		Speed:       a.Speed,
		SpeedFactor: a.SpeedFactor,
		MaxSpeed:    a.MaxSpeed,
		Drop:        a.Drop,
		ShipSize:    cfg.Ship.Size,
		ShipStep:    cfg.Ship.Step,
		ShotSize:    cfg.Projectile.Size,
		ShotSpeed:   cfg.Projectile.Speed,
		Cooldown:    cooldown,
		Points:      cfg.Points,
	}
}

// Grid returns the formation size for a level. Each level adds one row and
// two columns up to the maximum.
func (r Rules) Grid(level int) (rows, cols int) {
	rows = min(r.Rows+level-1, r.MaxRows)
	cols = min(r.Cols+2*(level-1), r.MaxCols)
	return rows, cols
}

// SpeedAt returns the formation speed for a level.
func (r Rules) SpeedAt(level int) float64 {
	return math.Min(r.Speed*math.Pow(r.SpeedFactor, float64(level-1)), r.MaxSpeed)
}

// Alien is one member of the formation.
type Alien struct {
	X, Y  float64
	Row   int
	Alive bool
}

// Shot is a projectile fired by the ship.
type Shot struct {
	X, Y float64
}

// State is one game. Positions are top-left corners.
type State struct {
	ShipX    float64
	ShipY    float64
	Aliens   []Alien
	Shots    []Shot
	Dir      float64 // +1 moving right, -1 moving left
	Speed    float64
	Level    int
	Killed   int
	Cooldown int
	Phase    core.Phase
}

// NewState places the ship at the bottom center and builds the first wave.
// The game waits to be started.
func NewState(r Rules) State {
	s := State{
		ShipX: (r.Width - r.ShipSize) / 2,
		ShipY: r.Height - r.ShipSize,
		Phase: core.PhaseNotStarted,
	}
	return startLevel(s, r, 1)
}

func startLevel(s State, r Rules, level int) State {
	rows, cols := r.Grid(level)
	aliens := make([]Alien, 0, rows*cols)
	step := r.AlienSize + r.AlienGap
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			aliens = append(aliens, Alien{
				X:     r.OriginX + float64(col)*step,
				Y:     r.OriginY + float64(row)*step,
				Row:   row,
				Alive: true,
			})
		}
	}
	s.Aliens = aliens
	s.Shots = nil
	s.Dir = 1
	s.Level = level
	s.Speed = r.SpeedAt(level)
	return s
}

// Score is the number of aliens destroyed times the points per alien.
func (s State) Score(r Rules) int {
	return s.Killed * r.Points
}

// Alive counts the aliens still standing.
func (s State) Alive() int {
	n := 0
	for _, a := range s.Aliens {
		if a.Alive {
			n++
		}
	}
	return n
}

// ShipRect returns the ship.
func (s State) ShipRect(r Rules) core.RectF {
	return core.RectF{X: s.ShipX, Y: s.ShipY, W: r.ShipSize, H: r.ShipSize}
}

// AlienRect returns an alien's box.
func AlienRect(a Alien, r Rules) core.RectF {
	return core.RectF{X: a.X, Y: a.Y, W: r.AlienSize, H: r.AlienSize}
}

// ShotRect returns a projectile's box.
func ShotRect(p Shot, r Rules) core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: r.ShotSize, H: r.ShotSize}
}

// Start begins a game that has not started yet.
func Start(s State) State {
	if s.Phase == core.PhaseNotStarted {
		s.Phase = core.PhaseRunning
	}
	return s
}

// TogglePause pauses a running game or resumes a paused one.
func TogglePause(s State) State {
	switch s.Phase {
	case core.PhaseRunning:
		s.Phase = core.PhasePaused
	case core.PhasePaused:
		s.Phase = core.PhaseRunning
	}
	return s
}

// MoveShip moves the ship one step left (dir < 0) or right (dir > 0).
func MoveShip(s State, r Rules, dir float64) State {
	if s.Phase != core.PhaseRunning {
		return s
	}
	s.ShipX = core.ClampF(s.ShipX+math.Copysign(r.ShipStep, dir), 0, r.Width-r.ShipSize)
	return s
}

// Fire launches a projectile from the middle of the ship unless the gun is
// still cooling down.
func Fire(s State, r Rules) State {
	if s.Phase != core.PhaseRunning || s.Cooldown > 0 {
		return s
	}
	shot := Shot{
		X: s.ShipX + (r.ShipSize-r.ShotSize)/2,
		Y: s.ShipY - r.ShotSize,
	}
	s.Shots = append(slices.Clone(s.Shots), shot)
	s.Cooldown = r.Cooldown
	return s
}

// Advance runs one tick: projectiles fly, the formation marches, hits are
// resolved, and the level or game ends when the wave is gone or lands.
func Advance(s State, r Rules) State {
	if s.Phase != core.PhaseRunning {
		return s
	}

	if s.Cooldown > 0 {
		s.Cooldown--
	}

	shots := make([]Shot, 0, len(s.Shots))
	for _, p := range s.Shots {
		p.Y -= r.ShotSpeed
		if p.Y+r.ShotSize > 0 {
			shots = append(shots, p)
		}
	}

	aliens := slices.Clone(s.Aliens)
	s = march(s, r, aliens)

	// Each shot kills at most one alien and is used up.
	kept := shots[:0]
	for _, p := range shots {
		box := ShotRect(p, r)
		hit := false
		for i := range aliens {
			if aliens[i].Alive && box.Intersects(AlienRect(aliens[i], r)) {
				aliens[i].Alive = false
				s.Killed++
				hit = true
				break
			}
		}
		if !hit {
			kept = append(kept, p)
		}
	}
	s.Shots = kept
	s.Aliens = aliens

	alive := 0
	for _, a := range aliens {
		if !a.Alive {
			continue
		}
		alive++
		if a.Y+r.AlienSize >= s.ShipY {
			s.Phase = core.PhaseOver
			return s
		}
	}

	if alive == 0 {
		s = startLevel(s, r, s.Level+1)
	}
	return s
}

// march moves the formation sideways. On the tick a live alien reaches a
// side the formation is pushed back inside if it overshot, reverses and
// drops.
func march(s State, r Rules, aliens []Alien) State {
	dx := s.Dir * s.Speed
	left, right := math.Inf(1), math.Inf(-1)
	for i := range aliens {
		aliens[i].X += dx
		if aliens[i].Alive {
			left = math.Min(left, aliens[i].X)
			right = math.Max(right, aliens[i].X+r.AlienSize)
		}
	}

	var shift float64
	switch {
	case left <= 0:
		shift = -left
	case right >= r.Width:
		shift = r.Width - right
	default:
		return s
	}

	for i := range aliens {
		aliens[i].X += shift
		aliens[i].Y += r.Drop
	}
	s.Dir = -s.Dir
	return s
}
