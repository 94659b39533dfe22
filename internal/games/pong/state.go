package pong

import (
	"math"
	"time"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
)

// Side identifies a player.
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideCPU
)

// Rules are the fixed parameters of a match, in playfield units.
type Rules struct {
	Width, Height float64
	PaddleW       float64
	PaddleH       float64
	PaddleStep    float64
	Ball          float64
	Speed         float64
	SpeedUp       float64
	CPUSpeed      float64
	DeadZone      float64
	WinScore      int
	ServeDelay    int // Ticks
}

// RulesFrom converts settings into match rules.
func RulesFrom(cfg config.PongConfig, tickRate int) Rules {
	serve := 0
	if cfg.Ball.ServeDelayMs > 0 {
		serve = core.TicksFor(time.Duration(cfg.Ball.ServeDelayMs)*time.Millisecond, tickRate)
	}
	return Rules{
		Width:      cfg.Field.Width,
		Height:     cfg.Field.Height,
		PaddleW:    cfg.Paddle.Width,
		PaddleH:    cfg.Paddle.Height,
		PaddleStep: cfg.Paddle.Step,
		Ball:       cfg.Ball.Size,
		Speed:      cfg.Ball.Speed,
		SpeedUp:    cfg.Ball.SpeedUp,
		CPUSpeed:   cfg.CPU.Speed,
		DeadZone:   cfg.CPU.DeadZone,
		WinScore:   cfg.WinScore,
		ServeDelay: serve,
	}
}

// State is one match. Positions are top-left corners. The player owns the
// left paddle and the CPU the right one.
type State struct {
	PlayerY     float64
	CPUY        float64
	BallX       float64
	BallY       float64
	VX          float64
	VY          float64
	PlayerScore int
	CPUScore    int
	Serve       int // Ticks before the ball moves again
	Hits        int
	Winner      Side
	Phase       core.Phase
	RNG         core.RNG
}

// NewState centers both paddles and serves the first ball.
func NewState(r Rules, rng core.RNG) State {
	s := State{
		PlayerY: (r.Height - r.PaddleH) / 2,
		CPUY:    (r.Height - r.PaddleH) / 2,
		Phase:   core.PhaseRunning,
		RNG:     rng,
	}
	s.serve(r)
	return s
}

// serve puts the ball in the center heading in a random diagonal.
func (s *State) serve(r Rules) {
	s.BallX = (r.Width - r.Ball) / 2
	s.BallY = (r.Height - r.Ball) / 2
	s.VX = r.Speed * s.RNG.Sign()
	s.VY = r.Speed * s.RNG.Sign()
	s.Serve = r.ServeDelay
}

// PlayerRect returns the player's paddle.
func (s State) PlayerRect(r Rules) core.RectF {
	return core.RectF{X: 0, Y: s.PlayerY, W: r.PaddleW, H: r.PaddleH}
}

// CPURect returns the CPU paddle.
func (s State) CPURect(r Rules) core.RectF {
	return core.RectF{X: r.Width - r.PaddleW, Y: s.CPUY, W: r.PaddleW, H: r.PaddleH}
}

// BallRect returns the ball.
func (s State) BallRect(r Rules) core.RectF {
	return core.RectF{X: s.BallX, Y: s.BallY, W: r.Ball, H: r.Ball}
}

// MovePlayer moves the player's paddle one step up (dir < 0) or down
// (dir > 0), staying inside the field.
func MovePlayer(s State, r Rules, dir float64) State {
	if s.Phase != core.PhaseRunning {
		return s
	}
	s.PlayerY = core.ClampF(s.PlayerY+math.Copysign(r.PaddleStep, dir), 0, r.Height-r.PaddleH)
	return s
}

// TogglePause pauses a running match or resumes a paused one.
func TogglePause(s State) State {
	switch s.Phase {
	case core.PhaseRunning:
		s.Phase = core.PhasePaused
	case core.PhasePaused:
		s.Phase = core.PhaseRunning
	}
	return s
}

// Advance runs one tick: the ball moves and bounces, a point is scored if
// it leaves the field, and the CPU paddle follows it.
func Advance(s State, r Rules) State {
	if s.Phase != core.PhaseRunning {
		return s
	}

	if s.Serve > 0 {
		s.Serve--
		return moveCPU(s, r)
	}

	x, y := s.BallX+s.VX, s.BallY+s.VY

	switch {
	case y <= 0:
		y = 0
		s.VY = math.Abs(s.VY)
	case y+r.Ball >= r.Height:
		y = r.Height - r.Ball
		s.VY = -math.Abs(s.VY)
	}

	// A paddle is hit when the ball crosses its face this tick while
	// overlapping it vertically.
	face := core.RectF{Y: y, W: r.PaddleW, H: r.Ball}
	switch {
	case s.VX < 0 && s.BallX >= r.PaddleW && x < r.PaddleW && face.Intersects(s.PlayerRect(r)):
		x = r.PaddleW
		s = bounce(s, r)
	case s.VX > 0 && s.BallX+r.Ball <= r.Width-r.PaddleW && x+r.Ball > r.Width-r.PaddleW:
		face.X = r.Width - r.PaddleW
		if face.Intersects(s.CPURect(r)) {
			x = r.Width - r.PaddleW - r.Ball
			s = bounce(s, r)
		}
	}

	s.BallX, s.BallY = x, y

	switch {
	case x+r.Ball < 0:
		s = point(s, r, SideCPU)
	case x > r.Width:
		s = point(s, r, SidePlayer)
	}

	if s.Phase != core.PhaseRunning {
		return s
	}
	return moveCPU(s, r)
}

func bounce(s State, r Rules) State {
	s.VX = -s.VX * r.SpeedUp
	s.VY *= r.SpeedUp
	s.Hits++
	return s
}

func point(s State, r Rules, side Side) State {
	if side == SidePlayer {
		s.PlayerScore++
	} else {
		s.CPUScore++
	}

	switch {
	case s.PlayerScore >= r.WinScore:
		s.Winner = SidePlayer
		s.Phase = core.PhaseOver
	case s.CPUScore >= r.WinScore:
		s.Winner = SideCPU
		s.Phase = core.PhaseOver
	default:
		s.serve(r)
	}
	return s
}

// moveCPU steers the right paddle toward the ball, holding still while the
// ball is within the dead zone around the paddle's center.
func moveCPU(s State, r Rules) State {
	center := s.CPUY + r.PaddleH/2
	target := s.BallY + r.Ball/2

	switch {
	case center < target-r.DeadZone:
		s.CPUY = math.Min(s.CPUY+r.CPUSpeed, r.Height-r.PaddleH)
	case center > target+r.DeadZone:
		s.CPUY = math.Max(s.CPUY-r.CPUSpeed, 0)
	}
	return s
}
