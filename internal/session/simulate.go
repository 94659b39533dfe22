package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/registry"
)

// Script supplies scripted input for a headless run, keyed by tick number.
type Script map[int][]core.Action

// Simulate resets g with cfg and drives it for up to ticks platform ticks
// without a terminal. Scripted actions for a tick are applied before the
// simulation advances. The run stops early once the game is over.
// It returns the number of ticks executed and the final state.
func Simulate(g registry.Game, cfg core.RuntimeConfig, ticks int, script Script) (int, core.GameState) {
	g.Reset(cfg)
	state := g.State()

	for i := 0; i < ticks; i++ {
		frame := core.NewTickFrame()
		for _, a := range script[i] {
			frame.Set(a)
		}
		state = g.Step(frame).State
		if state.GameOver() {
			return i + 1, state
		}
	}
	return ticks, state
}

// ParseScript reads a script written as comma-separated "tick:action"
// pairs, for example "0:confirm,30:left,30:fire". Several actions may share
// a tick. Action names are those of core.Action.String.
func ParseScript(s string) (Script, error) {
	script := make(Script)
	s = strings.TrimSpace(s)
	if s == "" {
		return script, nil
	}

	for _, part := range strings.Split(s, ",") {
		tickStr, name, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("session: script entry %q is not tick:action", part)
		}
		tick, err := strconv.Atoi(strings.TrimSpace(tickStr))
		if err != nil || tick < 0 {
			return nil, fmt.Errorf("session: script entry %q has a bad tick", part)
		}
		action, ok := core.ParseAction(strings.TrimSpace(name))
		if !ok || action == core.ActionNone {
			return nil, fmt.Errorf("session: script entry %q has unknown action %q", part, name)
		}
		script[tick] = append(script[tick], action)
	}
	return script, nil
}
