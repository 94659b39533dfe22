package memory

import "github.com/vovakirdan/arcade-classics/internal/core"

const (
	// Pairs is the number of distinct symbols on the table.
	Pairs = 6
	// CardCount is the number of cards dealt.
	CardCount = Pairs * 2
)

// Card is one card on the table. Symbol indexes the configured glyphs.
type Card struct {
	Symbol  int
	FaceUp  bool
	Matched bool
}

// Visible reports whether the card's symbol is shown.
func (c Card) Visible() bool {
	return c.FaceUp || c.Matched
}

// State is a deal of the memory game. Flip and Tick return new values and
// never modify their argument.
type State struct {
	Cards   [CardCount]Card
	Pending [2]int // Indexes of face-up unmatched cards, first Open entries valid
	Open    int
	Wait    int // Ticks left before an open pair is resolved
	Moves   int // Pairs turned over
	Matches int
}

// Deal shuffles two copies of every symbol face down.
func Deal(rng *core.RNG) State {
	var s State
	for i := range s.Cards {
		s.Cards[i] = Card{Symbol: i / 2}
	}
	rng.Shuffle(CardCount, func(i, j int) {
		s.Cards[i], s.Cards[j] = s.Cards[j], s.Cards[i]
	})
	return s
}

// Complete reports whether every pair has been found.
func (s State) Complete() bool {
	return s.Matches == Pairs
}

// Checking reports whether two cards are face up awaiting resolution.
func (s State) Checking() bool {
	return s.Open == 2
}

// Flip turns card idx face up. Flips are ignored while a pair is being
// checked, and on cards that are already visible. Turning the second card
// of a pair starts a wait of delay ticks before Tick resolves it.
func Flip(s State, idx, delay int) State {
	if idx < 0 || idx >= CardCount || s.Checking() || s.Cards[idx].Visible() {
		return s
	}

	s.Cards[idx].FaceUp = true
	s.Pending[s.Open] = idx
	s.Open++

	if s.Open == 2 {
		s.Moves++
		s.Wait = max(delay, 1)
	}
	return s
}

// Tick advances the reveal timer. When it runs out a matching pair stays
// revealed for good and a mismatched pair is turned back face down.
func Tick(s State) State {
	if !s.Checking() {
		return s
	}

	s.Wait--
	if s.Wait > 0 {
		return s
	}

	a, b := s.Pending[0], s.Pending[1]
	if s.Cards[a].Symbol == s.Cards[b].Symbol {
		s.Cards[a].Matched = true
		s.Cards[b].Matched = true
		s.Matches++
	}
	s.Cards[a].FaceUp = false
	s.Cards[b].FaceUp = false
	s.Open = 0
	s.Wait = 0
	return s
}

// FaceUpUnmatched counts cards turned over but not yet matched.
func (s State) FaceUpUnmatched() int {
	n := 0
	for _, c := range s.Cards {
		if c.FaceUp && !c.Matched {
			n++
		}
	}
	return n
}

// Score rates a finished game: a perfect run of six moves scores 100 and
// every extra move costs five points, never dropping below ten.
func (s State) Score() int {
	if !s.Complete() {
		return 0
	}
	return max(10, 100-5*(s.Moves-Pairs))
}
