package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func play(cells ...int) State {
	s := NewState()
	for _, c := range cells {
		s = Place(s, c)
	}
	return s
}

func TestPlaceAlternatesTurns(t *testing.T) {
	s := NewState()
	require.Equal(t, X, s.Turn)

	s = Place(s, 4)
	assert.Equal(t, X, s.Board[4])
	assert.Equal(t, O, s.Turn)

	s = Place(s, 0)
	assert.Equal(t, O, s.Board[0])
	assert.Equal(t, X, s.Turn)
	assert.Equal(t, 2, s.Moves)
}

func TestXWinsTopRowInFiveMoves(t *testing.T) {
	s := play(0, 4, 1, 7, 2)
	assert.Equal(t, OutcomeXWins, s.Outcome)
	assert.Equal(t, 5, s.Moves)
}

func TestPlaceDoesNotMutateInput(t *testing.T) {
	before := NewState()
	_ = Place(before, 3)

	assert.Equal(t, Empty, before.Board[3])
	assert.Equal(t, X, before.Turn)
}

func TestPlaceIgnoresInvalidMoves(t *testing.T) {
	s := play(4)

	tests := []struct {
		name string
		cell int
	}{
		{"occupied", 4},
		{"negative", -1},
		{"past end", 9},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, s, Place(s, tc.cell))
		})
	}
}

func TestEveryWinLine(t *testing.T) {
	for _, line := range WinLines {
		// X takes the line; O plays the first two free cells not on it.
		var others []int
		for c := 0; c < BoardSize && len(others) < 2; c++ {
			if c != line[0] && c != line[1] && c != line[2] {
				others = append(others, c)
			}
		}

		s := play(line[0], others[0], line[1], others[1], line[2])

		require.Equal(t, OutcomeXWins, s.Outcome, "line %v", line)
		assert.Equal(t, line, s.Line)
		assert.Equal(t, X, s.Winner())
		for _, c := range line {
			assert.True(t, s.InLine(c))
		}
	}
}

func TestOWins(t *testing.T) {
	// X: 0, 1, 8   O: 3, 4, 5
	s := play(0, 3, 1, 4, 8, 5)

	assert.Equal(t, OutcomeOWins, s.Outcome)
	assert.Equal(t, [3]int{3, 4, 5}, s.Line)
}

func TestDraw(t *testing.T) {
	// X O X
	// X O O
	// O X X
	s := play(0, 1, 2, 4, 3, 5, 7, 6, 8)

	assert.Equal(t, OutcomeDraw, s.Outcome)
	assert.Equal(t, Empty, s.Winner())
	assert.False(t, s.InLine(0))
}

func TestWinOnLastCellIsNotDraw(t *testing.T) {
	// X O X
	// O X O
	// O X X  <- ninth move completes the diagonal
	s := play(0, 1, 2, 3, 4, 5, 7, 6, 8)

	assert.Equal(t, OutcomeXWins, s.Outcome)
	assert.Equal(t, [3]int{0, 4, 8}, s.Line)
	assert.Equal(t, 9, s.Moves)
}

func TestNoMovesAfterWin(t *testing.T) {
	s := play(0, 3, 1, 4, 2)
	require.True(t, s.Over())

	assert.Equal(t, s, Place(s, 8))
}

func TestTally(t *testing.T) {
	var tally Tally
	tally = tally.Record(OutcomeXWins).Record(OutcomeDraw).Record(OutcomeXWins).Record(OutcomeNone)

	assert.Equal(t, Tally{X: 2, Draws: 1}, tally)
}
