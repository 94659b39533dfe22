package tictactoe

// Mark is the content of one board cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// String returns "X", "O" or a blank for an empty cell.
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Other returns the opposing mark.
func (m Mark) Other() Mark {
	if m == X {
		return O
	}
	return X
}

// Outcome is the result of a round.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeXWins
	OutcomeOWins
	OutcomeDraw
)

// String returns a short description of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeXWins:
		return "X wins"
	case OutcomeOWins:
		return "O wins"
	case OutcomeDraw:
		return "Draw"
	default:
		return ""
	}
}

// BoardSize is the number of cells, indexed row-major from the top left.
const BoardSize = 9

// WinLines are the eight rows, columns and diagonals that win a round.
var WinLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// State is one round of tic-tac-toe. It is a plain value: Place returns a
// new State and never modifies its argument.
type State struct {
	Board   [BoardSize]Mark
	Turn    Mark
	Outcome Outcome
	Line    [3]int // Winning cells, valid when a player has won
	Moves   int
}

// NewState returns an empty board with X to move.
func NewState() State {
	return State{Turn: X}
}

// Over reports whether the round has finished.
func (s State) Over() bool {
	return s.Outcome != OutcomeNone
}

// Winner returns the winning mark, or Empty for a draw or open round.
func (s State) Winner() Mark {
	switch s.Outcome {
	case OutcomeXWins:
		return X
	case OutcomeOWins:
		return O
	default:
		return Empty
	}
}

// Place puts the current player's mark on cell and passes the turn.
// Occupied cells, out of range indexes and finished rounds leave the state
// unchanged.
func Place(s State, cell int) State {
	if s.Over() || cell < 0 || cell >= BoardSize || s.Board[cell] != Empty {
		return s
	}

	s.Board[cell] = s.Turn
	s.Moves++

	if line, ok := winningLine(s.Board); ok {
		s.Line = line
		if s.Board[line[0]] == X {
			s.Outcome = OutcomeXWins
		} else {
			s.Outcome = OutcomeOWins
		}
		return s
	}

	if s.Moves == BoardSize {
		s.Outcome = OutcomeDraw
		return s
	}

	s.Turn = s.Turn.Other()
	return s
}

func winningLine(b [BoardSize]Mark) ([3]int, bool) {
	for _, line := range WinLines {
		m := b[line[0]]
		if m != Empty && b[line[1]] == m && b[line[2]] == m {
			return line, true
		}
	}
	return [3]int{}, false
}

// InLine reports whether cell is part of the winning line.
func (s State) InLine(cell int) bool {
	if s.Winner() == Empty {
		return false
	}
	for _, c := range s.Line {
		if c == cell {
			return true
		}
	}
	return false
}

// Tally counts finished rounds across resets.
type Tally struct {
	X, O, Draws int
}

// Record adds the outcome of a finished round.
func (t Tally) Record(o Outcome) Tally {
	switch o {
	case OutcomeXWins:
		t.X++
	case OutcomeOWins:
		t.O++
	case OutcomeDraw:
		t.Draws++
	}
	return t
}
