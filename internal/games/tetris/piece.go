package tetris

import "github.com/vovakirdan/arcade-classics/internal/core"

// Kind is a tetromino type. The zero value marks an empty grid cell.
type Kind int

const (
	Empty Kind = iota
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// Kinds lists every tetromino in spawn-table order.
var Kinds = []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

var shapes = map[Kind][]string{
	KindI: {
		"....",
		"####",
		"....",
		"....",
	},
	KindO: {
		"##",
		"##",
	},
	KindT: {
		".#.",
		"###",
		"...",
	},
	KindS: {
		".##",
		"##.",
		"...",
	},
	KindZ: {
		"##.",
		".##",
		"...",
	},
	KindJ: {
		"#..",
		"###",
		"...",
	},
	KindL: {
		"..#",
		"###",
		"...",
	},
}

var kindNames = map[Kind]string{
	KindI: "I", KindO: "O", KindT: "T", KindS: "S", KindZ: "Z", KindJ: "J", KindL: "L",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "."
}

// Color returns the display color of a kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindI:
		return core.ColorBrightCyan
	case KindO:
		return core.ColorBrightYellow
	case KindT:
		return core.ColorBrightMagenta
	case KindS:
		return core.ColorBrightGreen
	case KindZ:
		return core.ColorBrightRed
	case KindJ:
		return core.ColorBrightBlue
	case KindL:
		return core.ColorOrange
	default:
		return core.ColorGray
	}
}

// Shape is a square matrix of filled cells, indexed [row][col].
type Shape [][]bool

// ShapeOf returns a fresh copy of a kind's spawn orientation.
func ShapeOf(k Kind) Shape {
	rows := shapes[k]
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, c := range row {
			s[y][x] = c == '#'
		}
	}
	return s
}

// Rotate returns the shape turned 90 degrees clockwise.
func (s Shape) Rotate() Shape {
	n := len(s)
	out := make(Shape, n)
	for y := range out {
		out[y] = make([]bool, n)
		for x := range out[y] {
			out[y][x] = s[n-1-x][y]
		}
	}
	return out
}

// Cells returns the grid cells covered by the shape placed at (px, py).
func (s Shape) Cells(px, py int) []core.Point {
	var cells []core.Point
	for y, row := range s {
		for x, filled := range row {
			if filled {
				cells = append(cells, core.Point{X: px + x, Y: py + y})
			}
		}
	}
	return cells
}

// Piece is the falling tetromino.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
}

// Cells returns the grid cells the piece covers.
func (p Piece) Cells() []core.Point {
	return p.Shape.Cells(p.X, p.Y)
}
