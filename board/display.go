package board

import (
	"strconv"
	"strings"
)

const (
	colorReset          = "\033[0m"
	colorWhiteOnMagenta = "\033[97;45m"
	colorBlackOnMagenta = "\033[30;45m"
)

const columnLabels = "   a b c d e f g   "

// CellName returns the algebraic name of a cell, e.g. "c2" for 9.
func CellName(cell uint8) string {
	x, y := IndexToCoord(cell)
	return string(rune('a'+x)) + strconv.Itoa(int(y)+1)
}

func glyph(s Side, k Kind, color bool) string {
	if color {
		g := "o "
		if k == King {
			g = "W "
		}
		if s == White {
			return colorWhiteOnMagenta + g + colorReset
		}
		return colorBlackOnMagenta + g + colorReset
	}
	var g string
	switch {
	case s == White && k == King:
		g = "K"
	case s == White:
		g = "P"
	case k == King:
		g = "k"
	default:
		g = "p"
	}
	return g + " "
}

func paint(s string, color bool) string {
	if !color {
		return s
	}
	return colorBlackOnMagenta + s + colorReset
}

// ToDisplayText renders the board with rows numbered 1 to 6 from the top
// and columns a to g. With color set, pieces are drawn with ANSI colours;
// otherwise white is upper case and black lower case.
func (b *Board) ToDisplayText(color bool) string {
	var sb strings.Builder
	sb.WriteString(paint(columnLabels, color))
	sb.WriteString("\n")
	for y := uint8(0); y < Height; y++ {
		row := strconv.Itoa(int(y) + 1)
		sb.WriteString(paint(" "+row+" ", color))
		for x := uint8(0); x < Width; x++ {
			idx, _ := CoordToIndex(x, y)
			if s, k, ok := b.PieceAt(idx); ok {
				sb.WriteString(glyph(s, k, color))
			} else {
				sb.WriteString(paint("- ", color))
			}
		}
		sb.WriteString(paint(row+" ", color))
		sb.WriteString("\n")
	}
	sb.WriteString(paint(columnLabels, color))
	return sb.String()
}
