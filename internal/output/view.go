// Package output renders boards and game state for terminals and clients.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// BoardView draws a board as a text grid, top row first.
//
//	  -----------------
//	8 |r|n|b|q|k|b|n|r|
//	  -----------------
//	...
//	1 |R|N|B|Q|K|B|N|R|
//	  -----------------
//	   a b c d e f g h
type BoardView struct {
	coordinates bool
	white       *color.Color
	black       *color.Color
	highlight   *color.Color
}

// NewBoardView creates a view using the board settings in cfg.
func NewBoardView(cfg config.BoardConfig) *BoardView {
	v := &BoardView{coordinates: cfg.Coordinates}
	if cfg.Colour {
		v.white = color.New(color.FgHiWhite, color.Bold)
		v.black = color.New(color.FgHiRed, color.Bold)
		v.highlight = color.New(color.BgBlue)
		// The view is asked for colour explicitly, so ignore terminal detection.
		for _, c := range []*color.Color{v.white, v.black, v.highlight} {
			c.EnableColor()
		}
	}
	return v
}

// Render returns the text drawing of b.
func (v *BoardView) Render(b *chess.Board) string {
	var sb strings.Builder

	last, hasLast := b.LastMove()
	margin := ""
	if v.coordinates {
		margin = "  "
	}
	separator := margin + strings.Repeat("-", 2*b.Width()+1) + "\n"

	sb.WriteString(separator)
	for row := b.Height(); row >= 1; row-- {
		if v.coordinates {
			sb.WriteString(rowLabel(row))
		}
		sb.WriteByte('|')
		for col := 1; col <= b.Width(); col++ {
			sq := chess.Sq(row, col)
			cell := v.cell(b.PieceAt(sq))
			if hasLast && v.highlight != nil && (sq == last.From || sq == last.To) {
				cell = v.highlight.Sprint(cell)
			}
			sb.WriteString(cell)
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
		sb.WriteString(separator)
	}

	if v.coordinates {
		sb.WriteString("   ")
		for col := 1; col <= b.Width(); col++ {
			sb.WriteByte(byte('a' + col - 1))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Write renders b to w.
func (v *BoardView) Write(w io.Writer, b *chess.Board) error {
	_, err := io.WriteString(w, v.Render(b))
	return err
}

func (v *BoardView) cell(p *chess.Piece) string {
	if p == nil {
		return " "
	}
	letter := string(p.Letter())
	switch {
	case v.white != nil && p.Colour() == chess.White:
		return v.white.Sprint(letter)
	case v.black != nil && p.Colour() == chess.Black:
		return v.black.Sprint(letter)
	}
	return letter
}

// rowLabel pads the rank number to the two character margin.
func rowLabel(row int) string {
	return fmt.Sprintf("%-2d", row)
}
