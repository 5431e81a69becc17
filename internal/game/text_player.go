package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// Prompts and replies shown to a human player.
const (
	promptMove      = "enter move:\n"
	replyInvalid    = "Invalid move, enter move again\n"
	promptPromotion = "Choose your promotion piece (R, N, B, Q):\n"
	replyBadChoice  = "invalid promotion choice\n"

	movesCommand = "moves"
)

// TextPlayer is an actor that reads moves from a line-oriented input and
// draws the board on an output stream. Both players of a console game
// share one reader.
type TextPlayer struct {
	*engine.Player

	in   *bufio.Reader
	out  io.Writer
	view *output.BoardView
	cfg  *config.Config
}

// NewTextPlayer creates a text player for colour on board. The player
// answers its own promotion prompts.
func NewTextPlayer(colour chess.Colour, board *chess.Board, in *bufio.Reader, cfg *config.Config) *TextPlayer {
	tp := &TextPlayer{
		in:   in,
		out:  cfg.OutputFile,
		view: output.NewBoardView(cfg.Board),
		cfg:  cfg,
	}
	tp.Player = engine.NewPlayer(colour, board, tp)
	return tp
}

// MakeOneMove shows the board, then reads moves until one is accepted.
func (tp *TextPlayer) MakeOneMove(ctx context.Context) error {
	if err := tp.view.Write(tp.out, tp.Board()); err != nil {
		return err
	}
	fmt.Fprintf(tp.out, "%v's turn\n", tp.Colour())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m, err := tp.readMove()
		if err != nil {
			return err
		}
		err = tp.Execute(m)
		if err == nil {
			tp.cfg.Logf(config.Commands, "%v played %v", tp.Colour(), m)
			break
		}
		if _, ok := errors.ReasonOf(err); !ok {
			return err
		}
		tp.cfg.Logf(config.Commands, "%v rejected: %v", tp.Colour(), err)
		fmt.Fprint(tp.out, replyInvalid)
	}

	return tp.view.Write(tp.out, tp.Board())
}

// readMove prompts until a line parses as a move. The moves command lists
// the legal moves and prompts again.
func (tp *TextPlayer) readMove() (chess.Move, error) {
	for {
		fmt.Fprint(tp.out, promptMove)
		line, err := tp.readLine()
		if err != nil {
			return chess.Move{}, err
		}
		if strings.EqualFold(line, movesCommand) {
			tp.listMoves()
			continue
		}
		m, err := chess.ParseMove(line)
		if err != nil {
			fmt.Fprintf(tp.out, "%v\n", err)
			continue
		}
		return m, nil
	}
}

func (tp *TextPlayer) listMoves() {
	moves := tp.LegalMoves()
	names := make([]string, 0, len(moves))
	for _, m := range moves {
		names = append(names, m.String())
	}
	fmt.Fprintf(tp.out, "%s\n", strings.Join(names, " "))
}

// PromotionChoice prompts until one of R, N, B or Q is entered.
func (tp *TextPlayer) PromotionChoice(chess.Colour) (chess.Kind, error) {
	for {
		fmt.Fprint(tp.out, promptPromotion)
		line, err := tp.readLine()
		if err != nil {
			return 0, err
		}
		if len(line) == 1 {
			if kind, err := chess.ParsePromotion(line); err == nil {
				return kind, nil
			}
		}
		fmt.Fprint(tp.out, replyBadChoice)
	}
}

// readLine returns the next input line without its line ending. Running
// out of input mid-game is an error.
func (tp *TextPlayer) readLine() (string, error) {
	line, err := tp.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err == io.EOF {
		return "", fmt.Errorf("%v player waiting for input: %w", tp.Colour(), io.ErrUnexpectedEOF)
	}
	if err != nil {
		return "", errors.Wrap(err, "reading input")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
