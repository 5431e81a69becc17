package engine

import (
	"fmt"
	"testing"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestTryCastle_KingSideFromInitialPosition(t *testing.T) {
	b := chess.NewStandardBoard()
	for _, sq := range []string{"f1", "g1"} {
		b.TryRemovePiece(b.PieceAt(testutil.MustSquare(t, sq)))
	}
	white := NewPlayer(chess.White, b, nil)

	testutil.AssertNoError(t, white.TryCastle(KingSide))

	testutil.AssertPiece(t, b, "g1", chess.White, chess.King)
	testutil.AssertPiece(t, b, "f1", chess.White, chess.Rook)
	testutil.AssertEmpty(t, b, "e1", "h1")
	testutil.AssertEqual(t, b.PieceAt(testutil.MustSquare(t, "g1")).MoveCount(), 1, "king moves")
	testutil.AssertEqual(t, b.PieceAt(testutil.MustSquare(t, "f1")).MoveCount(), 1, "rook moves")
	last, _ := b.LastMove()
	testutil.AssertEqual(t, last, testutil.MustMove(t, "e1g1"))
}

func TestTryCastle_Success(t *testing.T) {
	tests := []struct {
		name       string
		placements []string
		colour     chess.Colour
		side       Side
		king, rook string
	}{
		{"white queen-side", []string{"Ke1", "Ra1", "ke8"}, chess.White, QueenSide, "c1", "d1"},
		{"black king-side", []string{"Ke1", "ke8", "rh8"}, chess.Black, KingSide, "g8", "f8"},
		{"black queen-side", []string{"Ke1", "ke8", "ra8"}, chess.Black, QueenSide, "c8", "d8"},
		{"b-file attacked does not matter", []string{"Ke1", "Ra1", "ke8", "rb8"}, chess.White, QueenSide, "c1", "d1"},
		{"rook attacked does not matter", []string{"Ke1", "Rh1", "ke8", "rh8"}, chess.White, KingSide, "g1", "f1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, tt.placements...)
			testutil.AssertNoError(t, NewPlayer(tt.colour, b, nil).TryCastle(tt.side))
			testutil.AssertPiece(t, b, tt.king, tt.colour, chess.King)
			testutil.AssertPiece(t, b, tt.rook, tt.colour, chess.Rook)
		})
	}
}

func TestTryCastle_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		placements []string
		side       Side
		want       chesserrors.Reason
	}{
		{"no rook", []string{"Ke1", "ke8"}, KingSide, chesserrors.ReasonCastlingPosition},
		{"king off home square", []string{"Kf1", "Rh1", "ke8"}, KingSide, chesserrors.ReasonCastlingPosition},
		{"wrong piece in corner", []string{"Ke1", "Nh1", "ke8"}, KingSide, chesserrors.ReasonCastlingPosition},
		{"enemy rook in corner", []string{"Ke1", "rh1", "ke8"}, KingSide, chesserrors.ReasonCastlingPosition},
		{"king has moved", []string{"Ke1@2", "Rh1", "ke8"}, KingSide, chesserrors.ReasonCastlingMoved},
		{"rook has moved", []string{"Ke1", "Ra1@2", "ke8"}, QueenSide, chesserrors.ReasonCastlingMoved},
		{"knight in the way", []string{"Ke1", "Ra1", "Nb1", "ke8"}, QueenSide, chesserrors.ReasonCastlingBlocked},
		{"enemy in the way", []string{"Ke1", "Rh1", "bg1", "ke8"}, KingSide, chesserrors.ReasonCastlingBlocked},
		{"king in check", []string{"Ke1", "Rh1", "ke8", "re7"}, KingSide, chesserrors.ReasonCastlingThroughCheck},
		{"crossing square attacked", []string{"Ke1", "Rh1", "ke8", "rf8"}, KingSide, chesserrors.ReasonCastlingThroughCheck},
		{"destination attacked", []string{"Ke1", "Rh1", "ke8", "bc5"}, KingSide, chesserrors.ReasonCastlingThroughCheck},
		{"pawn covers crossing square", []string{"Ke1", "Rh1", "ke8", "pg2@5"}, KingSide, chesserrors.ReasonCastlingThroughCheck},
		{"queen-side destination attacked", []string{"Ke1", "Ra1", "ke8", "rc8"}, QueenSide, chesserrors.ReasonCastlingThroughCheck},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, tt.placements...)
			before := b.Snapshot()

			err := NewPlayer(chess.White, b, nil).TryCastle(tt.side)
			assertReason(t, err, tt.want)
			testutil.AssertEqual(t, b.Snapshot(), before, "board after rejected castling")
		})
	}
}

func TestTryCastle_RookFlagMustMatchSide(t *testing.T) {
	b, err := chess.NewBoardWithPieces(8, 8,
		chess.NewPiece(chess.King, chess.White, chess.Sq(1, 5)),
		chess.NewRook(chess.White, chess.Sq(1, 8), false),
		chess.NewPiece(chess.King, chess.Black, chess.Sq(8, 5)),
	)
	testutil.AssertNoError(t, err)

	assertReason(t, NewPlayer(chess.White, b, nil).TryCastle(KingSide), chesserrors.ReasonCastlingPosition)
}

func TestCastleMove(t *testing.T) {
	b := chess.NewStandardBoard()
	tests := []struct {
		colour chess.Colour
		side   Side
		want   string
	}{
		{chess.White, KingSide, "e1g1"},
		{chess.White, QueenSide, "e1c1"},
		{chess.Black, KingSide, "e8g8"},
		{chess.Black, QueenSide, "e8c8"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := NewPlayer(tt.colour, b, nil).CastleMove(tt.side)
			testutil.AssertEqual(t, got.String(), tt.want)
		})
	}
}

func TestTryCastle_NarrowBoard(t *testing.T) {
	for _, width := range []int{6, 7} {
		t.Run(fmt.Sprintf("width %d", width), func(t *testing.T) {
			b, err := chess.NewBoardWithPieces(width, 8,
				chess.NewPiece(chess.King, chess.White, chess.Sq(1, 5)),
				chess.NewRook(chess.White, chess.Sq(1, 1), false),
				chess.NewRook(chess.White, chess.Sq(1, width), true),
				chess.NewPiece(chess.King, chess.Black, chess.Sq(8, 3)),
			)
			testutil.AssertNoError(t, err)
			white := NewPlayer(chess.White, b, nil)
			before := b.Snapshot()

			var listed []string
			for _, m := range white.LegalMoves() {
				listed = append(listed, m.String())
			}
			testutil.AssertTrue(t, slices.Contains(listed, "e1c1"), "LegalMoves() = %v, want e1c1", listed)
			testutil.AssertFalse(t, slices.Contains(listed, "e1g1"), "LegalMoves() = %v, want no e1g1", listed)

			assertReason(t, white.TryCastle(KingSide), chesserrors.ReasonCastlingPosition)
			testutil.AssertEqual(t, b.Snapshot(), before, "board after refused castle")

			testutil.AssertNoError(t, white.TryCastle(QueenSide))
			testutil.AssertPiece(t, b, "c1", chess.White, chess.King)
			testutil.AssertPiece(t, b, "d1", chess.White, chess.Rook)
		})
	}
}
