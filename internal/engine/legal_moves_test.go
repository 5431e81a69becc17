package engine

import (
	"math/rand"
	"sort"
	"testing"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestLegalMoves_InitialPosition(t *testing.T) {
	b := chess.NewStandardBoard()

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		p := NewPlayer(colour, b, nil)
		testutil.AssertEqual(t, len(p.LegalMoves()), 20, "%v legal moves", colour)
		testutil.AssertTrue(t, p.HasAnyLegalMove(), "%v has a legal move", colour)
	}
}

func TestLegalMoves_IncludesCastling(t *testing.T) {
	b := testutil.MustBoard(t, "Ke1", "Ra1", "Rh1", "ke8")
	moves := NewPlayer(chess.White, b, nil).LegalMoves()

	testutil.AssertTrue(t, containsMove(moves, testutil.MustMove(t, "e1g1")), "king-side castling listed")
	testutil.AssertTrue(t, containsMove(moves, testutil.MustMove(t, "e1c1")), "queen-side castling listed")
}

// oracleMoves returns the legal moves of the reference implementation as
// 4 character strings. Promotions to different pieces collapse into one.
func oracleMoves(g *nchess.Game) []string {
	seen := map[string]bool{}
	var moves []string
	for _, m := range g.ValidMoves() {
		s := m.S1().String() + m.S2().String()
		if !seen[s] {
			seen[s] = true
			moves = append(moves, s)
		}
	}
	sort.Strings(moves)
	return moves
}

func moveStrings(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

// TestLegalMoves_AgreesWithReference plays seeded random games and compares
// the legal move list after every ply against github.com/notnil/chess.
// Random illegal attempts must be rejected without touching the board.
func TestLegalMoves_AgreesWithReference(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping random games in short mode")
	}

	const (
		games    = 25
		maxPlies = 120
	)

	for seed := int64(1); seed <= games; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := chess.NewStandardBoard()
		players := []*Player{NewPlayer(chess.White, b, AlwaysQueen), NewPlayer(chess.Black, b, AlwaysQueen)}
		ref := nchess.NewGame(nchess.UseNotation(nchess.UCINotation{}))

		for ply := 0; ply < maxPlies && ref.Outcome() == nchess.NoOutcome; ply++ {
			p := players[ply%2]
			legal := p.LegalMoves()
			got := moveStrings(legal)
			want := oracleMoves(ref)
			if len(got) != len(want) || !sameStrings(got, want) {
				t.Fatalf("seed %d ply %d: legal moves mismatch\nmoves so far: %v\n got: %v\nwant: %v",
					seed, ply, b.Moves(), got, want)
			}
			if len(legal) == 0 {
				testutil.AssertTrue(t, p.IsCheckmate() || p.IsStalemate(), "seed %d ply %d: no moves but not terminal", seed, ply)
				break
			}

			probeIllegal(t, rng, p, legal)

			m := legal[rng.Intn(len(legal))]
			uci := m.String()
			if b.PieceAt(m.From).Kind() == chess.Pawn && (m.To.Row == 1 || m.To.Row == b.Height()) {
				uci += "q"
			}
			if err := p.Execute(m); err != nil {
				t.Fatalf("seed %d ply %d: Execute(%v) = %v", seed, ply, m, err)
			}
			if err := ref.MoveStr(uci); err != nil {
				t.Fatalf("seed %d ply %d: reference rejected %s: %v", seed, ply, uci, err)
			}
		}
	}
}

// probeIllegal tries a handful of random moves that are not legal and
// checks each is rejected as a rule violation with the board unchanged.
func probeIllegal(t *testing.T, rng *rand.Rand, p *Player, legal []chess.Move) {
	t.Helper()
	b := p.Board()
	for i := 0; i < 8; i++ {
		from := chess.Sq(rng.Intn(8)+1, rng.Intn(8)+1)
		to := chess.Sq(rng.Intn(8)+1, rng.Intn(8)+1)
		if from == to {
			continue
		}
		m := chess.Move{From: from, To: to}
		if containsMove(legal, m) {
			continue
		}
		before := b.Snapshot()
		err := p.Execute(m)
		if _, ok := chesserrors.ReasonOf(err); !ok {
			t.Fatalf("Execute(%v) of an illegal move = %v, want a rule violation", m, err)
		}
		testutil.AssertEqual(t, b.Snapshot(), before, "board after rejected %v", m)
	}
}

func sameStrings(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
