package output

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func playMoves(t *testing.T, b *chess.Board, moves ...string) chess.Colour {
	t.Helper()
	turn := chess.White
	for _, s := range moves {
		if err := engine.NewPlayer(turn, b, nil).Execute(testutil.MustMove(t, s)); err != nil {
			t.Fatalf("Execute(%s) = %v", s, err)
		}
		turn = turn.Opposite()
	}
	return turn
}

func TestGameToJSON_Initial(t *testing.T) {
	g := GameToJSON("g1", chess.NewStandardBoard(), chess.White)

	testutil.AssertEqual(t, g.ID, "g1")
	testutil.AssertEqual(t, g.Turn, "white")
	testutil.AssertEqual(t, g.Status, "active")
	testutil.AssertEqual(t, g.Result, "")
	testutil.AssertFalse(t, g.Check, "check")
	testutil.AssertEqual(t, g.Board, initialBoardText)
	testutil.AssertEqual(t, len(g.Pieces), 32)
	testutil.AssertEqual(t, g.Pieces[0], JSONPiece{Square: "a1", Colour: "white", Kind: "rook", Letter: "R"})
	testutil.AssertEqual(t, len(g.Moves), 0)
	testutil.AssertEqual(t, len(g.LegalMoves), 20)
	testutil.AssertEqual(t, g.LastMove, "")
}

func TestGameToJSON_Checkmate(t *testing.T) {
	b := chess.NewStandardBoard()
	turn := playMoves(t, b, "f2f3", "e7e5", "g2g4", "d8h4")

	g := GameToJSON("mate", b, turn)

	testutil.AssertEqual(t, g.Turn, "white")
	testutil.AssertEqual(t, g.Status, "checkmate")
	testutil.AssertEqual(t, g.Result, "Black wins!")
	testutil.AssertTrue(t, g.Check, "check")
	testutil.AssertEqual(t, g.Moves, []string{"f2f3", "e7e5", "g2g4", "d8h4"})
	testutil.AssertEqual(t, g.LastMove, "d8h4")
	testutil.AssertNil(t, g.LegalMoves, "no legal moves listed once the game is over")
}

func TestJSONWriter_Single(t *testing.T) {
	var buf bytes.Buffer
	b := chess.NewStandardBoard()
	writer := NewJSONWriterSingle(&buf)

	testutil.AssertNoError(t, writer.WriteState("g1", b, chess.White))
	turn := playMoves(t, b, "e2e4")
	testutil.AssertNoError(t, writer.WriteState("g1", b, turn))
	testutil.AssertNoError(t, writer.Close())

	var lines []JSONGame
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var g JSONGame
		if err := json.Unmarshal(sc.Bytes(), &g); err != nil {
			t.Fatalf("line %q is not JSON: %v", sc.Text(), err)
		}
		lines = append(lines, g)
	}

	testutil.AssertEqual(t, len(lines), 2)
	testutil.AssertEqual(t, lines[0].Turn, "white")
	testutil.AssertEqual(t, lines[1].Turn, "black")
	testutil.AssertEqual(t, lines[1].Moves, []string{"e2e4"})
}

// TestJSONWriter_Batch verifies states are captured when written, not when flushed
func TestJSONWriter_Batch(t *testing.T) {
	var buf bytes.Buffer
	b := chess.NewStandardBoard()
	writer := NewJSONWriter(&buf)

	testutil.AssertNoError(t, writer.WriteState("g1", b, chess.White))
	playMoves(t, b, "d2d4")
	testutil.AssertEqual(t, buf.Len(), 0, "nothing written before Flush")

	testutil.AssertNoError(t, writer.Close())

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	testutil.AssertEqual(t, len(out.Games), 1)
	testutil.AssertEqual(t, len(out.Games[0].Moves), 0)

	// A second flush has nothing to write.
	buf.Reset()
	testutil.AssertNoError(t, writer.Flush())
	testutil.AssertEqual(t, buf.Len(), 0)
}

func TestTextWriter_WriteState(t *testing.T) {
	var buf bytes.Buffer
	writer := NewTextWriter(&buf, config.NewConfig())

	testutil.AssertNoError(t, writer.WriteState("ignored", chess.NewStandardBoard(), chess.White))
	testutil.AssertNoError(t, writer.Flush())
	testutil.AssertNoError(t, writer.Close())
	testutil.AssertEqual(t, buf.String(), initialBoardText)
}

// TestStateWriter_Interface verifies that writers implement the interface
func TestStateWriter_Interface(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()

	var _ StateWriter = NewTextWriter(&buf, cfg)
	var _ StateWriter = NewJSONWriter(&buf)

	_, isJSON := NewStateWriter(&buf, cfg, true).(*JSONWriter)
	testutil.AssertTrue(t, isJSON, "NewStateWriter(json) returns a JSONWriter")
	_, isText := NewStateWriter(&buf, cfg, false).(*TextWriter)
	testutil.AssertTrue(t, isText, "NewStateWriter(text) returns a TextWriter")
}
