package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// nopCloser lets a buffer stand in for the record file.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func testConfig(input string, out, log *bytes.Buffer) *config.Config {
	return config.NewConfigBuilder().
		WithInput(strings.NewReader(input)).
		WithOutput(out).
		WithLog(log).
		Build()
}

func TestRun_FoolsMate(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig("f2f3\ne7e5\ng2g4\nd8h4\n", &out, &log)

	if code := run(context.Background(), cfg, nil); code != 0 {
		t.Fatalf("run() = %d; want 0\n%s", code, out.String())
	}
	if !strings.HasSuffix(out.String(), "Black wins!\n") {
		t.Errorf("output does not end with the result:\n%s", out.String())
	}
	if !strings.Contains(log.String(), "finished: Black wins!") {
		t.Errorf("log = %q; want the outcome", log.String())
	}
}

func TestRun_InputEndsEarly(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig("e2e4\n", &out, &log)

	if code := run(context.Background(), cfg, nil); code != 2 {
		t.Errorf("run() = %d; want 2", code)
	}
	if !strings.HasSuffix(out.String(), "Game abandoned.\n") {
		t.Errorf("output = %q; want abandonment notice", out.String())
	}
}

func TestRun_Cancelled(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig("e2e4\n", &out, &log)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if code := run(ctx, cfg, nil); code != 2 {
		t.Errorf("run() = %d; want 2", code)
	}
}

func TestRun_JSONRecord(t *testing.T) {
	var out, log, record bytes.Buffer
	cfg := testConfig("f2f3\ne7e5\ng2g4\nd8h4\n", &out, &log)
	rec := newRecorder(output.NewStateWriter(&record, cfg, true), nopCloser{})

	if code := run(context.Background(), cfg, rec); code != 0 {
		t.Fatalf("run() = %d; want 0", code)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}

	var states []output.JSONGame
	sc := bufio.NewScanner(&record)
	for sc.Scan() {
		var g output.JSONGame
		if err := json.Unmarshal(sc.Bytes(), &g); err != nil {
			t.Fatalf("record line %q: %v", sc.Text(), err)
		}
		states = append(states, g)
	}

	if len(states) != 5 {
		t.Fatalf("recorded %d states; want 5", len(states))
	}
	for i, g := range states {
		if len(g.Moves) != i {
			t.Errorf("state %d has %d moves; want %d", i, len(g.Moves), i)
		}
		if g.ID != states[0].ID || g.ID == "" {
			t.Errorf("state %d id = %q; want %q", i, g.ID, states[0].ID)
		}
	}
	if last := states[4]; last.Status != "checkmate" || last.Turn != "white" {
		t.Errorf("last state = %s/%s; want checkmate with white to move", last.Status, last.Turn)
	}
}

func TestRun_TextRecord(t *testing.T) {
	var out, log, record bytes.Buffer
	cfg := testConfig("e2e4\n", &out, &log)
	rec := newRecorder(output.NewStateWriter(&record, cfg, false), nopCloser{})

	run(context.Background(), cfg, rec)

	if got := strings.Count(record.String(), "   a b c d e f g h \n"); got != 2 {
		t.Errorf("recorded %d boards; want 2\n%s", got, record.String())
	}
	if !strings.Contains(record.String(), "4 | | | | |P| | | |") {
		t.Errorf("record is missing the position after e2e4:\n%s", record.String())
	}
}

func TestRunPerft(t *testing.T) {
	var out bytes.Buffer
	if err := runPerft(context.Background(), &out, 2, 2); err != nil {
		t.Fatalf("runPerft() = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 22 {
		t.Fatalf("got %d lines; want 20 moves, a blank line and the total\n%s", len(lines), out.String())
	}
	if lines[0] != "b1a3: 20" {
		t.Errorf("first line = %q; want %q", lines[0], "b1a3: 20")
	}
	if lines[21] != "Nodes searched: 400" {
		t.Errorf("last line = %q; want %q", lines[21], "Nodes searched: 400")
	}
}
