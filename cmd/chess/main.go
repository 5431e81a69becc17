// chess plays a game of chess between two people sharing a terminal.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	applyFlags(cfg, cfg.OutputFile == os.Stdout && isTerminal(os.Stdout))

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *perftDepth > 0 {
		if err := runPerft(ctx, cfg.OutputFile, *perftDepth, *workers); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			stop()
			os.Exit(1)
		}
		return
	}

	record := setupRecordFile(cfg)

	code := run(ctx, cfg, record)
	if record != nil {
		if err := record.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing record: %v\n", err)
			code = 1
		}
	}
	stop()
	os.Exit(code)
}

func usage() {
	fmt.Fprintf(os.Stderr, "chess version %s\n\n", programVersion)
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Moves are entered as from and to squares, e.g. e2e4.\n")
	fmt.Fprintf(os.Stderr, "Castle by moving the king two squares. Type \"moves\" to list legal moves.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// setupLogFile configures the log file from flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	} else if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file from flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// setupRecordFile opens the position record requested by flags, if any.
func setupRecordFile(cfg *config.Config) *recorder {
	if *recordFile == "" {
		return nil
	}
	file, err := os.Create(*recordFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating record file %s: %v\n", *recordFile, err)
		os.Exit(1)
	}
	// The record is never coloured, whatever the terminal supports.
	plain := *cfg
	plain.Board.Colour = false
	return newRecorder(output.NewStateWriter(file, &plain, *jsonOutput), file)
}

// run plays one game on cfg's streams and returns the process exit code.
// When rec is not nil, every position is written to it.
func run(ctx context.Context, cfg *config.Config, rec *recorder) int {
	board := chess.NewStandardBoard()
	in := bufio.NewReader(cfg.Input)

	var white, black game.Actor = game.NewTextPlayer(chess.White, board, in, cfg),
		game.NewTextPlayer(chess.Black, board, in, cfg)
	if rec != nil {
		white, black = rec.wrap(white, board), rec.wrap(black, board)
	}
	driver := game.NewDriver(cfg, white, black)

	if rec != nil {
		rec.id = driver.ID
		if err := rec.w.WriteState(rec.id, board, chess.White); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing record: %v\n", err)
			return 1
		}
	}

	if _, err := driver.Play(ctx); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, io.ErrUnexpectedEOF) {
			fmt.Fprintf(cfg.OutputFile, "\nGame abandoned.\n")
			cfg.Logf(config.Events, "%v", err)
			return 2
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runPerft prints the node count below every legal first move, then the total.
func runPerft(ctx context.Context, w io.Writer, depth, numWorkers int) error {
	board := chess.NewStandardBoard()
	results, total, err := worker.Divide(ctx, board, chess.White, depth, numWorkers)
	if err != nil {
		return err
	}
	for _, r := range results {
		name := r.Move.String()
		if engine.IsPromotion(board, r.Move) {
			name += string(r.Promotion.Letter())
		}
		fmt.Fprintf(w, "%s: %d\n", name, r.Nodes)
	}
	fmt.Fprintf(w, "\nNodes searched: %d\n", total)
	return nil
}
