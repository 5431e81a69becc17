// Package errors provides sentinel errors and error types for the chess rules
// engine. It defines the rule-violation reasons reported to players and
// structured error types that preserve context while allowing inspection
// with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that violates chess rules.
	// Every *RuleError matches it.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidNotation indicates malformed square, move or placement text.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrInvalidBoard indicates a board constructed with pieces off the
	// board or sharing a square.
	ErrInvalidBoard = errors.New("invalid board")

	// ErrCorruptBoard indicates a broken board invariant (a piece missing
	// that was just observed, no King for a side). It is raised by panic.
	ErrCorruptBoard = errors.New("board invariant violated")

	// ErrPromotionChoice indicates a promotion token other than R, N, B or Q.
	ErrPromotionChoice = errors.New("invalid promotion choice")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameNotFound indicates an unknown game id.
	ErrGameNotFound = errors.New("game not found")

	// ErrGameOver indicates a move submitted after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrNotYourTurn indicates a move submitted for the side not to move.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrTooManyGames indicates the session table is full.
	ErrTooManyGames = errors.New("too many games")
)

// Reason enumerates the rule violations a move attempt can be rejected with.
type Reason int

const (
	ReasonOffBoard Reason = iota
	ReasonNoPiece
	ReasonEnemyPiece
	ReasonUnreachable
	ReasonSelfCheck
	ReasonCastlingPosition
	ReasonCastlingMoved
	ReasonCastlingBlocked
	ReasonCastlingThroughCheck
	ReasonEnPassantNotPawn
	ReasonEnPassantRank
	ReasonEnPassantDestination
	ReasonEnPassantNoPawn
	ReasonEnPassantStatus
	numReasons
)

var reasonText = [numReasons]string{
	ReasonOffBoard:             "selected squares off board",
	ReasonNoPiece:              "no piece selected",
	ReasonEnemyPiece:           "cannot select enemy piece",
	ReasonUnreachable:          "cannot move to or capture at new square",
	ReasonSelfCheck:            "move will leave King in check",
	ReasonCastlingPosition:     "pieces not at castling position",
	ReasonCastlingMoved:        "castling pieces moved",
	ReasonCastlingBlocked:      "castling path blocked",
	ReasonCastlingThroughCheck: "cannot castle through checks",
	ReasonEnPassantNotPawn:     "cannot en passant with pieces other than Pawn",
	ReasonEnPassantRank:        "cannot en passant from invalid rank",
	ReasonEnPassantDestination: "invalid en passant destination",
	ReasonEnPassantNoPawn:      "no enemy Pawn to en passant capture",
	ReasonEnPassantStatus:      "enemy pawn invalid en passant status",
}

// String returns the user-facing wording of the reason.
func (r Reason) String() string {
	if r >= 0 && r < numReasons {
		return reasonText[r]
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// RuleError reports a rejected move. It is an expected outcome: the caller
// may retry with a different move.
type RuleError struct {
	Reason Reason
	Move   string // The move text, if known
}

// Error returns the reason text, prefixed by the move when known.
func (e *RuleError) Error() string {
	if e.Move != "" {
		return fmt.Sprintf("%s: %s", e.Move, e.Reason)
	}
	return e.Reason.String()
}

// Is makes every RuleError match ErrIllegalMove.
func (e *RuleError) Is(target error) bool {
	return target == ErrIllegalMove
}

// NewRuleError creates a RuleError for the given move text.
func NewRuleError(reason Reason, move string) *RuleError {
	return &RuleError{Reason: reason, Move: move}
}

// ReasonOf extracts the rule-violation reason from err, if it carries one.
func ReasonOf(err error) (Reason, bool) {
	var re *RuleError
	if errors.As(err, &re) {
		return re.Reason, true
	}
	return 0, false
}

// GameError wraps errors with game context, including the game id,
// ply position, and move information. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	GameID   string // Game identifier (if known)
	PlyNum   int    // Ply number where error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.GameID != "" {
		parts = append(parts, fmt.Sprintf("game %s", e.GameID))
	}

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
// It mirrors the standard library so callers need only one import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
