package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// errorBody is the JSON body of every failed request.
type errorBody struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
	Move   string `json:"move,omitempty"`
}

// statusFor maps an error from the service to an HTTP status.
func statusFor(err error) int {
	var rule *errors.RuleError
	switch {
	case errors.As(err, &rule):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, errors.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, errors.ErrNotYourTurn), errors.Is(err, errors.ErrGameOver):
		return fiber.StatusConflict
	case errors.Is(err, errors.ErrInvalidNotation), errors.Is(err, errors.ErrPromotionChoice):
		return fiber.StatusBadRequest
	case errors.Is(err, errors.ErrTooManyGames):
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

// bodyFor builds the error body. Rule violations report their reason text.
func bodyFor(err error) errorBody {
	var rule *errors.RuleError
	if errors.As(err, &rule) {
		return errorBody{Error: rule.Reason.String(), Reason: rule.Reason.String(), Move: rule.Move}
	}
	return errorBody{Error: err.Error()}
}

// writeError sends err with its mapped status.
func writeError(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(bodyFor(err))
}

// errorHandler renders errors returned by handlers and middleware, including
// fiber's own (unknown route, bad method) and recovered panics.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(errorBody{Error: fe.Message})
	}
	return writeError(c, err)
}
