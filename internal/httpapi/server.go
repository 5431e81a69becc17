// Package httpapi exposes the game service over HTTP and websockets.
package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/service"
)

type handler struct {
	manager *service.Manager
	cfg     *config.Config
}

// New builds the fiber app serving manager.
//
//	GET    /games             ids of live games
//	POST   /games             start a game
//	GET    /games/:id         board, turn, status and legal moves
//	POST   /games/:id/moves   {"move":"e2e4","promotion":"q"}
//	DELETE /games/:id         end a game
//	GET    /ws/games/:id      websocket move stream
func New(manager *service.Manager, cfg *config.Config) *fiber.App {
	h := &handler{manager: manager, cfg: cfg}

	app := fiber.New(fiber.Config{
		AppName:               "chess-rules-go",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	if cfg.Verbosity >= config.Commands && cfg.LogFile != nil {
		app.Use(logger.New(logger.Config{Output: cfg.LogFile}))
	}

	games := app.Group("/games")
	games.Get("/", h.listGames)
	games.Post("/", h.createGame)
	games.Get("/:id", h.getGame)
	games.Post("/:id/moves", h.makeMove)
	games.Delete("/:id", h.deleteGame)

	app.Use("/ws", upgradeOnly)
	app.Get("/ws/games/:id", websocket.New(h.stream))

	return app
}

func (h *handler) listGames(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"games": h.manager.List()})
}

func (h *handler) createGame(c *fiber.Ctx) error {
	state, err := h.manager.Create()
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(state)
}

func (h *handler) getGame(c *fiber.Ctx) error {
	state, err := h.manager.State(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(state)
}

func (h *handler) makeMove(c *fiber.Ctx) error {
	var req service.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, errors.Wrapf(errors.ErrInvalidNotation, "move request body: %v", err))
	}
	state, err := h.manager.Move(c.Params("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(state)
}

func (h *handler) deleteGame(c *fiber.Ctx) error {
	if err := h.manager.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// upgradeOnly refuses plain HTTP requests on websocket routes.
func upgradeOnly(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return c.Next()
}
