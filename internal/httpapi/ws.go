package httpapi

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/service"
)

// Message types sent to websocket clients.
const (
	MessageState = "state"
	MessageError = "error"
)

// Message is one frame sent to a websocket client: the game state after a
// move by either side, or the error for a request of this client.
type Message struct {
	Type  string           `json:"type"`
	State *output.JSONGame `json:"state,omitempty"`
	Error *errorBody       `json:"error,omitempty"`
}

func stateMessage(state *output.JSONGame) Message {
	return Message{Type: MessageState, State: state}
}

func errorMessage(err error) Message {
	body := bodyFor(err)
	return Message{Type: MessageError, Error: &body}
}

// parseMoveFrame accepts either a JSON move request or bare notation.
func parseMoveFrame(data []byte) (service.MoveRequest, error) {
	text := strings.TrimSpace(string(data))
	if strings.HasPrefix(text, "{") {
		var req service.MoveRequest
		if err := json.Unmarshal([]byte(text), &req); err != nil {
			return req, errors.Wrapf(errors.ErrInvalidNotation, "move frame: %v", err)
		}
		return req, nil
	}
	return service.MoveRequest{Move: text}, nil
}

// stream serves one websocket client. The client first receives the
// current state, then every state after a move by anyone. Each text frame
// it sends is a move request; only failures are answered directly.
func (h *handler) stream(c *websocket.Conn) {
	id := c.Params("id")
	defer c.Close()

	updates, stop, err := h.manager.Watch(id)
	if err != nil {
		_ = c.WriteJSON(errorMessage(err))
		return
	}
	defer stop()
	h.cfg.Logf(config.Events, "game %s: watcher connected", id)

	outbox := make(chan Message, 16)
	quit := make(chan struct{})
	writerDone := make(chan struct{})

	// The writer owns the connection for writes. After a failed write it
	// closes the connection, which ends the read loop below.
	go func() {
		defer close(writerDone)
		failed := false
		for msg := range outbox {
			if failed {
				continue
			}
			if err := c.WriteJSON(msg); err != nil {
				failed = true
				c.Close()
			}
		}
	}()

	forwarderDone := make(chan struct{})
	go func() {
		defer close(forwarderDone)
		for {
			select {
			case state, ok := <-updates:
				if !ok {
					// Game deleted.
					c.Close()
					return
				}
				select {
				case outbox <- stateMessage(state):
				case <-quit:
					return
				}
			case <-quit:
				return
			}
		}
	}()

	if state, err := h.manager.State(id); err == nil {
		outbox <- stateMessage(state)
	}

	for {
		kind, data, err := c.ReadMessage()
		if err != nil {
			break
		}
		if kind != websocket.TextMessage {
			continue
		}
		req, err := parseMoveFrame(data)
		if err == nil {
			_, err = h.manager.Move(id, req)
		}
		if err != nil {
			outbox <- errorMessage(err)
		}
	}

	close(quit)
	<-forwarderDone
	close(outbox)
	<-writerDone
	h.cfg.Logf(config.Events, "game %s: watcher disconnected", id)
}
