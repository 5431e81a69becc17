package httpapi

import (
	"net"
	"testing"
	"time"

	fws "github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestParseMoveFrame(t *testing.T) {
	tests := []struct {
		frame    string
		wantMove string
		wantErr  bool
	}{
		{"e2e4", "e2e4", false},
		{" e2e4\n", "e2e4", false},
		{`{"move":"a7a8","promotion":"n"}`, "a7a8", false},
		{`{"move":`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.frame, func(t *testing.T) {
			req, err := parseMoveFrame([]byte(tt.frame))
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseMoveFrame(%q) error = %v, wantErr %v", tt.frame, err, tt.wantErr)
			}
			testutil.AssertEqual(t, req.Move, tt.wantMove)
		})
	}
}

// serve runs app on a loopback port until the test ends.
func serve(t *testing.T, app *fiber.App) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })
	return ln.Addr().String()
}

func dial(t *testing.T, addr, id string) *fws.Conn {
	t.Helper()
	conn, _, err := fws.DefaultDialer.Dial("ws://"+addr+"/ws/games/"+id, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *fws.Conn) Message {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	return msg
}

func TestStream(t *testing.T) {
	app, _ := newTestApp(t, 10)
	id := createGame(t, app)
	addr := serve(t, app)

	white := dial(t, addr, id)
	black := dial(t, addr, id)

	for _, conn := range []*fws.Conn{white, black} {
		msg := readMessage(t, conn)
		testutil.AssertEqual(t, msg.Type, MessageState)
		testutil.AssertEqual(t, msg.State.Turn, "white")
	}

	// A bad move is answered to the sender only.
	testutil.AssertNoError(t, white.WriteMessage(fws.TextMessage, []byte("e2e5")))
	msg := readMessage(t, white)
	testutil.AssertEqual(t, msg.Type, MessageError)
	testutil.AssertEqual(t, msg.Error.Reason, "cannot move to or capture at new square")

	// A good move reaches every watcher.
	testutil.AssertNoError(t, white.WriteMessage(fws.TextMessage, []byte(`{"move":"e2e4"}`)))
	for _, conn := range []*fws.Conn{white, black} {
		msg := readMessage(t, conn)
		testutil.AssertEqual(t, msg.Type, MessageState)
		testutil.AssertEqual(t, msg.State.Moves, []string{"e2e4"})
		testutil.AssertEqual(t, msg.State.Turn, "black")
	}
}

func TestStream_UnknownGame(t *testing.T) {
	app, _ := newTestApp(t, 10)
	addr := serve(t, app)

	conn := dial(t, addr, "missing")
	msg := readMessage(t, conn)
	testutil.AssertEqual(t, msg.Type, MessageError)
	testutil.AssertContains(t, msg.Error.Error, "game not found")
}
