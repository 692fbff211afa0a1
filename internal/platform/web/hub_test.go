package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tilegrid/internal/core"
)

func newTestHub(t *testing.T) (*Hub, string) {
	t.Helper()
	hub := NewHub(log.New(io.Discard))
	srv := httptest.NewServer(hub.Handler())
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	return msg
}

func testFrame(x int) core.Frame {
	return core.Frame{
		Width:  3,
		Height: 3,
		Tiles:  []core.FrameTile{{X: 1, Y: 1, Glyph: '.', Color: core.ColorGreen}},
		Cursor: &core.FrameCursor{X: x, Y: 1, Glyph: 'X', Color: core.ColorBrightWhite},
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestLateJoinerGetsLastFrame(t *testing.T) {
	hub, url := newTestHub(t)
	hub.Publish("arena", 1, testFrame(1))

	conn := dial(t, url)
	msg := readMessage(t, conn)
	if msg.Game != "arena" || msg.Tick != 1 {
		t.Errorf("got %s tick %d, expected arena tick 1", msg.Game, msg.Tick)
	}
	if msg.Frame.Cursor == nil || msg.Frame.Cursor.Glyph != 'X' {
		t.Errorf("cursor = %+v", msg.Frame.Cursor)
	}
	if hub.Clients() != 1 {
		t.Errorf("clients = %d, expected 1", hub.Clients())
	}

	hub.Publish("arena", 2, testFrame(2))
	msg = readMessage(t, conn)
	if msg.Tick != 2 || msg.Frame.Cursor.X != 2 {
		t.Errorf("second message = %+v", msg)
	}
}

func TestFanOut(t *testing.T) {
	hub, url := newTestHub(t)
	a := dial(t, url)
	b := dial(t, url)
	waitFor(t, func() bool { return hub.Clients() == 2 })

	hub.Publish("crawl", 5, testFrame(1))
	for _, conn := range []*websocket.Conn{a, b} {
		if msg := readMessage(t, conn); msg.Game != "crawl" || msg.Tick != 5 {
			t.Errorf("got %+v", msg)
		}
	}
}

func TestMessageJSON(t *testing.T) {
	data, err := json.Marshal(Message{Game: "arena", Tick: 3, Frame: testFrame(1)})
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, want := range []string{`"game":"arena"`, `"tick":3`, `"frame":`, `"cursor":`} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON %s missing %s", s, want)
		}
	}
	if strings.Contains(s, `"selection"`) {
		t.Error("nil selection should be omitted")
	}
}

func TestDisconnectUnregisters(t *testing.T) {
	hub, url := newTestHub(t)
	conn := dial(t, url)
	waitFor(t, func() bool { return hub.Clients() == 1 })

	conn.Close()
	waitFor(t, func() bool { return hub.Clients() == 0 })
}

func TestSlowClientDropped(t *testing.T) {
	hub, url := newTestHub(t)
	dial(t, url) // never reads
	waitFor(t, func() bool { return hub.Clients() == 1 })

	// Large frames fill the socket buffers and then the send queue
	big := testFrame(1)
	for i := 0; i < 64*64; i++ {
		big.Tiles = append(big.Tiles, core.FrameTile{X: i % 64, Y: i / 64, Glyph: '.'})
	}
	for tick := uint64(0); tick < 5000 && hub.Clients() > 0; tick++ {
		hub.Publish("arena", tick, big)
	}
	if hub.Clients() != 0 {
		t.Error("a client that never reads should be dropped")
	}
}

func TestRejectsPlainHTTP(t *testing.T) {
	_, url := newTestHub(t)
	resp, err := http.Get("http" + strings.TrimPrefix(url, "ws"))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400", resp.StatusCode)
	}
}
