package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"

	"dungeongen/pkg/game/config"
	"dungeongen/pkg/game/devtools"
	"dungeongen/pkg/game/generator"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	gen, err := generator.New(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	s := New(gen, 42)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func get(t *testing.T, url string) (int, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, body
}

func TestHandleExport_MatchesWriteExport(t *testing.T) {
	_, ts := newTestServer(t)

	status, body := get(t, ts.URL+"/dungeon?seed=7")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}

	d, err := generator.Generate(config.Default(), 7)
	if err != nil {
		t.Fatal(err)
	}
	var want bytes.Buffer
	if err := devtools.WriteExport(&want, d); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(body, want.Bytes()) {
		t.Error("served export differs from WriteExport output")
	}
}

func TestHandleExport_DefaultAndBadSeed(t *testing.T) {
	_, ts := newTestServer(t)

	_, body := get(t, ts.URL+"/dungeon")
	if !strings.HasPrefix(string(body), "Seed: 42\n") {
		t.Errorf("default seed export starts with %q", strings.SplitN(string(body), "\n", 2)[0])
	}

	if status, _ := get(t, ts.URL+"/dungeon?seed=abc"); status != http.StatusBadRequest {
		t.Errorf("bad seed status = %d, want 400", status)
	}
}

func TestHandleHTML(t *testing.T) {
	_, ts := newTestServer(t)

	status, body := get(t, ts.URL+"/dungeon.html?seed=5")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(string(body), "<title>Dungeon 5</title>") {
		t.Error("page is not the seed 5 dungeon")
	}
}

func TestHandleJSON(t *testing.T) {
	_, ts := newTestServer(t)

	status, body := get(t, ts.URL+"/dungeon.json?seed=11")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	var s Summary
	if err := json.Unmarshal(body, &s); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	if s.Seed != 11 || s.Width != cfg.WorldWidth || s.Height != cfg.WorldHeight {
		t.Errorf("summary header = seed %d %dx%d", s.Seed, s.Width, s.Height)
	}
	if len(s.Rows) != cfg.WorldHeight || len(s.Rows[0]) != cfg.WorldWidth {
		t.Errorf("got %d rows of %d cells", len(s.Rows), len(s.Rows[0]))
	}
	if len(s.Rooms) == 0 {
		t.Fatal("no rooms")
	}
	if len(s.Diagnostics.DisconnectedRooms) == 0 && len(s.Edges) != len(s.Rooms)-1 {
		t.Errorf("got %d edges for %d connected rooms", len(s.Edges), len(s.Rooms))
	}
	for _, r := range s.Rooms {
		if r.Doors > r.MaxDoors {
			t.Errorf("room %d has %d doors over cap %d", r.ID, r.Doors, r.MaxDoors)
		}
	}
}

func dial(t *testing.T, ctx context.Context, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readMessage(t *testing.T, ctx context.Context, conn *websocket.Conn) Message {
	t.Helper()
	_, data, err := conn.Read(ctx)
	if err != nil {
		t.Fatal(err)
	}
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestWebsocket_BroadcastsToEveryWatcher(t *testing.T) {
	s, ts := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	first := dial(t, ctx, ts)
	if m := readMessage(t, ctx, first); m.Type != MessageHello || m.Watchers != 1 {
		t.Fatalf("first hello = %+v", m)
	}
	second := dial(t, ctx, ts)
	if m := readMessage(t, ctx, second); m.Type != MessageHello || m.Watchers != 2 {
		t.Fatalf("second hello = %+v", m)
	}
	if s.Hub().Count() != 2 {
		t.Errorf("hub has %d watchers, want 2", s.Hub().Count())
	}

	if err := first.Write(ctx, websocket.MessageText, []byte(`{"seed":3}`)); err != nil {
		t.Fatal(err)
	}
	for name, conn := range map[string]*websocket.Conn{"first": first, "second": second} {
		m := readMessage(t, ctx, conn)
		if m.Type != MessageDungeon || m.Dungeon == nil || m.Dungeon.Seed != 3 {
			t.Errorf("%s watcher got %+v", name, m)
		}
	}
}

func TestWebsocket_BadRequestOnlyAnswersSender(t *testing.T) {
	_, ts := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn := dial(t, ctx, ts)
	readMessage(t, ctx, conn)

	for _, req := range []string{`{}`, `not json`} {
		if err := conn.Write(ctx, websocket.MessageText, []byte(req)); err != nil {
			t.Fatal(err)
		}
		if m := readMessage(t, ctx, conn); m.Type != MessageError || m.Error == "" {
			t.Errorf("request %q got %+v", req, m)
		}
	}
}

func TestParseSeedRequest(t *testing.T) {
	if seed, err := parseSeedRequest([]byte(`{"seed":-5}`)); err != nil || seed != -5 {
		t.Errorf("parseSeedRequest = %d, %v", seed, err)
	}
	if _, err := parseSeedRequest([]byte(`{"seed":null}`)); err != errMissingSeed {
		t.Errorf("null seed err = %v, want errMissingSeed", err)
	}
}
