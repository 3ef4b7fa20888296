// Package server serves generated dungeons over HTTP and pushes them to
// websocket watchers.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/coder/websocket"

	"dungeongen/pkg/game/devtools"
	"dungeongen/pkg/game/generator"
)

// Message types sent to websocket watchers
const (
	MessageHello   = "hello"
	MessageDungeon = "dungeon"
	MessageError   = "error"
)

// Message is the envelope of every websocket message sent by the server
type Message struct {
	Type     string   `json:"type"`
	Watchers int      `json:"watchers,omitempty"`
	Dungeon  *Summary `json:"dungeon,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// SeedRequest is what watchers send to request a dungeon
type SeedRequest struct {
	Seed *int64 `json:"seed"`
}

var errMissingSeed = errors.New("missing seed")

// Server generates a fresh dungeon per request
type Server struct {
	gen         generator.DungeonGenerator
	defaultSeed int64
	hub         *Hub
}

// New creates a server. Requests without a seed use defaultSeed.
func New(gen generator.DungeonGenerator, defaultSeed int64) *Server {
	return &Server{gen: gen, defaultSeed: defaultSeed, hub: NewHub()}
}

// Hub returns the watcher hub
func (s *Server) Hub() *Hub {
	return s.hub
}

// Handler returns the HTTP routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/dungeon", s.handleExport)
	mux.HandleFunc("/dungeon.json", s.handleJSON)
	mux.HandleFunc("/dungeon.html", s.handleHTML)
	mux.HandleFunc("/ws", s.handleWebsocket)
	return mux
}

// ListenAndServe serves the routes on addr
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("Serving %s on %s", s.gen.Name(), addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) seedFromQuery(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("seed")
	if raw == "" {
		return s.defaultSeed, nil
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q: %w", raw, err)
	}
	return seed, nil
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	seed, err := s.seedFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := devtools.WriteExport(&buf, s.gen.Generate(seed)); err != nil {
		log.Printf("export of seed %d failed: %v", seed, err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleHTML(w http.ResponseWriter, r *http.Request) {
	seed, err := s.seedFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := devtools.WriteHTML(&buf, s.gen.Generate(seed)); err != nil {
		log.Printf("html for seed %d failed: %v", seed, err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleJSON(w http.ResponseWriter, r *http.Request) {
	seed, err := s.seedFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(Summarize(s.gen.Generate(seed))); err != nil {
		log.Printf("encoding seed %d failed: %v", seed, err)
	}
}

// handleWebsocket registers the watcher, greets it and then serves seed
// requests until the connection closes. Every generated dungeon goes to all
// watchers.
func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		log.Printf("websocket accept failed: %v", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	ctx := r.Context()
	watchers := s.hub.Add(conn)
	defer s.hub.Remove(conn)
	log.Printf("watcher connected (%d total)", watchers)

	if err := writeMessage(ctx, conn, Message{Type: MessageHello, Watchers: watchers}); err != nil {
		return
	}

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			log.Printf("watcher disconnected: %v", websocket.CloseStatus(err))
			return
		}

		seed, err := parseSeedRequest(data)
		if err != nil {
			_ = writeMessage(ctx, conn, Message{Type: MessageError, Error: err.Error()})
			continue
		}

		summary := Summarize(s.gen.Generate(seed))
		msg, err := json.Marshal(Message{Type: MessageDungeon, Dungeon: &summary})
		if err != nil {
			log.Printf("encoding seed %d failed: %v", seed, err)
			continue
		}
		s.hub.Broadcast(msg)
	}
}

func parseSeedRequest(data []byte) (int64, error) {
	var req SeedRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return 0, fmt.Errorf("bad request: %w", err)
	}
	if req.Seed == nil {
		return 0, errMissingSeed
	}
	return *req.Seed, nil
}

func writeMessage(ctx context.Context, conn *websocket.Conn, m Message) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, data)
}
