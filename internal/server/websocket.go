package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// leaderboardHub fans score updates out to every connected game screen.
type leaderboardHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func newLeaderboardHub() *leaderboardHub {
	return &leaderboardHub{
		conns: make(map[*websocket.Conn]struct{}),
	}
}

func (h *leaderboardHub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = struct{}{}
}

func (h *leaderboardHub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
	_ = conn.Close()
}

func (h *leaderboardHub) Send(conn *websocket.Conn, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	_ = conn.WriteMessage(websocket.TextMessage, data)
}

func (h *leaderboardHub) Broadcast(payload any) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	h.mu.Unlock()
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.Remove(conn)
		}
	}
}

func (s *Server) handleGameWebsocket(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	log.Printf("ws connected remote=%s", r.RemoteAddr)
	s.ws.Add(conn)
	if session, ok := s.game.Current(); ok {
		s.ws.Send(conn, leaderboardMessage(session))
	}
	go s.readGameWS(conn)
}

func (s *Server) readGameWS(conn *websocket.Conn) {
	defer s.ws.Remove(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			log.Printf("ws disconnected error=%v", err)
			return
		}
	}
}

func (s *Server) broadcastLeaderboard(session *Session) {
	if s.ws == nil || session == nil {
		return
	}
	s.ws.Broadcast(leaderboardMessage(session))
}

func leaderboardMessage(session *Session) map[string]any {
	return map[string]any{
		"type":        "leaderboard",
		"game_active": session.Active,
		"leaderboard": leaderboard(session),
	}
}
