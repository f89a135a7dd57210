package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestWebsocketReceivesLeaderboard(t *testing.T) {
	srv, ts := newTestServer(t)
	seedOfficials(t, srv)
	startGame(t, ts, "Alice", "Bob")

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/game"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Skipf("skipping test; websocket dial unavailable: %v", err)
	}
	defer conn.Close()

	// The initial message carries the current standings.
	message := readLeaderboardMessage(t, conn, 5*time.Second)
	scores := message["leaderboard"].([]any)
	if len(scores) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(scores))
	}

	question := fetchQuestion(t, ts, "identify_official")
	doRequest(t, ts, http.MethodPost, "/api/game/answer", map[string]any{
		"answer": "wrong guess", "player": "Alice", "question_seq": question["seq"],
	})

	message = readLeaderboardMessage(t, conn, 5*time.Second)
	if message["game_active"] != true {
		t.Fatalf("expected active game in broadcast, got %#v", message)
	}
}

func readLeaderboardMessage(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]any {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(timeout))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read websocket message: %v", err)
	}
	var message map[string]any
	if err := json.Unmarshal(payload, &message); err != nil {
		t.Fatalf("decode websocket message: %v", err)
	}
	if message["type"] != "leaderboard" {
		t.Fatalf("expected leaderboard message, got %#v", message)
	}
	return message
}
