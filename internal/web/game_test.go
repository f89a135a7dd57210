package web

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func renderComponent(t *testing.T, component templ.Component) string {
	t.Helper()
	var sb strings.Builder
	if err := component.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	return sb.String()
}

func gameTestData() GameData {
	return GameData{
		Mode: "identify_official",
		Players: []PlayerScore{
			{Name: "Alice", Score: 30, Streak: 3, Accuracy: 100, Correct: 3, Total: 3},
			{Name: "Bob", Score: 0, Streak: 0, Accuracy: 0, Correct: 0, Total: 2},
		},
		RevealDelayMS: 2000,
	}
}

func TestGameViewLeaderboardShowsStreakAndAccuracy(t *testing.T) {
	page := renderComponent(t, GameView(gameTestData()))

	if !strings.Contains(page, `🔥 3`) {
		t.Fatal("expected a streak indicator for a player on a streak")
	}
	if !strings.Contains(page, `100%`) {
		t.Fatal("expected the player accuracy in the leaderboard row")
	}
	if strings.Contains(page, `🔥 0`) {
		t.Fatal("players without a streak must not show the indicator")
	}
	start := strings.Index(page, `<li><span class="player">Bob`)
	if start < 0 {
		t.Fatal("expected a leaderboard row for Bob")
	}
	bobRow := page[start:]
	bobRow = bobRow[:strings.Index(bobRow, "</li>")]
	if strings.Contains(bobRow, "🔥") {
		t.Fatalf("expected no streak indicator for Bob, got %s", bobRow)
	}
}

func TestGameViewLeaderboardRendererHandlesStreak(t *testing.T) {
	page := renderComponent(t, GameView(gameTestData()))
	if !strings.Contains(page, "entry.streak > 1") {
		t.Fatal("expected the live renderer to gate the streak indicator on streak > 1")
	}
	if !strings.Contains(page, "entry.accuracy") {
		t.Fatal("expected the live renderer to show accuracy")
	}
}

func TestGameViewPreselectsRememberedPlayer(t *testing.T) {
	data := gameTestData()
	data.SelectedPlayer = "Bob"
	page := renderComponent(t, GameView(data))
	if !strings.Contains(page, `<option value="Bob" selected>Bob</option>`) {
		t.Fatal("expected the remembered player to be preselected")
	}
	if strings.Contains(page, `<option value="Alice" selected>`) {
		t.Fatal("only the remembered player may be preselected")
	}
}

func TestGameViewFocusesAnswerInput(t *testing.T) {
	page := renderComponent(t, GameView(gameTestData()))
	if !strings.Contains(page, "answerInput.focus()") {
		t.Fatal("expected the free-text input to be focused on render")
	}
}

func TestGameViewDelaysRevealAndCombinesNotification(t *testing.T) {
	page := renderComponent(t, GameView(gameTestData()))
	if !strings.Contains(page, "setTimeout(() => showReveal(data.reveal), controller.revealDelay)") {
		t.Fatal("expected the reveal to appear after the configured delay")
	}
	if strings.Contains(page, "setTimeout(nextQuestion, controller.revealDelay)") {
		t.Fatal("the reveal delay must not auto-advance past the reveal")
	}
	if !strings.Contains(page, `" streak!)"`) {
		t.Fatal("expected the streak callout folded into the points notification")
	}
}

func TestGameViewModalShowsTotalQuestions(t *testing.T) {
	page := renderComponent(t, GameView(gameTestData()))
	if !strings.Contains(page, `id="totalQuestions"`) {
		t.Fatal("expected a total questions line in the game-over modal")
	}
	if !strings.Contains(page, `"Total questions: "`) {
		t.Fatal("expected the modal handler to fill in the question count")
	}
}
