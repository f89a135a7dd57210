package web

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// GameView renders the live game screen. The round controller below owns all
// round state; handlers only read from it so a stale fetch can never clobber
// the question being played.
func GameView(data GameData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fakes := "false"
		if data.IncludeFakes {
			fakes = "true"
		}
		var rows strings.Builder
		for _, player := range data.Players {
			streak := ""
			if player.Streak > 1 {
				streak = ` <span class="streak">🔥 ` + itoa(player.Streak) + `</span>`
			}
			rows.WriteString(`<li><span class="player">` + esc(player.Name) + streak +
				`</span><span class="score">` + itoa(player.Score) +
				` <small class="accuracy">` + ftoa(player.Accuracy) + `%</small></span></li>`)
		}
		var options strings.Builder
		for _, player := range data.Players {
			selected := ""
			if player.Name == data.SelectedPlayer {
				selected = ` selected`
			}
			options.WriteString(`<option value="` + esc(player.Name) + `"` + selected + `>` + esc(player.Name) + `</option>`)
		}
		_, _ = io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>Guess That Official</title>
    <link rel="stylesheet" href="`+assetPath("/static/styles.css")+`"/>
  </head>
  <body>
    <main class="shell game-shell">
      <header class="game-header">
        <span class="tag">Guess That Official</span>
        <div id="notification" class="notification"></div>
      </header>

      <section class="panel question-panel">
        <h2 id="prompt">Ready?</h2>
        <div id="photoWrap" class="photo-wrap hidden">
          <img id="questionPhoto" alt="Official photo"/>
        </div>
        <div id="answerArea" class="answer-area hidden">
          <input id="answerInput" placeholder="Name, Position, State" autocomplete="off"/>
        </div>
        <div id="optionsArea" class="options-area hidden"></div>
        <div id="revealArea" class="reveal-area hidden">
          <p id="revealAnswer"></p>
          <p id="revealFunFact" class="fun-fact hidden"></p>
        </div>
      </section>

      <section class="panel controls-panel">
        <label>Who answered?
          <select id="playerSelect">
            <option value="">Select player...</option>
            `+options.String()+`
          </select>
        </label>
        <button id="submitAnswer" class="primary" type="button">Submit answer</button>
        <button id="nobodyGotIt" class="secondary" type="button">Nobody got it</button>
        <button id="nextQuestion" class="secondary" type="button">Next question</button>
        <button id="endGame" class="danger" type="button">End game</button>
        <div id="gameResult" class="result"></div>
      </section>

      <aside class="panel leaderboard-panel">
        <h2>Leaderboard</h2>
        <ul id="leaderboard">`+rows.String()+`</ul>
      </aside>

      <div id="gameOverModal" class="modal hidden">
        <div class="modal-body">
          <h2>Game over!</h2>
          <p id="winnerLine"></p>
          <p id="totalQuestions"></p>
          <ol id="finalScores"></ol>
          <a class="primary" href="/">Play again</a>
        </div>
      </div>
    </main>

    <script>
      const controller = {
        mode: "`+esc(data.Mode)+`",
        includeFakes: `+fakes+`,
        revealDelay: `+itoa(data.RevealDelayMS)+`,
        seq: 0,
        fetchToken: 0,
        selectedOption: null,
        answered: false
      };

      const prompt = document.getElementById("prompt");
      const photoWrap = document.getElementById("photoWrap");
      const questionPhoto = document.getElementById("questionPhoto");
      const answerArea = document.getElementById("answerArea");
      const answerInput = document.getElementById("answerInput");
      const optionsArea = document.getElementById("optionsArea");
      const revealArea = document.getElementById("revealArea");
      const revealAnswer = document.getElementById("revealAnswer");
      const revealFunFact = document.getElementById("revealFunFact");
      const playerSelect = document.getElementById("playerSelect");
      const gameResult = document.getElementById("gameResult");
      const notification = document.getElementById("notification");
      const leaderboardEl = document.getElementById("leaderboard");
      const submitBtn = document.getElementById("submitAnswer");
      const nobodyBtn = document.getElementById("nobodyGotIt");
      const nextBtn = document.getElementById("nextQuestion");

      function show(el) { el.classList.remove("hidden"); }
      function hide(el) { el.classList.add("hidden"); }

      function setButtonsEnabled(enabled) {
        submitBtn.disabled = !enabled;
        nobodyBtn.disabled = !enabled;
        nextBtn.disabled = !enabled;
      }

      function notify(message) {
        notification.textContent = message;
        show(notification);
        setTimeout(() => hide(notification), 2500);
      }

      function renderQuestion(question) {
        controller.seq = question.seq || 0;
        controller.selectedOption = null;
        controller.answered = false;
        const view = question.view;
        prompt.textContent = view.prompt;
        gameResult.textContent = "";
        hide(revealArea);
        hide(revealFunFact);
        if (view.show_photo && view.photo_path) {
          questionPhoto.src = "/" + view.photo_path;
          show(photoWrap);
        } else {
          hide(photoWrap);
        }
        if (view.show_answer_input) {
          answerInput.value = "";
          show(answerArea);
          answerInput.focus();
        } else {
          hide(answerArea);
        }
        optionsArea.innerHTML = "";
        if (view.show_options && view.tiles) {
          view.tiles.forEach((tile) => {
            const btn = document.createElement("button");
            btn.type = "button";
            btn.className = "option-tile";
            btn.dataset.id = tile.id;
            if (tile.photo_path) {
              const img = document.createElement("img");
              img.src = "/" + tile.photo_path;
              img.alt = "Option " + tile.label;
              btn.appendChild(img);
              const label = document.createElement("span");
              label.textContent = tile.label;
              btn.appendChild(label);
            } else {
              btn.textContent = tile.label + ". " + tile.name;
            }
            btn.addEventListener("click", () => {
              controller.selectedOption = tile.id;
              optionsArea.querySelectorAll(".option-tile").forEach((other) => other.classList.remove("selected"));
              btn.classList.add("selected");
            });
            optionsArea.appendChild(btn);
          });
          show(optionsArea);
        } else {
          hide(optionsArea);
        }
        setButtonsEnabled(true);
      }

      async function nextQuestion() {
        const token = ++controller.fetchToken;
        setButtonsEnabled(false);
        const res = await fetch("/api/game/question", {
          method: "POST",
          headers: { "Content-Type": "application/json" },
          body: JSON.stringify({ type: controller.mode, include_fakes: controller.includeFakes })
        }).catch(() => null);
        setButtonsEnabled(true);
        if (token !== controller.fetchToken) {
          return;
        }
        if (!res) {
          gameResult.textContent = "Network error. Try again.";
          return;
        }
        const data = await res.json();
        if (!data.success) {
          gameResult.textContent = data.message || "Failed to load question.";
          return;
        }
        renderQuestion(data.question);
      }

      function showReveal(reveal) {
        if (!reveal) {
          return;
        }
        revealAnswer.textContent = reveal.answer_text;
        if (reveal.show_fun_fact) {
          revealFunFact.textContent = reveal.fun_fact;
          show(revealFunFact);
        } else {
          hide(revealFunFact);
        }
        show(revealArea);
      }

      async function submitAnswer(answer) {
        if (controller.answered) {
          return;
        }
        const player = playerSelect.value;
        if (!player) {
          gameResult.textContent = "Please select which player answered!";
          return;
        }
        setButtonsEnabled(false);
        const res = await fetch("/api/game/answer", {
          method: "POST",
          headers: { "Content-Type": "application/json" },
          body: JSON.stringify({ answer, player, question_seq: controller.seq })
        }).catch(() => null);
        setButtonsEnabled(true);
        if (!res) {
          gameResult.textContent = "Network error. Try again.";
          return;
        }
        if (res.status === 409) {
          gameResult.textContent = "That question expired. Loading the next one...";
          await nextQuestion();
          return;
        }
        const data = await res.json();
        if (!data.success) {
          gameResult.textContent = data.message || "Could not score that answer.";
          return;
        }
        controller.answered = true;
        if (data.correct) {
          let message = "Correct! +" + data.points_earned + " points";
          if (data.streak > 1) {
            message += " (\u{1F525} " + data.streak + " streak!)";
          }
          notify(message);
        } else {
          notify("Not quite. The answer: " + data.correct_answer);
        }
        await refreshLeaderboard();
        setTimeout(() => showReveal(data.reveal), controller.revealDelay);
      }

      function renderLeaderboard(scores) {
        leaderboardEl.innerHTML = "";
        scores.forEach((entry) => {
          const li = document.createElement("li");
          const name = document.createElement("span");
          name.className = "player";
          name.textContent = entry.name;
          if (entry.streak > 1) {
            const streak = document.createElement("span");
            streak.className = "streak";
            streak.textContent = " \u{1F525} " + entry.streak;
            name.appendChild(streak);
          }
          const score = document.createElement("span");
          score.className = "score";
          score.textContent = entry.score;
          const accuracy = document.createElement("small");
          accuracy.className = "accuracy";
          accuracy.textContent = " " + entry.accuracy + "%";
          score.appendChild(accuracy);
          li.appendChild(name);
          li.appendChild(score);
          leaderboardEl.appendChild(li);
        });
      }

      async function refreshLeaderboard() {
        const res = await fetch("/api/game/leaderboard").catch(() => null);
        if (!res) {
          return;
        }
        renderLeaderboard(await res.json());
      }

      function connectLeaderboardWS() {
        const proto = window.location.protocol === "https:" ? "wss" : "ws";
        const ws = new WebSocket(proto + "://" + window.location.host + "/ws/game");
        ws.onmessage = (event) => {
          const data = JSON.parse(event.data);
          if (data.type === "leaderboard") {
            renderLeaderboard(data.leaderboard);
          }
        };
        ws.onclose = () => setTimeout(connectLeaderboardWS, 3000);
      }

      document.getElementById("submitAnswer").addEventListener("click", () => {
        const answer = answerArea.classList.contains("hidden")
          ? (controller.selectedOption || "")
          : answerInput.value.trim();
        if (answer === "") {
          gameResult.textContent = answerArea.classList.contains("hidden")
            ? "Pick an option first!"
            : "Type an answer first!";
          return;
        }
        submitAnswer(answer);
      });

      document.getElementById("nobodyGotIt").addEventListener("click", () => {
        submitAnswer("");
      });

      nextBtn.addEventListener("click", nextQuestion);

      document.getElementById("endGame").addEventListener("click", async () => {
        if (!confirm("End the game for everyone?")) {
          return;
        }
        const res = await fetch("/api/game/end", { method: "POST" }).catch(() => null);
        if (!res) {
          gameResult.textContent = "Network error. Try again.";
          return;
        }
        const summary = await res.json();
        const medals = ["\u{1F947}", "\u{1F948}", "\u{1F949}"];
        const finalScores = document.getElementById("finalScores");
        finalScores.innerHTML = "";
        (summary.final_scores || []).forEach((entry, i) => {
          const li = document.createElement("li");
          const medal = i < medals.length ? medals[i] + " " : "";
          li.textContent = medal + entry.name + " - " + entry.score + " pts (" + entry.accuracy + "% accuracy)";
          finalScores.appendChild(li);
        });
        const winnerLine = document.getElementById("winnerLine");
        winnerLine.textContent = summary.winner ? summary.winner.name + " wins!" : "No winner this time.";
        document.getElementById("totalQuestions").textContent = "Total questions: " + (summary.total_questions || 0);
        show(document.getElementById("gameOverModal"));
      });

      connectLeaderboardWS();
      nextQuestion();
    </script>
  </body>
</html>
`)
		return nil
	})
}
