package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Setup renders the landing page: roster stats, the player list builder, and
// the game mode picker.
func Setup(data SetupData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		flash := ""
		if data.Flash != "" {
			flash = `<div class="flash">` + esc(data.Flash) + `</div>`
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
    <main class="shell">
      <header class="hero">
        <span class="tag">Guess That Official</span>
        <h1>Know your civic leaders?</h1>
        <p>A party quiz about the officials who run things. Add players and pick a mode.</p>
      </header>
`+flash+`
      <section class="panel stats-panel">
        <div class="stat"><strong>`+itoa(data.Stats.TotalOfficials)+`</strong><span>officials</span></div>
        <div class="stat"><strong>`+itoa(data.Stats.RealOfficials)+`</strong><span>real</span></div>
        <div class="stat"><strong>`+itoa(data.Stats.FakePhotos)+`</strong><span>decoys</span></div>
      </section>

      <section class="panel">
        <h2>Players</h2>
        <div id="playerList" class="player-list">
          <input class="player-name" placeholder="Player 1" autocomplete="off"/>
          <input class="player-name" placeholder="Player 2" autocomplete="off"/>
        </div>
        <button id="addPlayer" class="secondary" type="button">Add player</button>
      </section>

      <section class="panel">
        <h2>Game mode</h2>
        <label class="mode-option">
          <input type="radio" name="mode" value="identify_official" checked/>
          Name That Official <small>(type the answer, 10 pts)</small>
        </label>
        <label class="mode-option">
          <input type="radio" name="mode" value="find_photo"/>
          Find The Photo <small>(pick from four photos, 15 pts)</small>
        </label>
        <label class="mode-option">
          <input type="radio" name="mode" value="multiple_choice"/>
          Multiple Choice <small>(pick from four names, 10 pts)</small>
        </label>
        <label class="mode-option">
          <input type="checkbox" id="includeFakes"/>
          Include decoy photos
        </label>
      </section>

      <section class="panel actions">
        <button id="startGame" class="primary" type="button">Start game</button>
        <button id="testQuestion" class="secondary" type="button">Try a test question</button>
        <button id="sampleData" class="secondary" type="button">Load sample roster</button>
        <a class="admin-link" href="/admin">Manage officials</a>
        <div id="setupResult" class="result"></div>
        <div id="testPreview" class="preview"></div>
      </section>
    </main>

    <script>
      const playerList = document.getElementById("playerList");
      const setupResult = document.getElementById("setupResult");
      const testPreview = document.getElementById("testPreview");

      document.getElementById("addPlayer").addEventListener("click", () => {
        const count = playerList.querySelectorAll(".player-name").length;
        const input = document.createElement("input");
        input.className = "player-name";
        input.placeholder = "Player " + (count + 1);
        input.autocomplete = "off";
        playerList.appendChild(input);
      });

      function selectedMode() {
        return document.querySelector('input[name="mode"]:checked').value;
      }

      function playerNames() {
        return Array.from(playerList.querySelectorAll(".player-name"))
          .map((input) => input.value.trim())
          .filter((name) => name !== "");
      }

      document.getElementById("startGame").addEventListener("click", async () => {
        const players = playerNames();
        if (players.length === 0) {
          setupResult.textContent = "At least one player required";
          return;
        }
        setupResult.textContent = "Starting game...";
        const res = await fetch("/api/game/setup", {
          method: "POST",
          headers: { "Content-Type": "application/json" },
          body: JSON.stringify({ players })
        });
        const data = await res.json();
        if (!data.success) {
          setupResult.textContent = data.message || "Failed to start game.";
          return;
        }
        const fakes = document.getElementById("includeFakes").checked;
        window.location.href = "/game?mode=" + encodeURIComponent(selectedMode()) + "&fakes=" + fakes;
      });

      document.getElementById("testQuestion").addEventListener("click", async () => {
        testPreview.textContent = "Loading...";
        const res = await fetch("/api/game/question", {
          method: "POST",
          headers: { "Content-Type": "application/json" },
          body: JSON.stringify({
            type: selectedMode(),
            include_fakes: document.getElementById("includeFakes").checked
          })
        });
        const data = await res.json();
        if (!data.success) {
          testPreview.textContent = data.message || "No question available.";
          return;
        }
        testPreview.textContent = data.question.view.prompt + " (" + data.question.points + " pts)";
      });

      document.getElementById("sampleData").addEventListener("click", async () => {
        setupResult.textContent = "Loading sample roster...";
        const res = await fetch("/api/admin/sample-data", { method: "POST" });
        const data = await res.json();
        if (!data.success) {
          setupResult.textContent = data.message || "Failed to load sample roster.";
          return;
        }
        window.location.reload();
      });
    </script>
  </body>
</html>
`)
		return nil
	})
}
