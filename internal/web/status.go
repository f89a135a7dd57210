package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// StatusView is a lightweight dashboard used during demos to watch the
// service without opening the game screen.
func StatusView(stats GameStats) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		active := "idle"
		if stats.GameActive {
			active = "game in progress"
		}
		_, _ = io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>Guess That Official - Status</title>
    <link rel="stylesheet" href="`+assetPath("/static/styles.css")+`"/>
  </head>
  <body>
    <main class="shell">
      <header class="hero">
        <span class="tag">Status</span>
        <h1>Guess That Official</h1>
        <p>`+active+`</p>
      </header>
      <section class="panel stats-panel">
        <div class="stat"><strong>`+itoa(stats.TotalOfficials)+`</strong><span>officials</span></div>
        <div class="stat"><strong>`+itoa(stats.RealOfficials)+`</strong><span>real</span></div>
        <div class="stat"><strong>`+itoa(stats.FakePhotos)+`</strong><span>decoys</span></div>
        <div class="stat"><strong>`+itoa(stats.QuestionsAsked)+`</strong><span>questions asked</span></div>
        <div class="stat"><strong>`+itoa(stats.PlayersCount)+`</strong><span>players</span></div>
      </section>
      <section class="panel">
        <p>API: <span id="apiStatus">checking...</span></p>
        <p><a href="/">Game setup</a> &middot; <a href="/admin">Admin</a> &middot; <a href="/api/status">API status</a></p>
      </section>
    </main>
    <script>
      fetch("/api/status")
        .then((res) => res.json())
        .then((data) => {
          document.getElementById("apiStatus").textContent = data.status + " (v" + data.version + ")";
        })
        .catch(() => {
          document.getElementById("apiStatus").textContent = "unreachable";
        });
    </script>
  </body>
</html>
`)
		return nil
	})
}
