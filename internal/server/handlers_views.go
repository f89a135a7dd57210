package server

import (
	"log"
	"net/http"

	"guess-that-official/internal/web"

	"github.com/a-h/templ"
)

func (s *Server) handleSetupView(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	flash := ""
	if s.sessions != nil {
		flash = s.sessions.PopFlash(w, r)
	}
	templ.Handler(web.Setup(web.SetupData{
		Flash: flash,
		Stats: s.gameStats(),
	})).ServeHTTP(w, r)
}

func (s *Server) handleGameScreenView(w http.ResponseWriter, r *http.Request) {
	session, ok := s.game.Current()
	if !ok || !session.Active {
		if s.sessions != nil {
			s.sessions.SetFlash(w, r, "No game in progress. Set one up first!")
		}
		log.Printf("game view without active session remote=%s", r.RemoteAddr)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	mode := r.URL.Query().Get("mode")
	if _, err := ParseQuestionType(mode); err != nil {
		mode = string(QuestionIdentifyOfficial)
	} else if mode == "" {
		mode = string(QuestionIdentifyOfficial)
	}
	selected := ""
	if s.sessions != nil {
		selected = s.sessions.GetName(w, r)
	}
	data := web.GameData{
		Mode:           mode,
		IncludeFakes:   r.URL.Query().Get("fakes") == "true",
		Players:        webScores(leaderboard(session)),
		SelectedPlayer: selected,
		RevealDelayMS:  s.cfg.RevealDelaySeconds * 1000,
	}
	templ.Handler(web.GameView(data)).ServeHTTP(w, r)
}

func webScores(scores []PlayerScore) []web.PlayerScore {
	out := make([]web.PlayerScore, 0, len(scores))
	for _, score := range scores {
		out = append(out, web.PlayerScore{
			Name:     score.Name,
			Score:    score.Score,
			Streak:   score.Streak,
			Accuracy: score.Accuracy,
			Correct:  score.Correct,
			Total:    score.Total,
		})
	}
	return out
}

func (s *Server) handleStatusView(w http.ResponseWriter, r *http.Request) {
	templ.Handler(web.StatusView(s.gameStats())).ServeHTTP(w, r)
}

func (s *Server) gameStats() web.GameStats {
	total, real, fake := s.officials.Counts()
	stats := web.GameStats{
		TotalOfficials: total,
		RealOfficials:  real,
		FakePhotos:     fake,
	}
	if session, ok := s.game.Current(); ok {
		stats.GameActive = session.Active
		stats.QuestionsAsked = session.QuestionsAsked
		stats.PlayersCount = len(session.Players)
	}
	return stats
}
