package server

import (
	"log"
	"net/http"

	"guess-that-official/internal/config"

	"gorm.io/gorm"
)

const releaseVersion = "1.0.0"

type Server struct {
	officials *OfficialStore
	game      *GameStore
	db        *gorm.DB
	ws        *leaderboardHub
	cfg       config.Config
	sessions  *sessionStore
}

// New builds a server around the roster file, preferring database rows when a
// connection is available.
func New(conn *gorm.DB, cfg config.Config) *Server {
	s := &Server{
		officials: NewOfficialStore(cfg.OfficialsFile),
		game:      NewGameStore(),
		db:        conn,
		ws:        newLeaderboardHub(),
		cfg:       cfg,
		sessions:  newSessionStore(conn),
	}
	if err := s.officials.LoadFile(); err != nil {
		log.Printf("officials file load failed path=%s error=%v", cfg.OfficialsFile, err)
	}
	if err := s.loadOfficialsFromDB(); err != nil {
		log.Printf("officials db load failed error=%v", err)
	}
	registerValidators()
	return s
}

func (s *Server) Handler() http.Handler {
	admin := s.adminRouter()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleSetupView)
	mux.HandleFunc("GET /game", s.handleGameScreenView)
	mux.HandleFunc("GET /status", s.handleStatusView)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/status", s.handleAPIStatus)
	mux.HandleFunc("POST /api/game/setup", s.handleSetupGame)
	mux.HandleFunc("POST /api/game/question", s.handleNewQuestion)
	mux.HandleFunc("POST /api/game/answer", s.handleSubmitAnswer)
	mux.HandleFunc("GET /api/game/reveal", s.handleReveal)
	mux.HandleFunc("GET /api/game/leaderboard", s.handleLeaderboard)
	mux.HandleFunc("POST /api/game/end", s.handleEndGame)
	mux.HandleFunc("GET /ws/game", s.handleGameWebsocket)
	mux.Handle("GET /admin", admin)
	mux.Handle("POST /api/admin/", admin)
	mux.Handle("GET /photos/", http.StripPrefix("/photos/", http.FileServer(http.Dir(s.cfg.PhotosDir))))
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	return mux
}
