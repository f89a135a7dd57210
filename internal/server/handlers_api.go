package server

import (
	"errors"
	"log"
	"net/http"
)

type setupRequest struct {
	Players []string `json:"players"`
}

type questionRequest struct {
	Type         string `json:"type"`
	IncludeFakes bool   `json:"include_fakes"`
}

type answerRequest struct {
	Answer      string `json:"answer"`
	Player      string `json:"player"`
	QuestionSeq int    `json:"question_seq"`
}

func (s *Server) handleSetupGame(w http.ResponseWriter, r *http.Request) {
	var req setupRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request")
		return
	}
	players, err := validatePlayerNames(req.Players)
	if err != nil {
		writeFailure(w, http.StatusOK, err.Error())
		return
	}
	if total, _, _ := s.officials.Counts(); total == 0 {
		writeFailure(w, http.StatusOK, "No officials available")
		return
	}

	session := s.game.Setup(players)
	if err := s.persistSessionStart(session); err != nil {
		writeFailure(w, http.StatusInternalServerError, "failed to start game")
		return
	}
	log.Printf("game started players=%d", len(players))
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
	s.broadcastLeaderboard(session)
}

func (s *Server) handleNewQuestion(w http.ResponseWriter, r *http.Request) {
	var req questionRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request")
		return
	}
	questionType, err := ParseQuestionType(req.Type)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, err.Error())
		return
	}
	available := s.officials.Available(req.IncludeFakes)

	// Without a session this is a preview: the question is returned but not
	// retained, so it can never be answered.
	if _, active := s.game.Current(); !active {
		question, err := generateQuestion(available, questionType, s.cfg)
		if err != nil {
			writeFailure(w, http.StatusOK, err.Error())
			return
		}
		view, err := buildQuestionView(question)
		if err != nil {
			writeFailure(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success":  true,
			"question": s.questionPayload(question, view),
		})
		return
	}

	var question *Question
	_, err = s.game.Update(func(session *Session) error {
		generated, err := generateQuestion(available, questionType, s.cfg)
		if err != nil {
			return err
		}
		session.QuestionSeq++
		generated.Seq = session.QuestionSeq
		session.CurrentQuestion = generated
		question = generated
		return nil
	})
	if err != nil {
		writeFailure(w, http.StatusOK, err.Error())
		return
	}
	view, err := buildQuestionView(question)
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, err.Error())
		return
	}
	log.Printf("question generated type=%s seq=%d official=%s", question.Type, question.Seq, question.Official.ID)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"question": s.questionPayload(question, view),
	})
}

// questionPayload projects a question for the wire without its correct
// answer. The find_photo projection includes position/state/fun_fact since
// the prompt names them; the other modes only expose the photo.
func (s *Server) questionPayload(question *Question, view QuestionView) map[string]any {
	official := map[string]any{"photo_path": question.Official.PhotoPath}
	if question.Type == QuestionFindPhoto {
		official["position"] = question.Official.Position
		official["state"] = question.Official.State
		official["fun_fact"] = question.Official.FunFact
	}
	payload := map[string]any{
		"question_type": question.Type,
		"official":      official,
		"points":        question.Points,
		"seq":           question.Seq,
		"view":          view,
	}
	if len(question.Options) > 0 {
		options := make([]map[string]any, 0, len(question.Options))
		for _, option := range question.Options {
			options = append(options, map[string]any{
				"id":         option.ID,
				"name":       option.Name,
				"photo_path": option.PhotoPath,
			})
		}
		payload["options"] = options
	}
	return payload
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Player == "" {
		writeFailure(w, http.StatusOK, "Player not found")
		return
	}

	var result AnswerResult
	session, err := s.game.Update(func(session *Session) error {
		var err error
		result, err = answerQuestion(session, s.game, req.Answer, req.Player, req.QuestionSeq, s.cfg.StreakBonusPoints)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, errStaleQuestion):
			writeFailure(w, http.StatusConflict, err.Error())
		case errors.Is(err, errNoActiveSession):
			writeFailure(w, http.StatusOK, "No active question")
		default:
			writeFailure(w, http.StatusOK, err.Error())
		}
		return
	}

	if err := s.persistAnswer(session, result); err != nil {
		log.Printf("answer persistence failed player=%s error=%v", result.Player, err)
	}
	if s.sessions != nil {
		s.sessions.SetName(w, r, result.Player)
	}
	reveal, _ := revealView(&result.Question)
	log.Printf("answer submitted player=%s correct=%t points=%d streak=%d", result.Player, result.Correct, result.PointsEarned, result.Streak)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"correct":        result.Correct,
		"points_earned":  result.PointsEarned,
		"player_score":   result.PlayerScore,
		"streak":         result.Streak,
		"correct_answer": result.CorrectAnswer,
		"reveal":         reveal,
	})
	s.broadcastLeaderboard(session)
}

func (s *Server) handleReveal(w http.ResponseWriter, r *http.Request) {
	session, ok := s.game.Current()
	if !ok || session.CurrentQuestion == nil {
		writeFailure(w, http.StatusOK, "No active question")
		return
	}
	reveal, ok := revealView(session.CurrentQuestion)
	if !ok {
		writeFailure(w, http.StatusOK, "No active question")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"reveal":  reveal,
	})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	session, ok := s.game.Current()
	if !ok {
		writeJSON(w, http.StatusOK, []PlayerScore{})
		return
	}
	writeJSON(w, http.StatusOK, leaderboard(session))
}

func (s *Server) handleEndGame(w http.ResponseWriter, r *http.Request) {
	var summary GameSummary
	session, err := s.game.Update(func(session *Session) error {
		summary = endSummary(session)
		session.CurrentQuestion = nil
		return nil
	})
	if err != nil {
		// Ending with no session mirrors ending an empty game.
		writeJSON(w, http.StatusOK, GameSummary{FinalScores: []PlayerScore{}})
		return
	}
	if err := s.persistSessionEnd(session, summary); err != nil {
		log.Printf("session end persistence failed error=%v", err)
	}
	log.Printf("game ended questions=%d players=%d", summary.TotalQuestions, len(summary.FinalScores))
	writeJSON(w, http.StatusOK, summary)
	s.broadcastLeaderboard(session)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "guess-that-official",
	})
}

func (s *Server) handleAPIStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "active",
		"version": releaseVersion,
		"game":    "Guess That Official",
		"endpoints": []string{
			"/api/status",
			"/api/game/setup",
			"/api/game/question",
			"/api/game/answer",
			"/api/game/leaderboard",
			"/api/admin/official",
			"/health",
		},
	})
}
