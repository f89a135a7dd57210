package server

import (
	"encoding/json"
	"errors"
	"log"

	"guess-that-official/internal/db"

	"github.com/jackc/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

// EventPayload is the jsonb body attached to game events. Fields are
// omitempty so each event type only records what it has.
type EventPayload struct {
	Players        []string `json:"players,omitempty"`
	PlayerName     string   `json:"player_name,omitempty"`
	QuestionType   string   `json:"question_type,omitempty"`
	QuestionSeq    int      `json:"question_seq,omitempty"`
	Correct        bool     `json:"correct,omitempty"`
	PointsEarned   int      `json:"points_earned,omitempty"`
	TotalQuestions int      `json:"total_questions,omitempty"`
	Winner         string   `json:"winner,omitempty"`
}

// persistSessionStart writes the new session and its roster. All persistence
// is a no-op without a database so the in-memory game keeps working alone.
func (s *Server) persistSessionStart(session *Session) error {
	if s.db == nil {
		return nil
	}
	record := db.GameSession{Status: sessionStatusActive}
	if err := s.db.Create(&record).Error; err != nil {
		return err
	}
	session.DBID = record.ID
	names := make([]string, 0, len(session.Players))
	for i := range session.Players {
		player := &session.Players[i]
		playerRecord := db.SessionPlayer{
			GameSessionID: record.ID,
			Name:          player.Name,
		}
		if err := s.db.Create(&playerRecord).Error; err != nil {
			if !isUniqueViolation(err) {
				return err
			}
			existing, lookupErr := s.findSessionPlayerDBID(record.ID, player.Name)
			if lookupErr != nil {
				return err
			}
			playerRecord.ID = existing
		}
		player.DBID = playerRecord.ID
		names = append(names, player.Name)
	}
	return s.persistEvent(session, nil, "game_started", EventPayload{Players: names})
}

// persistAnswer records the scored submission and syncs the player row.
func (s *Server) persistAnswer(session *Session, result AnswerResult) error {
	if s.db == nil {
		return nil
	}
	if session.DBID == 0 {
		return errors.New("session not persisted")
	}
	player, ok := s.game.FindPlayer(session, result.Player)
	if !ok || player.DBID == 0 {
		return errors.New("player not persisted")
	}
	officialDBID := result.Question.Official.DBID
	record := db.AnswerRecord{
		GameSessionID: session.DBID,
		PlayerID:      player.DBID,
		OfficialID:    officialDBID,
		QuestionType:  string(result.Question.Type),
		QuestionSeq:   result.Question.Seq,
		Answer:        result.Answer,
		Correct:       result.Correct,
		PointsEarned:  result.PointsEarned,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return err
	}
	updates := map[string]any{
		"score":           player.Score,
		"streak":          player.Streak,
		"correct_answers": player.CorrectAnswers,
		"total_answers":   player.TotalAnswers,
	}
	if err := s.db.Model(&db.SessionPlayer{}).Where("id = ?", player.DBID).Updates(updates).Error; err != nil {
		return err
	}
	if err := s.db.Model(&db.GameSession{}).Where("id = ?", session.DBID).
		Update("questions_asked", session.QuestionsAsked).Error; err != nil {
		return err
	}
	playerID := player.DBID
	return s.persistEvent(session, &playerID, "answer_submitted", EventPayload{
		PlayerName:   result.Player,
		QuestionType: string(result.Question.Type),
		QuestionSeq:  result.Question.Seq,
		Correct:      result.Correct,
		PointsEarned: result.PointsEarned,
	})
}

func (s *Server) persistSessionEnd(session *Session, summary GameSummary) error {
	if s.db == nil {
		return nil
	}
	if session.DBID == 0 {
		return errors.New("session not persisted")
	}
	updates := map[string]any{
		"status":          sessionStatusComplete,
		"questions_asked": session.QuestionsAsked,
	}
	if err := s.db.Model(&db.GameSession{}).Where("id = ?", session.DBID).Updates(updates).Error; err != nil {
		return err
	}
	payload := EventPayload{TotalQuestions: summary.TotalQuestions}
	if summary.Winner != nil {
		payload.Winner = summary.Winner.Name
	}
	return s.persistEvent(session, nil, "game_ended", payload)
}

// persistOfficial upserts the roster entry by slug and records the row id so
// answer records can reference it.
func (s *Server) persistOfficial(official *Official) error {
	if s.db == nil {
		return nil
	}
	record := db.Official{
		Slug:      official.ID,
		Name:      official.Name,
		Position:  official.Position,
		State:     official.State,
		PhotoPath: official.PhotoPath,
		FunFact:   official.FunFact,
		Category:  official.Category,
		IsFake:    official.IsFake,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "position", "state", "photo_path", "fun_fact", "category", "is_fake",
		}),
	}).Create(&record).Error
	if err != nil {
		if !isUniqueViolation(err) {
			return err
		}
		var existing db.Official
		if lookupErr := s.db.Where("slug = ?", official.ID).First(&existing).Error; lookupErr != nil {
			return err
		}
		record.ID = existing.ID
	}
	official.DBID = record.ID
	s.officials.SetDBID(official.ID, record.ID)
	return nil
}

// loadOfficialsFromDB replaces the in-memory roster with the database rows.
// An empty table leaves the file-loaded roster in place.
func (s *Server) loadOfficialsFromDB() error {
	if s.db == nil {
		return nil
	}
	var records []db.Official
	if err := s.db.Order("id").Find(&records).Error; err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}
	officials := make([]Official, 0, len(records))
	for _, record := range records {
		officials = append(officials, Official{
			ID:        record.Slug,
			DBID:      record.ID,
			Name:      record.Name,
			Position:  record.Position,
			State:     record.State,
			PhotoPath: record.PhotoPath,
			FunFact:   record.FunFact,
			Category:  record.Category,
			IsFake:    record.IsFake,
		})
	}
	if err := s.officials.Replace(officials); err != nil {
		return err
	}
	log.Printf("officials loaded from database count=%d", len(officials))
	return nil
}

func (s *Server) persistEvent(session *Session, playerID *uint, eventType string, payload EventPayload) error {
	if s.db == nil || session.DBID == 0 {
		return nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	event := db.Event{
		GameSessionID: session.DBID,
		PlayerID:      playerID,
		Type:          eventType,
		Payload:       datatypes.JSON(data),
	}
	return s.db.Create(&event).Error
}

func (s *Server) findSessionPlayerDBID(sessionDBID uint, name string) (uint, error) {
	var record db.SessionPlayer
	if err := s.db.Where("game_session_id = ? AND name = ?", sessionDBID, name).First(&record).Error; err != nil {
		return 0, err
	}
	return record.ID, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
