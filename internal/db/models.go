package db

import (
	"time"

	"gorm.io/datatypes"
)

type Official struct {
	ID        uint      `gorm:"primaryKey"`
	Slug      string    `gorm:"size:128;uniqueIndex;not null"`
	Name      string    `gorm:"size:128;not null"`
	Position  string    `gorm:"size:128;not null"`
	State     string    `gorm:"size:64;not null"`
	PhotoPath string    `gorm:"size:256;not null"`
	FunFact   string    `gorm:"size:512"`
	Category  string    `gorm:"size:64;not null;default:general"`
	IsFake    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type GameSession struct {
	ID             uint      `gorm:"primaryKey"`
	Status         string    `gorm:"size:32;not null"`
	QuestionsAsked int       `gorm:"not null;default:0"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
	Players        []SessionPlayer
	Answers        []AnswerRecord
	Events         []Event
}

type SessionPlayer struct {
	ID             uint      `gorm:"primaryKey"`
	GameSessionID  uint      `gorm:"index;not null;uniqueIndex:idx_session_players_name"`
	Name           string    `gorm:"size:64;not null;uniqueIndex:idx_session_players_name"`
	Score          int       `gorm:"not null;default:0"`
	Streak         int       `gorm:"not null;default:0"`
	CorrectAnswers int       `gorm:"not null;default:0"`
	TotalAnswers   int       `gorm:"not null;default:0"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

type AnswerRecord struct {
	ID            uint      `gorm:"primaryKey"`
	GameSessionID uint      `gorm:"index;not null"`
	PlayerID      uint      `gorm:"index;not null"`
	OfficialID    uint      `gorm:"index"`
	QuestionType  string    `gorm:"size:32;not null"`
	QuestionSeq   int       `gorm:"not null"`
	Answer        string    `gorm:"size:256"`
	Correct       bool      `gorm:"not null"`
	PointsEarned  int       `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

type Event struct {
	ID            uint           `gorm:"primaryKey"`
	GameSessionID uint           `gorm:"index;not null"`
	PlayerID      *uint          `gorm:"index"`
	Type          string         `gorm:"size:64;not null"`
	Payload       datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt     time.Time      `gorm:"not null"`
}

// Session backs browser flash/name cookies.
type Session struct {
	ID         string `gorm:"primaryKey;size:64"`
	Flash      string `gorm:"size:256"`
	PlayerName string `gorm:"size:64"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
