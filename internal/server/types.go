package server

import "fmt"

// QuestionType is the closed set of question presentation modes. Adding a
// mode means extending every switch that dispatches on it; all of them carry
// an error default so an unknown value fails loudly.
type QuestionType string

const (
	QuestionIdentifyOfficial QuestionType = "identify_official"
	QuestionFindPhoto        QuestionType = "find_photo"
	QuestionMultipleChoice   QuestionType = "multiple_choice"
)

// ParseQuestionType maps a wire string to a QuestionType. An empty string
// selects the default identify mode.
func ParseQuestionType(raw string) (QuestionType, error) {
	switch QuestionType(raw) {
	case QuestionIdentifyOfficial, QuestionFindPhoto, QuestionMultipleChoice:
		return QuestionType(raw), nil
	case "":
		return QuestionIdentifyOfficial, nil
	}
	return "", fmt.Errorf("unknown question type %q", raw)
}

const (
	sessionStatusActive   = "active"
	sessionStatusComplete = "complete"
)

type Official struct {
	ID        string
	DBID      uint
	Name      string
	Position  string
	State     string
	PhotoPath string
	FunFact   string
	Category  string
	IsFake    bool
}

type Player struct {
	DBID           uint
	Name           string
	Score          int
	Streak         int
	CorrectAnswers int
	TotalAnswers   int
}

// Question is immutable once generated and owned by the session until it is
// answered or replaced. Seq increases monotonically per session so stale
// submissions can be told apart from submissions against the live question.
type Question struct {
	Seq           int
	Type          QuestionType
	Official      Official
	Options       []Official
	CorrectAnswer string
	Points        int
}

type Session struct {
	DBID            uint
	Active          bool
	Players         []Player
	CurrentQuestion *Question
	QuestionSeq     int
	QuestionsAsked  int
}

type PlayerScore struct {
	Name     string  `json:"name"`
	Score    int     `json:"score"`
	Streak   int     `json:"streak"`
	Accuracy float64 `json:"accuracy"`
	Correct  int     `json:"correct"`
	Total    int     `json:"total"`
}

type AnswerResult struct {
	Answer        string
	Correct       bool
	PointsEarned  int
	PlayerScore   int
	Streak        int
	CorrectAnswer string
	Question      Question
	Player        string
}

type GameSummary struct {
	FinalScores    []PlayerScore `json:"final_scores"`
	Winner         *PlayerScore  `json:"winner"`
	TotalQuestions int           `json:"total_questions"`
	GameDuration   int           `json:"game_duration"`
}
