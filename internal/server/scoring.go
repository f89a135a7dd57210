package server

import (
	"errors"
	"math"
	"sort"
	"strings"
)

var (
	errNoActiveQuestion = errors.New("No active question")
	errPlayerNotFound   = errors.New("Player not found")
	errStaleQuestion    = errors.New("question no longer current")
)

// answerQuestion scores a submission against the session's current question
// and consumes it. questionSeq guards against a submission racing a newer
// question: zero means "whatever is current" for callers that do not track
// sequence numbers.
func answerQuestion(session *Session, store *GameStore, answer, playerName string, questionSeq, streakBonus int) (AnswerResult, error) {
	if session.CurrentQuestion == nil || !session.Active {
		return AnswerResult{}, errNoActiveQuestion
	}
	question := *session.CurrentQuestion
	if questionSeq != 0 && questionSeq != question.Seq {
		return AnswerResult{}, errStaleQuestion
	}
	player, ok := store.FindPlayer(session, playerName)
	if !ok {
		return AnswerResult{}, errPlayerNotFound
	}

	correct := isCorrectAnswer(question, answer)

	player.TotalAnswers++
	points := 0
	if correct {
		player.CorrectAnswers++
		player.Streak++
		points = question.Points + (player.Streak-1)*streakBonus
		player.Score += points
	} else {
		player.Streak = 0
	}

	session.QuestionsAsked++
	session.CurrentQuestion = nil

	return AnswerResult{
		Answer:        strings.TrimSpace(answer),
		Correct:       correct,
		PointsEarned:  points,
		PlayerScore:   player.Score,
		Streak:        player.Streak,
		CorrectAnswer: question.CorrectAnswer,
		Question:      question,
		Player:        player.Name,
	}, nil
}

// isCorrectAnswer applies flexible substring matching for free-text identify
// answers and exact id matching for the choice modes.
func isCorrectAnswer(question Question, answer string) bool {
	switch question.Type {
	case QuestionIdentifyOfficial:
		answerLower := strings.ToLower(strings.TrimSpace(answer))
		if answerLower == "" {
			return false
		}
		correctLower := strings.ToLower(question.CorrectAnswer)
		return strings.Contains(answerLower, strings.ToLower(question.Official.Name)) ||
			strings.Contains(correctLower, answerLower)
	case QuestionFindPhoto, QuestionMultipleChoice:
		return answer == question.CorrectAnswer
	}
	return false
}

// leaderboard projects the roster sorted by score, highest first.
func leaderboard(session *Session) []PlayerScore {
	scores := make([]PlayerScore, 0, len(session.Players))
	for _, player := range session.Players {
		scores = append(scores, PlayerScore{
			Name:     player.Name,
			Score:    player.Score,
			Streak:   player.Streak,
			Accuracy: accuracy(player.CorrectAnswers, player.TotalAnswers),
			Correct:  player.CorrectAnswers,
			Total:    player.TotalAnswers,
		})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores
}

func accuracy(correct, total int) float64 {
	if total < 1 {
		total = 1
	}
	return math.Round(float64(correct)/float64(total)*1000) / 10
}

// endSummary finalizes the session and builds the game-over payload.
func endSummary(session *Session) GameSummary {
	session.Active = false
	finalScores := leaderboard(session)
	summary := GameSummary{
		FinalScores:    finalScores,
		TotalQuestions: session.QuestionsAsked,
		GameDuration:   session.QuestionsAsked,
	}
	if len(finalScores) > 0 {
		winner := finalScores[0]
		summary.Winner = &winner
	}
	return summary
}
