package server

import (
	"errors"
	"fmt"
	"math/rand"

	"guess-that-official/internal/config"
)

var errNoOfficials = errors.New("No officials available")

// generateQuestion builds the next question from the eligible roster. The
// caller owns seq assignment; the correct answer never leaves the server in
// the question projection.
func generateQuestion(available []Official, questionType QuestionType, cfg config.Config) (*Question, error) {
	if len(available) == 0 {
		return nil, errNoOfficials
	}
	official := available[rand.Intn(len(available))]

	switch questionType {
	case QuestionIdentifyOfficial:
		return &Question{
			Type:          questionType,
			Official:      official,
			CorrectAnswer: fmt.Sprintf("%s - %s of %s", official.Name, official.Position, official.State),
			Points:        cfg.IdentifyPoints,
		}, nil
	case QuestionFindPhoto:
		return &Question{
			Type:          questionType,
			Official:      official,
			Options:       buildOptions(available, official, cfg.OptionCount),
			CorrectAnswer: official.ID,
			Points:        cfg.FindPhotoPoints,
		}, nil
	case QuestionMultipleChoice:
		return &Question{
			Type:          questionType,
			Official:      official,
			Options:       buildOptions(available, official, cfg.OptionCount),
			CorrectAnswer: official.ID,
			Points:        cfg.MultipleChoicePoints,
		}, nil
	}
	return nil, fmt.Errorf("unknown question type %q", questionType)
}

// buildOptions picks distractors from the rest of the roster, mixes in the
// correct official, and shuffles. Fewer officials than optionCount yields a
// shorter option list rather than an error.
func buildOptions(available []Official, official Official, optionCount int) []Official {
	others := make([]Official, 0, len(available))
	for _, candidate := range available {
		if candidate.ID != official.ID {
			others = append(others, candidate)
		}
	}
	rand.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})
	distractors := optionCount - 1
	if distractors > len(others) {
		distractors = len(others)
	}
	options := append([]Official{official}, others[:distractors]...)
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
