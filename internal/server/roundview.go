package server

import "fmt"

// QuestionView is the presentation contract for one rendered question:
// exactly one of ShowAnswerInput/ShowOptions is set, and the reveal panel is
// always hidden until revealView is requested.
type QuestionView struct {
	Prompt          string       `json:"prompt"`
	PhotoPath       string       `json:"photo_path,omitempty"`
	ShowPhoto       bool         `json:"show_photo"`
	ShowAnswerInput bool         `json:"show_answer_input"`
	ShowOptions     bool         `json:"show_options"`
	ShowReveal      bool         `json:"show_reveal"`
	Tiles           []OptionTile `json:"tiles,omitempty"`
}

// OptionTile is one selectable answer tile. Photo tiles carry PhotoPath and
// no Name; name tiles the reverse. Labels run A, B, C... in response order.
type OptionTile struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Name      string `json:"name,omitempty"`
	PhotoPath string `json:"photo_path,omitempty"`
}

type RevealView struct {
	AnswerText  string `json:"answer_text"`
	FunFact     string `json:"fun_fact,omitempty"`
	ShowFunFact bool   `json:"show_fun_fact"`
}

// buildQuestionView dispatches on the question type. The mapping is fixed:
// identify shows the free-text input, the two choice modes show tiles.
func buildQuestionView(question *Question) (QuestionView, error) {
	if question == nil {
		return QuestionView{}, fmt.Errorf("no question to render")
	}
	switch question.Type {
	case QuestionIdentifyOfficial:
		return QuestionView{
			Prompt:          "Who is this official? (Name, Position, State)",
			PhotoPath:       question.Official.PhotoPath,
			ShowPhoto:       true,
			ShowAnswerInput: true,
		}, nil
	case QuestionFindPhoto:
		return QuestionView{
			Prompt:      fmt.Sprintf("Find the photo of: %s of %s", question.Official.Position, question.Official.State),
			ShowOptions: true,
			Tiles:       photoTiles(question.Options),
		}, nil
	case QuestionMultipleChoice:
		return QuestionView{
			Prompt:      "Who is this official?",
			PhotoPath:   question.Official.PhotoPath,
			ShowPhoto:   true,
			ShowOptions: true,
			Tiles:       nameTiles(question.Options),
		}, nil
	}
	return QuestionView{}, fmt.Errorf("unknown question type %q", question.Type)
}

// revealView formats the post-answer disclosure. It reports ok=false when no
// question is current, which callers treat as a no-op.
func revealView(question *Question) (RevealView, bool) {
	if question == nil {
		return RevealView{}, false
	}
	view := RevealView{
		AnswerText: fmt.Sprintf("%s - %s of %s", question.Official.Name, question.Official.Position, question.Official.State),
	}
	if question.Official.FunFact != "" {
		view.FunFact = question.Official.FunFact
		view.ShowFunFact = true
	}
	return view, true
}

func photoTiles(options []Official) []OptionTile {
	tiles := make([]OptionTile, 0, len(options))
	for i, option := range options {
		tiles = append(tiles, OptionTile{
			ID:        option.ID,
			Label:     tileLabel(i),
			PhotoPath: option.PhotoPath,
		})
	}
	return tiles
}

func nameTiles(options []Official) []OptionTile {
	tiles := make([]OptionTile, 0, len(options))
	for i, option := range options {
		tiles = append(tiles, OptionTile{
			ID:    option.ID,
			Label: tileLabel(i),
			Name:  option.Name,
		})
	}
	return tiles
}

func tileLabel(index int) string {
	return string(rune('A' + index))
}
