package web

type SetupData struct {
	Flash string
	Stats GameStats
}

type GameStats struct {
	TotalOfficials int  `json:"total_officials"`
	RealOfficials  int  `json:"real_officials"`
	FakePhotos     int  `json:"fake_photos"`
	QuestionsAsked int  `json:"questions_asked"`
	GameActive     bool `json:"game_active"`
	PlayersCount   int  `json:"players_count"`
}

type PlayerScore struct {
	Name     string  `json:"name"`
	Score    int     `json:"score"`
	Streak   int     `json:"streak"`
	Accuracy float64 `json:"accuracy"`
	Correct  int     `json:"correct"`
	Total    int     `json:"total"`
}

type GameData struct {
	Mode           string
	IncludeFakes   bool
	Players        []PlayerScore
	SelectedPlayer string
	RevealDelayMS  int
}

type OfficialRow struct {
	ID        string
	Name      string
	Position  string
	State     string
	PhotoPath string
	Category  string
	IsFake    bool
}

type AdminData struct {
	Categories []string
	States     []string
	Officials  []OfficialRow
}
