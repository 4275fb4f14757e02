package entity

import "time"

const (
	SideHuman = "human"
	SideBot   = "bot"
)

// MatchHistoryLimit is how many finished matches the history keeps.
const MatchHistoryLimit int64 = 1000

// MatchRecord is the summary of a finished match kept in the history.
type MatchRecord struct {
	ID         string    `json:"id"`
	Winner     string    `json:"winner"`
	Rounds     int       `json:"rounds"`
	HumanShots int       `json:"human_shots"`
	BotShots   int       `json:"bot_shots"`
	BoardSize  int       `json:"board_size"`
	FinishedAt time.Time `json:"finished_at"`
}
