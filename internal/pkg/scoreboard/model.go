package scoreboard

type Tally struct {
	Rounds int `json:"rounds"`
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}
