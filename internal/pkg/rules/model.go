package rules

// Verdict is the outcome of a round from the first party's point of view.
type Verdict string

const (
	Win  Verdict = "Win"
	Lose Verdict = "Lose"
	Draw Verdict = "Draw"
)

func (v Verdict) String() string {
	return string(v)
}
