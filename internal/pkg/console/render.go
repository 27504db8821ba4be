package console

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/vreid/janken/internal/pkg/round"
	"github.com/vreid/janken/internal/pkg/rules"
	"github.com/vreid/janken/internal/pkg/scoreboard"
)

const tableCorner = `v PC\User >`

func Menu(engine *rules.Engine) string {
	var sb strings.Builder

	sb.WriteString("Available moves:\n")

	for i, move := range engine.Moves() {
		fmt.Fprintf(&sb, "%d - %s\n", i+1, move)
	}

	sb.WriteString("0 - exit\n")
	sb.WriteString("? - help\n")

	return sb.String()
}

// HelpTable renders every pairwise outcome. Rows are the computer's move,
// columns the user's, and each cell is the verdict for the user.
func HelpTable(engine *rules.Engine) (string, error) {
	moves := engine.Moves()
	matrix := engine.Matrix()

	header := append([]string{tableCorner}, moves...)
	data := pterm.TableData{header}

	for pc, pcMove := range moves {
		row := make([]string, 0, len(moves)+1)
		row = append(row, pcMove)

		for user := range moves {
			row = append(row, matrix[user][pc].String())
		}

		data = append(data, row)
	}

	//nolint:wrapcheck
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
}

func verdictText(v rules.Verdict) string {
	switch v {
	case rules.Win:
		return pterm.LightGreen("You win!")
	case rules.Lose:
		return pterm.LightRed("Computer wins!")
	default:
		return pterm.LightYellow("Draw")
	}
}

func RenderResult(result *round.Result) string {
	body := pterm.Sprintfln("Your move: %s", result.HumanMove) +
		pterm.Sprintfln("Computer move: %s", result.OpponentMove) +
		pterm.Sprintfln("%s (%s)", verdictText(result.Verdict), result.Verdict) +
		pterm.Sprintf("HMAC key: %s", result.Key)

	return pterm.DefaultBox.WithTitle("Result").WithTitleTopCenter().Sprint(body)
}

func RenderTally(tally scoreboard.Tally) string {
	return pterm.Sprintfln("Rounds: %d  Wins: %d  Losses: %d  Draws: %d",
		tally.Rounds, tally.Wins, tally.Losses, tally.Draws)
}
