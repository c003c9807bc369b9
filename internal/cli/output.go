package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/wordtiles-go/internal/api/response"
)

// Output formats responses as text or JSON
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == OutputJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Game:
		o.printGame(v)
	case response.GameList:
		o.printGameList(v)
	case response.PlacementResult:
		o.printPlacementResult(v)
	case response.CommitSummary:
		o.printCommitSummary(v)
	case response.RecallResponse:
		fmt.Fprintf(o.w, "Recalled %d tile(s)\n", len(v.Recalled))
	case response.RackResponse:
		fmt.Fprintf(o.w, "Rack: %s\n", strings.Join(v.Rack, " "))
	case response.TurnsResponse:
		o.printTurns(v)
	case response.WordCheck:
		o.printWordCheck(v)
	case response.Dictionary:
		fmt.Fprintf(o.w, "Dictionary: %s (%d words)\n", v.Name, v.WordCount)
	case response.Health:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
		fmt.Fprintf(o.w, "Dictionary loaded: %s\n", yesNo(v.Dictionary))
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func (o *Output) printGame(g response.Game) {
	fmt.Fprintf(o.w, "Game: %s\n", g.ID)
	fmt.Fprintf(o.w, "Turn: %d\n", g.Turn)
	fmt.Fprintf(o.w, "Score: %d (pending %d)\n", g.TotalScore, g.TurnScore)
	fmt.Fprintf(o.w, "Rack: %s\n", strings.Join(g.Rack, " "))
	fmt.Fprintf(o.w, "Bag: %d\n", g.BagRemaining)
	if g.Badge != nil {
		fmt.Fprintf(o.w, "Badge: (%d,%d) %s\n", g.Badge.Position.Row, g.Badge.Position.Col, badgeState(g.Badge))
	}
	if !g.Legal {
		fmt.Fprintln(o.w, "Turn is not legal yet")
	}
	fmt.Fprintln(o.w)
	o.printBoard(g)
}

func badgeState(b *response.Badge) string {
	switch {
	case b.Pending:
		return "pending"
	case b.Valid:
		return "valid"
	default:
		return "invalid"
	}
}

// printBoard draws the grid. Locked tiles are upper case, tiles placed this
// turn lower case, playable spaces '+' and an empty center '*'.
func (o *Output) printBoard(g response.Game) {
	size := g.BoardSize
	if size == 0 {
		return
	}

	cells := make([][]string, size)
	for row := range cells {
		cells[row] = make([]string, size)
		for col := range cells[row] {
			cells[row][col] = "."
		}
	}
	for _, p := range g.Playable {
		cells[p.Row][p.Col] = "+"
	}
	if g.Center.Row < size && g.Center.Col < size {
		cells[g.Center.Row][g.Center.Col] = "*"
	}
	for _, t := range g.Tiles {
		letter := t.Letter
		if !t.Locked {
			letter = strings.ToLower(letter)
		}
		cells[t.Row][t.Col] = letter
	}

	fmt.Fprint(o.w, "    ")
	for col := 0; col < size; col++ {
		fmt.Fprintf(o.w, "%3d", col)
	}
	fmt.Fprintln(o.w)

	border := "   +" + strings.Repeat("---", size) + "+"
	fmt.Fprintln(o.w, border)
	for row := 0; row < size; row++ {
		fmt.Fprintf(o.w, "%3d |", row)
		for col := 0; col < size; col++ {
			fmt.Fprintf(o.w, " %s ", cells[row][col])
		}
		fmt.Fprintln(o.w, "|")
	}
	fmt.Fprintln(o.w, border)
}

func (o *Output) printGameList(l response.GameList) {
	if len(l.Games) == 0 {
		fmt.Fprintln(o.w, "No games")
		return
	}
	for _, g := range l.Games {
		fmt.Fprintf(o.w, "%s  %dx%d  turn %d  score %d\n", g.ID, g.BoardSize, g.BoardSize, g.Turn, g.TotalScore)
	}
}

func (o *Output) printWords(words []response.WordMatch) {
	for _, w := range words {
		mark := "ok"
		if !w.Valid {
			mark = "not a word"
		}
		fmt.Fprintf(o.w, "  %s %s at (%d,%d): %d pts [%s]\n", w.Word, w.Axis, w.Start.Row, w.Start.Col, w.Score, mark)
	}
}

func (o *Output) printPlacementResult(p response.PlacementResult) {
	if p.Letter != "" {
		fmt.Fprintf(o.w, "Placed %s at (%d,%d)\n", p.Letter, p.Position.Row, p.Position.Col)
	} else {
		fmt.Fprintf(o.w, "Removed tile at (%d,%d)\n", p.Position.Row, p.Position.Col)
	}
	o.printWords(p.Words)
	fmt.Fprintf(o.w, "Legal: %s\n", yesNo(p.Legal))
	fmt.Fprintf(o.w, "Turn score: %d\n", p.TurnScore)
}

func (o *Output) printCommitSummary(s response.CommitSummary) {
	fmt.Fprintf(o.w, "Turn %d locked: %d pts (total %d)\n", s.Turn, s.TurnScore, s.TotalScore)
	o.printWords(s.Words)
	if len(s.Drawn) > 0 {
		fmt.Fprintf(o.w, "Drew: %s\n", strings.Join(s.Drawn, " "))
	}
}

func (o *Output) printTurns(t response.TurnsResponse) {
	if len(t.Turns) == 0 {
		fmt.Fprintf(o.w, "No turns locked in game %s\n", t.GameID)
		return
	}
	for _, turn := range t.Turns {
		words := make([]string, len(turn.Words))
		for i, w := range turn.Words {
			words[i] = w.Word
		}
		fmt.Fprintf(o.w, "Turn %d: %s  +%d (total %d)\n", turn.Turn, strings.Join(words, ", "), turn.Score, turn.TotalScore)
	}
}

func (o *Output) printWordCheck(w response.WordCheck) {
	if w.Valid {
		fmt.Fprintf(o.w, "%s is a word\n", w.Word)
	} else {
		fmt.Fprintf(o.w, "%s is not a word\n", w.Word)
	}
}
