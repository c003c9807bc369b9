package placement

import (
	"strings"

	"github.com/mcoot/wordtiles-go/internal/model"
)

// FindRoot walks backward along axis from pos while the previous space is
// occupied, returning the first position of the run.
func FindRoot(b *model.Board, pos model.Position, axis model.Axis) model.Position {
	root := pos
	for {
		prev := root.Step(axis, -1)
		if !b.IsOccupied(prev) {
			return root
		}
		root = prev
	}
}

// ReadRun collects the letters of the occupied run starting at root
func ReadRun(b *model.Board, root model.Position, axis model.Axis) string {
	var sb strings.Builder
	for pos := root; b.IsOccupied(pos); pos = pos.Step(axis, 1) {
		sb.WriteRune(b.SpaceAt(pos).Letter())
	}
	return sb.String()
}

// WordAt returns the candidate word through pos along axis. Runs shorter
// than two letters are returned unscored and vacuously valid.
func (v *Validator) WordAt(b *model.Board, pos model.Position, axis model.Axis) model.WordMatch {
	if !b.IsOccupied(pos) {
		return model.WordMatch{Start: pos, Axis: axis, Valid: true}
	}

	root := FindRoot(b, pos, axis)
	w := model.WordMatch{
		Word:  ReadRun(b, root, axis),
		Start: root,
		Axis:  axis,
		Valid: true,
	}
	if w.Len() >= MinWordLength {
		w.Score = v.scorer.MustScore(w.Word)
		w.Valid = v.dictionary.Contains(w.Word)
	}
	return w
}

type wordKey struct {
	start model.Position
	axis  model.Axis
}

// TurnWords returns every word of two or more letters running through a tile
// placed this round. A word reached from several tiles is listed once.
func (v *Validator) TurnWords(b *model.Board) []model.WordMatch {
	seen := make(map[wordKey]bool)
	var words []model.WordMatch
	for _, s := range b.PlacedThisRound() {
		for _, axis := range model.Axes {
			w := v.WordAt(b, s.Position, axis)
			if w.Len() < MinWordLength {
				continue
			}
			key := wordKey{start: w.Start, axis: axis}
			if seen[key] {
				continue
			}
			seen[key] = true
			words = append(words, w)
		}
	}
	return words
}
