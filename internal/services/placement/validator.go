package placement

import (
	"fmt"

	"github.com/mcoot/wordtiles-go/internal/model"
)

// MinWordLength is the shortest run that counts as a word
const MinWordLength = 2

// Lookup answers dictionary membership
type Lookup interface {
	Contains(word string) bool
}

// Scorer values words assembled from board tiles
type Scorer interface {
	MustScore(word string) int
}

// Validator re-derives words, legality, playability and the pending turn score
// from the board. It keeps no state between calls.
type Validator struct {
	dictionary Lookup
	scorer     Scorer
}

// New creates a new Validator
func New(dictionary Lookup, scorer Scorer) *Validator {
	return &Validator{
		dictionary: dictionary,
		scorer:     scorer,
	}
}

// Evaluation is the outcome of one validation pass
type Evaluation struct {
	Anchor  *model.Space      // Space whose words were checked, nil if none
	Words   []model.WordMatch // Words through the anchor
	Valid   bool              // Every word through the anchor is in the dictionary
	Pending bool              // The anchor forms no word yet

	Axis      model.Axis
	Legal     bool
	Violation error // Why the turn is illegal, nil when legal

	Placed    []*model.Space    // Tiles placed this round, row-major
	TurnWords []model.WordMatch // Every word formed by this round's tiles
	TurnScore int
	Badge     *model.Badge
}

// Evaluate runs a full validation pass after a placement or removal at
// affected, updating every space's playable flag. A nil affected space, or an
// empty one, anchors the word check on the first tile placed this round.
func (v *Validator) Evaluate(b *model.Board, affected *model.Space) *Evaluation {
	e := &Evaluation{
		Placed: b.PlacedThisRound(),
		Axis:   model.AxisUndecided,
	}
	e.TurnWords = v.TurnWords(b)
	for _, w := range e.TurnWords {
		e.TurnScore += w.Score
	}

	// Lifting the tile off the center reopens only the center
	if affected != nil && affected.IsCenter && !affected.HasTile() {
		resetPlayable(b)
		e.Pending = true
		e.Violation = ErrCenterEmpty
		if len(e.Placed) > 0 {
			e.Anchor = e.Placed[0]
			e.Badge = &model.Badge{TileID: e.Anchor.Tile.ID, Position: e.Anchor.Position, Pending: true}
		}
		return e
	}

	v.checkAnchor(b, e, affected)

	e.Axis, e.Violation = checkTurn(b, e.Placed)
	e.Legal = e.Violation == nil
	if e.Legal {
		markPlayable(b, e.Placed, e.Axis)
	} else {
		resetPlayable(b)
		if e.Badge != nil {
			e.Badge.Valid = false
		}
	}
	return e
}

// checkAnchor validates the across and down words through the anchor and picks the badge tile
func (v *Validator) checkAnchor(b *model.Board, e *Evaluation, affected *model.Space) {
	anchor := affected
	if anchor == nil || !anchor.HasTile() {
		anchor = nil
		if len(e.Placed) > 0 {
			anchor = e.Placed[0]
		}
	}
	if anchor == nil {
		e.Pending = true
		return
	}
	e.Anchor = anchor

	across := v.WordAt(b, anchor.Position, model.AxisAcross)
	down := v.WordAt(b, anchor.Position, model.AxisDown)

	if across.Len() < MinWordLength && down.Len() < MinWordLength {
		e.Pending = true
		root := b.SpaceAt(across.Start)
		e.Badge = &model.Badge{TileID: root.Tile.ID, Position: root.Position, Pending: true}
		return
	}

	e.Valid = true
	for _, w := range []model.WordMatch{across, down} {
		if w.Len() < MinWordLength {
			continue
		}
		e.Words = append(e.Words, w)
		e.Valid = e.Valid && w.Valid
	}

	badgeWord := across
	if down.Len() > across.Len() {
		badgeWord = down
	}
	root := b.SpaceAt(badgeWord.Start)
	e.Badge = &model.Badge{TileID: root.Tile.ID, Position: root.Position, Valid: e.Valid}
}

// CanCommit returns nil if the evaluated turn may be locked, or an error
// wrapping model.ErrInvalidPlacement.
func (e *Evaluation) CanCommit() error {
	if len(e.Placed) == 0 {
		return model.ErrNoTilesPlaced
	}
	if e.Violation != nil {
		return e.Violation
	}
	for _, w := range e.TurnWords {
		if !w.Valid {
			return fmt.Errorf("%w: %s", ErrUnknownWord, w.Word)
		}
	}
	return nil
}

// Check evaluates the whole turn without a triggering space and reports whether it may be locked
func (v *Validator) Check(b *model.Board) (*Evaluation, error) {
	e := v.Evaluate(b, nil)
	return e, e.CanCommit()
}
