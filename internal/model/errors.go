package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Board errors
	ErrOutOfBounds      = errors.New("coordinate out of bounds")
	ErrSpaceOccupied    = errors.New("space is already occupied")
	ErrSpaceEmpty       = errors.New("space has no tile")
	ErrSpaceLocked      = errors.New("space is locked")
	ErrInvalidBoardSize = errors.New("invalid board size")

	// Tile errors
	ErrInvalidLetter = errors.New("invalid letter")
	ErrTileNotInRack = errors.New("tile not in rack")
	ErrRackFull      = errors.New("rack is full")

	// Turn errors
	ErrInvalidPlacement = errors.New("invalid placement")
	ErrNoTilesPlaced    = fmt.Errorf("%w: no tiles placed this turn", ErrInvalidPlacement)
	ErrGameInProgress   = errors.New("game is in progress")

	// Game errors
	ErrGameNotFound = errors.New("game not found")

	// Dictionary errors
	ErrDictionaryLoad          = errors.New("dictionary could not be loaded")
	ErrDictionaryNotFound      = errors.New("dictionary not found")
	ErrDictionaryAlreadyLoaded = errors.New("dictionary already loaded")

	// Request errors
	ErrInvalidRequest = errors.New("invalid request")
)
