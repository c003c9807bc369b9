package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/wordtiles-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Error codes
const (
	CodeInvalidRequest     = "invalid_request"
	CodeInvalidLetter      = "invalid_letter"
	CodeInvalidBoardSize   = "invalid_board_size"
	CodeOutOfBounds        = "out_of_bounds"
	CodeSpaceOccupied      = "space_occupied"
	CodeSpaceEmpty         = "space_empty"
	CodeSpaceLocked        = "space_locked"
	CodeTileNotInRack      = "tile_not_in_rack"
	CodeInvalidPlacement   = "invalid_placement"
	CodeGameInProgress     = "game_in_progress"
	CodeGameNotFound       = "game_not_found"
	CodeDictionaryNotFound = "dictionary_not_found"
	CodeNotFound           = "not_found"
	CodeInternalError      = "internal_error"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError. Domain errors keep their
// message so clients see which rule was broken.
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrDictionaryNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeDictionaryNotFound, "Dictionary not found"}}
	case errors.Is(err, model.ErrOutOfBounds):
		return &httpError{http.StatusBadRequest, APIError{CodeOutOfBounds, err.Error()}}
	case errors.Is(err, model.ErrInvalidLetter):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidLetter, "Letter must be A-Z"}}
	case errors.Is(err, model.ErrInvalidBoardSize):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidBoardSize, err.Error()}}
	case errors.Is(err, model.ErrSpaceOccupied):
		return &httpError{http.StatusBadRequest, APIError{CodeSpaceOccupied, "Space is already occupied"}}
	case errors.Is(err, model.ErrSpaceEmpty):
		return &httpError{http.StatusBadRequest, APIError{CodeSpaceEmpty, "Space has no tile"}}
	case errors.Is(err, model.ErrSpaceLocked):
		return &httpError{http.StatusBadRequest, APIError{CodeSpaceLocked, "Tile is locked"}}
	case errors.Is(err, model.ErrTileNotInRack):
		return &httpError{http.StatusBadRequest, APIError{CodeTileNotInRack, err.Error()}}
	case errors.Is(err, model.ErrInvalidRequest):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, err.Error()}}
	case errors.Is(err, model.ErrGameInProgress):
		return &httpError{http.StatusConflict, APIError{CodeGameInProgress, "Board already has tiles"}}
	case errors.Is(err, model.ErrInvalidPlacement):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeInvalidPlacement, err.Error()}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewNotFoundError creates an error for an unknown route
func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Not found"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
