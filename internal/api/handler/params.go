package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordtiles-go/internal/api/apierr"
	"github.com/mcoot/wordtiles-go/internal/model"
)

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}

// decode reads an optional JSON body; an empty body leaves v untouched
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return apierr.NewInvalidRequestError("invalid request body")
	}
	return nil
}

func decodeRequired(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apierr.NewInvalidRequestError("invalid request body")
	}
	return nil
}

// positionVars reads the {row}/{col} path variables. Range is checked by the board.
func positionVars(r *http.Request) (model.Position, error) {
	vars := mux.Vars(r)
	row, rowErr := strconv.Atoi(vars["row"])
	col, colErr := strconv.Atoi(vars["col"])
	if rowErr != nil || colErr != nil {
		return model.Position{}, apierr.NewInvalidRequestError("row and col must be integers")
	}
	return model.Position{Row: row, Col: col}, nil
}

// parseLetter takes exactly one character; whether it is A-Z is the board's call
func parseLetter(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, apierr.NewInvalidRequestError("letter must be a single character")
	}
	letter, _ := utf8.DecodeRuneInString(s)
	return letter, nil
}
