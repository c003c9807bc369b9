package handler

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordtiles-go/internal/api/response"
	"github.com/mcoot/wordtiles-go/internal/services/dictionary"
)

// DictionaryHandler answers word lookups
type DictionaryHandler struct {
	dictionary dictionary.ServiceInterface
}

// NewDictionaryHandler creates a new dictionary handler
func NewDictionaryHandler(dict dictionary.ServiceInterface) *DictionaryHandler {
	return &DictionaryHandler{dictionary: dict}
}

// Info handles GET /api/v1/dictionary
func (h *DictionaryHandler) Info(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Dictionary{
		Name:      h.dictionary.Name(),
		WordCount: h.dictionary.WordCount(),
	})
}

// Check handles GET /api/v1/dictionary/words/{word}
func (h *DictionaryHandler) Check(w http.ResponseWriter, r *http.Request) {
	word := strings.ToUpper(mux.Vars(r)["word"])
	response.JSON(w, http.StatusOK, response.WordCheck{
		Word:  word,
		Valid: h.dictionary.Contains(word),
	})
}
