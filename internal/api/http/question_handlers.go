package http

import (
	"encoding/json"
	"net/http"

	"github.com/bamdoliro/marugo/internal/question"
)

type questionRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

func CreateQuestionHandler(store question.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req questionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		cat, err := question.ParseCategory(req.Category)
		if err != nil {
			writeErr(w, err)
			return
		}
		id, err := store.Create(r.Context(), req.Title, req.Content, cat)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
	}
}

func UpdateQuestionHandler(store question.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "questionID")
		if err != nil {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		var req questionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		cat, err := question.ParseCategory(req.Category)
		if err != nil {
			writeErr(w, err)
			return
		}
		if err := store.Update(r.Context(), id, req.Title, req.Content, cat); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func GetQuestionHandler(store question.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "questionID")
		if err != nil {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		q, err := store.Get(r.Context(), id)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, q)
	}
}

// ListQuestionsHandler supports an optional ?category= filter.
func ListQuestionsHandler(store question.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cat *question.Category
		if raw := r.URL.Query().Get("category"); raw != "" {
			c, err := question.ParseCategory(raw)
			if err != nil {
				writeErr(w, err)
				return
			}
			cat = &c
		}
		list, err := store.List(r.Context(), cat)
		if err != nil {
			writeErr(w, err)
			return
		}
		if list == nil {
			list = []question.Question{}
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func DeleteQuestionHandler(store question.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "questionID")
		if err != nil {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		if err := store.Delete(r.Context(), id); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
