package http

import (
	"encoding/json"
	"net/http"

	"github.com/bamdoliro/marugo/internal/notice"
)

type noticeRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	FileNames []string `json:"file_names"`
}

func CreateNoticeHandler(store notice.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req noticeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		id, err := store.Create(r.Context(), req.Title, req.Content, req.FileNames)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
	}
}

func UpdateNoticeHandler(store notice.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "noticeID")
		if err != nil {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		var req noticeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if err := store.Update(r.Context(), id, req.Title, req.Content, req.FileNames); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func GetNoticeHandler(store notice.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "noticeID")
		if err != nil {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		n, err := store.Get(r.Context(), id)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, n)
	}
}

func ListNoticesHandler(store notice.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := store.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		if list == nil {
			list = []notice.Summary{}
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func DeleteNoticeHandler(store notice.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "noticeID")
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
