package http

import (
	"encoding/json"
	"net/http"

	"github.com/bamdoliro/marugo/internal/auth"
	"github.com/bamdoliro/marugo/internal/form"
)

type formResponse struct {
	*form.Record
	SubjectList []subjectView `json:"subject_list"`
}

type subjectView struct {
	Grade            int                   `json:"grade"`
	Semester         int                   `json:"semester"`
	SubjectName      string                `json:"subject_name"`
	AchievementLevel form.AchievementLevel `json:"achievement_level"`
	Score            *int                  `json:"score,omitempty"`
}

// SubmitFormHandler: POST /forms — creates the caller's application.
func SubmitFormHandler(svc *form.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := auth.SubjectFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		var req form.SubmitFormRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if err := svc.Submit(r.Context(), sub, req); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}
}

// GetMyFormHandler: GET /forms/me — the caller's application with
// its canonical subject list.
func GetMyFormHandler(svc *form.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := auth.SubjectFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		rec, subjects, err := svc.Get(r.Context(), sub)
		if err != nil {
			writeErr(w, err)
			return
		}
		views := make([]subjectView, 0, len(subjects))
		for _, s := range subjects {
			views = append(views, subjectView{
				Grade:            s.Grade,
				Semester:         s.Semester,
				SubjectName:      s.SubjectName,
				AchievementLevel: s.Level,
				Score:            s.RawScore,
			})
		}
		writeJSON(w, http.StatusOK, formResponse{Record: rec, SubjectList: views})
	}
}

// ListFormsHandler: GET /forms — admin list of all applications.
func ListFormsHandler(svc *form.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sums, err := svc.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		if sums == nil {
			sums = []form.Summary{}
		}
		writeJSON(w, http.StatusOK, sums)
	}
}
