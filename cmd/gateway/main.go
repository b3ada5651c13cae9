package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/bamdoliro/marugo/internal/api/http"
	"github.com/bamdoliro/marugo/internal/auth"
	"github.com/bamdoliro/marugo/internal/config"
	"github.com/bamdoliro/marugo/internal/db"
	"github.com/bamdoliro/marugo/internal/form"
	"github.com/bamdoliro/marugo/internal/notice"
	"github.com/bamdoliro/marugo/internal/question"
	"github.com/bamdoliro/marugo/internal/rbac"
	"github.com/bamdoliro/marugo/internal/user"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	userSvc := user.NewService(user.NewSQLStore(dbh))
	formSvc := form.NewService(form.NewSQLStore(dbh))
	noticeStore := notice.NewSQLStore(dbh)
	questionStore := question.NewSQLStore(dbh)

	authSvc := auth.NewAuthService(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)
	tokenStore := auth.NewSQLTokenStore(dbh)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Refresh-Token"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public surface
	r.Post("/users", api.SignUpHandler(userSvc))
	r.Post("/auth", auth.LoginHandler(authSvc, userSvc, tokenStore))
	r.Patch("/auth", auth.RefreshHandler(authSvc, tokenStore))
	r.Get("/notices", api.ListNoticesHandler(noticeStore))
	r.Get("/notices/{noticeID}", api.GetNoticeHandler(noticeStore))
	r.Get("/questions", api.ListQuestionsHandler(questionStore))
	r.Get("/questions/{questionID}", api.GetQuestionHandler(questionStore))

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.Delete("/auth", auth.LogoutHandler(tokenStore))

		pr.With(rbac.Require(rbac.PermUserViewOwn)).
			Get("/users/me", api.MeHandler(userSvc))
		pr.With(rbac.Require(rbac.PermUserDeleteOwn)).
			Delete("/users/me", api.DeleteMeHandler(userSvc))

		// Applicant flow
		pr.With(rbac.Require(rbac.PermFormSubmit)).
			Post("/forms", api.SubmitFormHandler(formSvc))
		pr.With(rbac.Require(rbac.PermFormViewOwn)).
			Get("/forms/me", api.GetMyFormHandler(formSvc))

		// Admission officers
		pr.With(rbac.Require(rbac.PermFormViewAll)).
			Get("/forms", api.ListFormsHandler(formSvc))

		pr.With(rbac.Require(rbac.PermNoticeManage)).
			Post("/notices", api.CreateNoticeHandler(noticeStore))
		pr.With(rbac.Require(rbac.PermNoticeManage)).
			Put("/notices/{noticeID}", api.UpdateNoticeHandler(noticeStore))
		pr.With(rbac.Require(rbac.PermNoticeManage)).
			Delete("/notices/{noticeID}", api.DeleteNoticeHandler(noticeStore))

		pr.With(rbac.Require(rbac.PermQuestionManage)).
			Post("/questions", api.CreateQuestionHandler(questionStore))
		pr.With(rbac.Require(rbac.PermQuestionManage)).
			Put("/questions/{questionID}", api.UpdateQuestionHandler(questionStore))
		pr.With(rbac.Require(rbac.PermQuestionManage)).
			Delete("/questions/{questionID}", api.DeleteQuestionHandler(questionStore))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
