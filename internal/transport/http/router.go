package http

import (
	"net/http"

	"github.com/campus-books-server/internal/application/admission"
	"github.com/campus-books-server/internal/application/auth"
	"github.com/campus-books-server/internal/application/catalog"
	"github.com/campus-books-server/internal/application/college"
	"github.com/campus-books-server/internal/application/review"
	"github.com/campus-books-server/internal/application/user"
	"github.com/campus-books-server/internal/config"
	"github.com/campus-books-server/internal/transport/http/handler"
	appmiddleware "github.com/campus-books-server/internal/transport/http/middleware"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)
	r.Use(chimiddleware.RequestID)
	r.Use(appmiddleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	if cfg.SentryDSN != "" {
		r.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authMw := appmiddleware.Auth(deps.JWTProvider)

	authSvc := auth.NewService(deps.JWTProvider, deps.Verifier)
	userSvc := user.NewService(deps.UserRepo)
	collegeSvc := college.NewService(deps.CollegeRepo, deps.Images)
	admissionSvc := admission.NewService(admission.ServiceDeps{
		AdmissionRepo: deps.AdmissionRepo,
		CollegeRepo:   deps.CollegeRepo,
		Images:        deps.Images,
		Mailer:        deps.Mailer,
		SMSSender:     deps.SMSSender,
	})
	reviewSvc := review.NewService(deps.CollegeRepo, deps.AdmissionRepo, deps.Images)
	catalogSvc := catalog.NewService(deps.GraduateRepo, deps.ResearchRepo, deps.Images)

	healthH := handler.NewHealthHandler(deps.Ready)
	authH := handler.NewAuthHandler(authSvc)
	userH := handler.NewUserHandler(userSvc)
	collegeH := handler.NewCollegeHandler(collegeSvc)
	admissionH := handler.NewAdmissionHandler(admissionSvc)
	reviewH := handler.NewReviewHandler(reviewSvc)
	catalogH := handler.NewCatalogHandler(catalogSvc)

	// ── Public routes (no auth) ──────────────────────────────────────────
	r.Get("/", healthH.Root)
	r.Get("/health-check/{action}", healthH.Ping)
	r.Post("/jwt", authH.IssueToken)
	r.Post("/adduser", userH.Register)
	r.Get("/colleges", collegeH.List)
	r.Get("/colleges/total", collegeH.Count)
	r.Get("/colleges/search", collegeH.Search)
	r.Get("/colleges/search/", collegeH.Search)
	r.Get("/colleges/search/{name}", collegeH.Search)
	r.Get("/college/{id}", collegeH.Get)
	r.Get("/popularcolleges", collegeH.Popular)
	r.Get("/graduates", catalogH.Graduates)
	r.Get("/research", catalogH.Research)
	r.Get("/reviews", reviewH.List)

	// ── Authenticated routes ─────────────────────────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(authMw)

		// Body-scoped: handlers compare the body email with the caller.
		r.Post("/admission", admissionH.Submit)
		r.Patch("/review/{id}", reviewH.Append)

		// Path-scoped: the {email} segment must be the caller's.
		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.RequireOwner("email"))

			r.Get("/admission/{email}", admissionH.ListByStudent)
			r.Get("/user/{email}", userH.Get)
			r.Patch("/user/{email}", userH.Update)
		})
	})

	return r
}
