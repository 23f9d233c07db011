package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.clientURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// credential endpoints, throttled per client IP
	router.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(h.rateLimit.AuthLimit, h.rateLimit.AuthWindow))
		r.Post("/api/auth/signup", h.signUp)
		r.Post("/api/auth/verify-otp", h.verifyOTP)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/password-reset", h.passwordReset)
	})

	// resend gets its own, much tighter window
	router.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(h.rateLimit.OTPLimit, h.rateLimit.OTPWindow))
		r.Post("/api/auth/resend-otp", h.resendOTP)
	})

	// google oauth entry points
	router.Group(func(r chi.Router) {
		r.Get("/api/auth/google", h.googleRedirect)
		r.Get("/api/auth/google/callback", h.googleCallback)
	})

	// routes requiring authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/auth/profile", h.getProfile)
		r.Put("/api/auth/profile", h.updateProfile)

		r.Post("/api/notes", h.createNote)
		r.Get("/api/notes", h.listNotes)
		r.Get("/api/notes/{id}", h.getNote)
		r.Put("/api/notes/{id}", h.updateNote)
		r.Delete("/api/notes/{id}", h.deleteNote)
	})

	return router
}
