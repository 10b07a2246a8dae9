package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(env string, authHandler AuthHandler, profitHandler ProfitHandler, payoutHandler PayoutHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "split-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api", func(r chi.Router) {
		r.Route("/owner", func(r chi.Router) {
			r.Post("/signup", authHandler.OwnerSignup)
			r.Post("/login", authHandler.OwnerLogin)

			r.Route("/expenses", func(r chi.Router) {
				r.Post("/", payoutHandler.AddFixedPayee)
				r.Get("/{ownerID}", payoutHandler.ListFixedPayees)
			})

			r.Get("/profits/{ownerID}", profitHandler.GetOwnerHistory)
		})

		r.Route("/worker", func(r chi.Router) {
			r.Post("/signup", authHandler.WorkerSignup)
			r.Post("/login", authHandler.WorkerLogin)
		})

		r.Post("/revenue", profitHandler.RecordProfit)
		r.Post("/pay", payoutHandler.RunPayout)
		r.Get("/receipts/{payeeID}", payoutHandler.GetReceipts)
	})

	return r
}
