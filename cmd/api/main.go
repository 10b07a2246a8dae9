package main

import (
	"fmt"
	"net/http"

	"github.com/insightai/split-backend-go/internal/config"
	appHTTP "github.com/insightai/split-backend-go/internal/handler/http"
	"github.com/insightai/split-backend-go/internal/pkg/database"
	"github.com/insightai/split-backend-go/internal/repository/postgresql"
	authService "github.com/insightai/split-backend-go/internal/service/auth"
	payoutService "github.com/insightai/split-backend-go/internal/service/payout"
	profitService "github.com/insightai/split-backend-go/internal/service/profit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	ownerRepo := postgresql.NewOwnerRepository(db)
	payeeRepo := postgresql.NewPayeeRepository(db)
	profitRepo := postgresql.NewProfitRepository(db)
	payoutRepo := postgresql.NewPayoutRepository(db)

	authSvc := authService.NewAuthService(db, ownerRepo, payeeRepo)
	profitSvc := profitService.NewProfitService(profitRepo)
	payoutSvc := payoutService.NewPayoutService(profitRepo, payeeRepo, payoutRepo, ownerRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	profitHandler := appHTTP.NewProfitHandler(profitSvc)
	payoutHandler := appHTTP.NewPayoutHandler(payoutSvc)

	router := appHTTP.NewRouter(cfg.App.Env, authHandler, profitHandler, payoutHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
