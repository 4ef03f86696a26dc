package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/origin8hq/lms-backend-go/internal/config"
	appHTTP "github.com/origin8hq/lms-backend-go/internal/handler/http"
	"github.com/origin8hq/lms-backend-go/internal/pkg/database"
	"github.com/origin8hq/lms-backend-go/internal/pkg/jwt"
	"github.com/origin8hq/lms-backend-go/internal/pkg/oauth"
	"github.com/origin8hq/lms-backend-go/internal/repository/postgresql"
	authService "github.com/origin8hq/lms-backend-go/internal/service/auth"
	leaveService "github.com/origin8hq/lms-backend-go/internal/service/leave"
	userService "github.com/origin8hq/lms-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	profileRepo := postgresql.NewProfileRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewService(db, profileRepo, refreshTokenRepo, jwtService)
	leaveSvc := leaveService.NewService(db, leaveTypeRepo, leaveRequestRepo, leaveBalanceRepo)
	directorySvc := userService.NewService(db, profileRepo, departmentRepo, leaveBalanceRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	userHandler := appHTTP.NewUserHandler(directorySvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentRepo)
	dashboardHandler := appHTTP.NewDashboardHandler(leaveSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:         cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
		},
		jwtService,
		authHandler,
		leaveHandler,
		userHandler,
		departmentHandler,
		dashboardHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       time.Minute,
	}

	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := server.ListenAndServe(); err != nil {
		fmt.Println("Server error:", err)
	}
}
