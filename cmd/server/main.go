package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"mumanager-backend/internal/auth"
	"mumanager-backend/internal/cache"
	"mumanager-backend/internal/config"
	"mumanager-backend/internal/database"
	"mumanager-backend/internal/db"
	"mumanager-backend/internal/handlers"
	"mumanager-backend/internal/health"
	h "mumanager-backend/internal/http"
	"mumanager-backend/internal/llm"
	"mumanager-backend/internal/mail"
	"mumanager-backend/internal/middleware"
	"mumanager-backend/internal/monitoring"
	"mumanager-backend/internal/repositories"
	"mumanager-backend/internal/services"
	"mumanager-backend/internal/storage"
	"mumanager-backend/migrations"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	log.Println("Running database migrations...")
	migrator := database.NewMigrator(pool, migrations.FS, ".")
	migrateCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := migrator.RunMigrations(migrateCtx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis is optional; login falls back to bcrypt-only when missing
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Not available, credential cache disabled: %v", err)
	}

	healthChecker := health.NewHealthChecker(pool)

	// Monitoring server on its own port
	go monitoring.NewMonitoringServer(pool, 9090).Start()

	jwtManager := auth.NewJWTManager(cfg)

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	companyRepo := repositories.NewCompanyRepository(pool)
	clientRepo := repositories.NewClientRepository(pool)
	contractRepo := repositories.NewContractRepository(pool)
	invoiceRepo := repositories.NewInvoiceRepository(pool)
	revenueRepo := repositories.NewRevenueRepository(pool)
	passwordResetRepo := repositories.NewPasswordResetRepository(pool)
	conversationRepo := repositories.NewConversationRepository(pool)

	// External collaborators; mocks keep local development working when
	// SMTP or the LLM API key are not configured
	var mailer mail.Mailer
	if cfg.SMTP.Host != "" {
		mailer = mail.NewSMTPMailer(cfg)
	} else {
		log.Println("WARNING: SMTP_HOST not set, using MockMailer (emails will only print to logs)")
		mailer = mail.NewMockMailer()
	}

	var chatProvider llm.ChatProvider
	if cfg.LLM.APIKey != "" {
		chatProvider = llm.NewOpenAIClient(cfg)
	} else {
		log.Println("WARNING: OPENAI_API_KEY not set, using MockProvider (chatbot replies are canned)")
		chatProvider = llm.NewMockProvider()
	}

	objectStore := storage.New(ctx, cfg)

	// Services
	userService := services.NewUserService(userRepo, jwtManager, mailer)
	companyService := services.NewCompanyService(companyRepo)
	clientService := services.NewClientService(clientRepo, companyService)
	contractService := services.NewContractService(contractRepo, companyService, objectStore)
	pdfService := services.NewPDFService()
	invoiceService := services.NewInvoiceService(invoiceRepo, clientRepo, companyService, mailer, pdfService, objectStore)
	revenueService := services.NewRevenueService(revenueRepo, companyService)
	passwordResetService := services.NewPasswordResetService(passwordResetRepo, userRepo, mailer, cfg.Server.PublicURL)
	chatbotService := services.NewChatbotService(conversationRepo, chatProvider)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, passwordResetService)
	userHandler := handlers.NewUserHandler(userService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	clientHandler := handlers.NewClientHandler(clientService)
	contractHandler := handlers.NewContractHandler(contractService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	revenueHandler := handlers.NewRevenueHandler(revenueService)
	dashboardHandler := handlers.NewDashboardHandler(revenueService)
	chatbotHandler := handlers.NewChatbotHandler(chatbotService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	router := h.NewRouter(
		authHandler,
		userHandler,
		companyHandler,
		clientHandler,
		contractHandler,
		invoiceHandler,
		revenueHandler,
		dashboardHandler,
		chatbotHandler,
		healthHandler,
		authMiddleware,
	)

	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
