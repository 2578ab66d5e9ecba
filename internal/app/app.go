package app

import (
	"database/sql"
	"fmt"
	"log"

	"solocrm/internal/config"
	"solocrm/internal/handlers"
	"solocrm/internal/middleware"
	"solocrm/internal/pdf"
	"solocrm/internal/repositories"
	"solocrm/internal/routes"
	"solocrm/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "solocrm/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	// One shared handle, passed explicitly to every repository.
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to open database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	// === Repos ===
	contactRepo := repositories.NewContactRepository(db)
	companyRepo := repositories.NewCompanyRepository(db)
	leadRepo := repositories.NewLeadRepository(db)
	taskRepo := repositories.NewTaskRepository(db)
	noteRepo := repositories.NewLeadNoteRepository(db)
	invoiceRepo := repositories.NewInvoiceRepository(db)
	activityRepo := repositories.NewActivityRepository(db)

	// === Services ===
	var mailer services.Mailer
	if cfg.Mail.BrevoAPIKey == "" && cfg.Mail.SMTPHost != "" {
		mailer = services.NewSMTPMailer(
			cfg.Mail.SMTPHost, cfg.Mail.SMTPPort,
			cfg.Mail.SMTPUser, cfg.Mail.SMTPPassword, cfg.Mail.SenderEmail,
		)
	} else {
		mailer = services.NewBrevoMailer(cfg.Mail.BrevoAPIKey, cfg.Mail.SenderName, cfg.Mail.SenderEmail)
	}

	// Telegram notifications are optional; a missing token disables them.
	var notifier services.Notifier
	if cfg.Telegram.BotToken != "" {
		tg, err := services.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			log.Printf("[tg] disabled, bot init failed: %v", err)
		} else {
			notifier = tg
		}
	}

	conversionService := services.NewConversionService(taskRepo, invoiceRepo, activityRepo, contactRepo, mailer, notifier)
	leadService := services.NewLeadService(leadRepo, conversionService)
	contactService := services.NewContactService(contactRepo, mailer)
	companyService := services.NewCompanyService(companyRepo)
	taskService := services.NewTaskService(taskRepo)
	noteService := services.NewLeadNoteService(noteRepo)
	invoiceService := services.NewInvoiceService(invoiceRepo)
	activityService := services.NewActivityService(activityRepo)
	statsService := services.NewStatsService(leadRepo, contactRepo, companyRepo, taskRepo)
	searchService := services.NewSearchService(contactRepo, companyRepo, leadRepo)

	invoiceRenderer := pdf.NewInvoiceRenderer(cfg.Mail.SenderName)

	// === Handlers ===
	contactHandler := handlers.NewContactHandler(contactService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	leadHandler := handlers.NewLeadHandler(leadService)
	taskHandler := handlers.NewTaskHandler(taskService)
	noteHandler := handlers.NewLeadNoteHandler(noteService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, invoiceRenderer)
	activityHandler := handlers.NewActivityHandler(activityService)
	statsHandler := handlers.NewStatsHandler(statsService)
	searchHandler := handlers.NewSearchHandler(searchService)

	// === Gin ===
	router := gin.Default()
	router.Use(corsMiddleware())
	router.Use(middleware.AuthMiddleware(cfg.Auth.JWTSecret))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		contactHandler,
		companyHandler,
		leadHandler,
		taskHandler,
		noteHandler,
		invoiceHandler,
		activityHandler,
		statsHandler,
		searchHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server failed: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
