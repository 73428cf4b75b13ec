package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/quizfortraders/funnel-api/internal/config"
	"github.com/quizfortraders/funnel-api/internal/content"
	"github.com/quizfortraders/funnel-api/internal/handler"
	"github.com/quizfortraders/funnel-api/internal/middleware"
	pgRepo "github.com/quizfortraders/funnel-api/internal/repository/postgres"
	redisRepo "github.com/quizfortraders/funnel-api/internal/repository/redis"
	"github.com/quizfortraders/funnel-api/internal/service"
	"github.com/quizfortraders/funnel-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Ссылки в зашитых шаблонах писем берутся из конфига
	content.Configure(content.Links{
		BaseURL:      cfg.App.BaseURL,
		CommunityURL: cfg.App.CommunityURL,
	})

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к Redis
	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Инициализируем репозитории
	contactRepo := pgRepo.NewContactRepo(db)
	scheduleRepo := pgRepo.NewEmailScheduleRepo(db)
	formRepo := pgRepo.NewQuizFormRepo(db)
	nurtureTemplateRepo := pgRepo.NewNurtureTemplateRepo(db)
	emailTemplateRepo := pgRepo.NewEmailTemplateRepo(db)
	campaignRepo := pgRepo.NewEmailCampaignRepo(db)

	cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize CacheRepo: %v", err)
		os.Exit(1)
	}

	// Отправка писем: без API-ключа работаем в noop-режиме, письма только логируются
	var emailSender service.EmailSender = &service.NoopEmailSender{}
	var marketingSync service.MarketingSync = &service.NoopMarketingSync{}
	if cfg.Email.APIKey != "" {
		sender, err := service.NewResendEmailSender(cfg.Email.APIKey, cfg.Email.From)
		if err != nil {
			log.Printf("Failed to initialize Resend sender: %v", err)
			os.Exit(1)
		}
		emailSender = sender

		sync, err := service.NewResendMarketingSync(cfg.Email.APIKey, cfg.Email.Audiences, cfg.Email.DefaultAudience)
		if err != nil {
			log.Printf("Failed to initialize Resend marketing sync: %v", err)
			os.Exit(1)
		}
		marketingSync = sync
	} else {
		log.Println("RESEND_API_KEY не задан: письма отправляются в noop-режиме")
	}

	// Инициализируем сервисы
	resolver := service.NewTemplateResolver(nurtureTemplateRepo)
	submissionService := service.NewSubmissionService(
		contactRepo,
		scheduleRepo,
		formRepo,
		resolver,
		emailSender,
		marketingSync,
		cfg.Email.SendFirstImmediately,
	)
	queueService := service.NewQueueService(scheduleRepo, contactRepo, resolver, emailSender)
	formService := service.NewFormService(formRepo)
	nurtureService := service.NewNurtureTemplateService(nurtureTemplateRepo)
	campaignService := service.NewCampaignService(campaignRepo, contactRepo, emailSender)
	statsService := service.NewStatsService(contactRepo, scheduleRepo, cacheRepo)

	// Инициализируем обработчики
	quizHandler := handler.NewQuizHandler(submissionService, formService, statsService)
	queueHandler := handler.NewQueueHandler(queueService, cfg.App.CronSecret)
	pdfHandler := handler.NewPDFHandler()
	authHandler := handler.NewAuthHandler(
		cfg.Admin.PasswordHash,
		cfg.Admin.JWTSecret,
		time.Duration(cfg.Admin.SessionTTLHours)*time.Hour,
		cfg.Admin.CookieSecure,
	)
	formHandler := handler.NewFormHandler(formService)
	templateHandler := handler.NewTemplateHandler(nurtureService, emailTemplateRepo)
	campaignHandler := handler.NewCampaignHandler(campaignService)
	contactHandler := handler.NewContactHandler(contactRepo, scheduleRepo, statsService)

	// Инициализируем middleware
	adminMiddleware := middleware.NewAdminMiddleware(cfg.Admin.JWTSecret)
	rateLimiter := middleware.NewRateLimiter(redisClient)

	// Инициализируем роутер Gin
	router := gin.Default()

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	isProduction := gin.Mode() == gin.ReleaseMode
	if isProduction {
		// Production: не доверять прокси-заголовкам
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		// Development: доверяем localhost
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	allowedOrigins := cfg.App.CORSAllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Настраиваем маршруты API
	api := router.Group("/api")
	{
		// Публичная воронка
		api.POST("/quiz/submit", rateLimiter.Limit(middleware.QuizSubmitRateLimitConfig()), quizHandler.SubmitQuiz)
		api.GET("/forms/:slug", quizHandler.GetPublishedForm)
		api.GET("/pdf/:type", pdfHandler.GetReport)

		// Диспетчер очереди писем (для внешнего крона, защищен cron-секретом)
		api.GET("/emails/process-queue", queueHandler.ProcessQueue)
		api.POST("/emails/process-queue", queueHandler.ProcessQueue)

		// Аутентификация админки
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", rateLimiter.LimitByIP(middleware.LoginRateLimitConfig()), authHandler.Login)
			authGroup.POST("/logout", authHandler.Logout)
			authGroup.GET("/me", adminMiddleware.RequireAdmin(), authHandler.Me)
		}

		// Админка
		admin := api.Group("/admin")
		admin.Use(adminMiddleware.RequireAdmin())
		{
			// Контакты и статистика
			admin.GET("/submissions", contactHandler.ListContacts)
			admin.GET("/submissions/export", contactHandler.ExportContacts)
			submissionWithID := admin.Group("/submissions/:id")
			submissionWithID.Use(middleware.ExtractUintParam("id", "contactID"))
			{
				submissionWithID.GET("", contactHandler.GetContact)
			}
			admin.GET("/stats", contactHandler.GetStats)

			// Конструктор форм
			admin.GET("/forms", formHandler.ListForms)
			admin.POST("/forms", formHandler.CreateForm)
			admin.POST("/forms/seed", formHandler.SeedForms)
			formWithID := admin.Group("/forms/:id")
			formWithID.Use(middleware.ExtractUintParam("id", "formID"))
			{
				formWithID.GET("", formHandler.GetForm)
				formWithID.PUT("", formHandler.UpdateForm)
				formWithID.DELETE("", formHandler.DeleteForm)
				formWithID.POST("/clone", formHandler.CloneForm)
				formWithID.PUT("/questions", formHandler.ReplaceQuestions)
			}

			// Nurture-шаблоны
			admin.GET("/nurture-templates", templateHandler.ListNurtureTemplates)
			admin.POST("/nurture-templates/seed", templateHandler.SeedNurtureTemplates)
			nurtureWithID := admin.Group("/nurture-templates/:id")
			nurtureWithID.Use(middleware.ExtractUintParam("id", "templateID"))
			{
				nurtureWithID.GET("", templateHandler.GetNurtureTemplate)
				nurtureWithID.PUT("", templateHandler.UpdateNurtureTemplate)
			}

			// Шаблоны разовых рассылок
			admin.GET("/templates", templateHandler.ListEmailTemplates)
			admin.POST("/templates", templateHandler.CreateEmailTemplate)
			emailTemplateWithID := admin.Group("/templates/:id")
			emailTemplateWithID.Use(middleware.ExtractUintParam("id", "templateID"))
			{
				emailTemplateWithID.PUT("", templateHandler.UpdateEmailTemplate)
				emailTemplateWithID.DELETE("", templateHandler.DeleteEmailTemplate)
			}

			// Кампании
			admin.GET("/campaigns", campaignHandler.ListCampaigns)
			admin.GET("/campaigns/recipients", campaignHandler.CountRecipients)
			admin.POST("/campaigns/send", campaignHandler.SendCampaign)
			campaignWithID := admin.Group("/campaigns/:id")
			campaignWithID.Use(middleware.ExtractUintParam("id", "campaignID"))
			{
				campaignWithID.GET("", campaignHandler.GetCampaign)
			}
		}
	}

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Server started on port %s", cfg.Server.Port)

	// Ждем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Создаем контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Server exited properly")
}
