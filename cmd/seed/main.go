// Команда seed заполняет базу стартовым контентом: дефолтными формами
// квиза (en и ru) и зашитыми nurture-шаблонами всех типов личности.
// Повторный запуск безопасен: формы с занятыми slug пропускаются,
// шаблоны перезаписываются актуальными версиями.
package main

import (
	"log"
	"os"

	"github.com/quizfortraders/funnel-api/internal/config"
	"github.com/quizfortraders/funnel-api/internal/content"
	pgRepo "github.com/quizfortraders/funnel-api/internal/repository/postgres"
	"github.com/quizfortraders/funnel-api/internal/service"
	"github.com/quizfortraders/funnel-api/pkg/database"
)

func main() {
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

	content.Configure(content.Links{
		BaseURL:      cfg.App.BaseURL,
		CommunityURL: cfg.App.CommunityURL,
	})

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	formService := service.NewFormService(pgRepo.NewQuizFormRepo(db))
	createdForms, err := formService.SeedDefaults()
	if err != nil {
		log.Printf("Failed to seed forms: %v", err)
		os.Exit(1)
	}
	log.Printf("[Seed] формы: создано %d", createdForms)

	nurtureService := service.NewNurtureTemplateService(pgRepo.NewNurtureTemplateRepo(db))
	seededTemplates, err := nurtureService.SeedDefaults()
	if err != nil {
		log.Printf("Failed to seed nurture templates: %v", err)
		os.Exit(1)
	}
	log.Printf("[Seed] nurture-шаблоны: записано %d", seededTemplates)

	log.Println("[Seed] готово")
}
