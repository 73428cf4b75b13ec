package config

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"
)

// Config хранит все настройки приложения
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Email    EmailConfig
	Admin    AdminConfig
	App      AppConfig
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port         string
	ReadTimeout  int
	WriteTimeout int
}

// DatabaseConfig содержит настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig содержит унифицированные настройки подключения к Redis
// Поддерживает режимы: single, sentinel, cluster
type RedisConfig struct {
	// Mode: Режим работы Redis ("single", "sentinel", "cluster"). По умолчанию "single".
	Mode string `mapstructure:"mode"`

	// Addrs: Список адресов Redis (хост:порт). Используется для всех режимов.
	// Для 'single', если не пуст, используется первый адрес из списка.
	Addrs []string `mapstructure:"addrs"`

	// Addr: Альтернативный адрес для режима 'single' (для обратной совместимости).
	// Используется, если Mode="single" и Addrs пустой.
	Addr string `mapstructure:"addr"`

	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`

	// MasterName: Имя мастер-сервера Redis (только для режима "sentinel")
	MasterName string `mapstructure:"master_name"`

	// MaxRetries: Максимальное количество попыток переподключения (-1 - бесконечно). По умолчанию 0 (без ретраев).
	MaxRetries int `mapstructure:"max_retries"`

	// MinRetryBackoff: Минимальный интервал между попытками (в миллисекундах). По умолчанию 8ms.
	MinRetryBackoff int `mapstructure:"min_retry_backoff"`

	// MaxRetryBackoff: Максимальный интервал между попытками (в миллисекундах). По умолчанию 512ms.
	MaxRetryBackoff int `mapstructure:"max_retry_backoff"`
}

// EmailConfig содержит настройки отправки писем через Resend
type EmailConfig struct {
	// APIKey: Ключ Resend API. Пустой ключ переводит отправку в noop-режим,
	// письма логируются, но не уходят.
	APIKey string `mapstructure:"api_key"`

	// From: Адрес отправителя в формате "Name <mail@domain>"
	From string `mapstructure:"from"`

	// SendFirstImmediately: отправлять письмо #1 прямо в сабмите квиза,
	// не дожидаясь первого прохода диспетчера очереди
	SendFirstImmediately bool `mapstructure:"send_first_immediately"`

	// Audiences: карта personality_type -> ID аудитории Resend для сегментации
	Audiences map[string]string `mapstructure:"audiences"`

	// DefaultAudience: ID аудитории для контактов без своего сегмента
	DefaultAudience string `mapstructure:"default_audience"`
}

// AdminConfig содержит настройки однопользовательской админки
type AdminConfig struct {
	// PasswordHash: bcrypt-хеш пароля администратора
	PasswordHash string `mapstructure:"password_hash"`

	// JWTSecret: ключ подписи сессионных токенов
	JWTSecret string `mapstructure:"jwt_secret"`

	// SessionTTLHours: время жизни сессии в часах. По умолчанию 24.
	SessionTTLHours int `mapstructure:"session_ttl_hours"`

	// CookieSecure: выставлять Secure на сессионной куке
	CookieSecure bool `mapstructure:"cookie_secure"`
}

// AppConfig содержит настройки, специфичные для воронки
type AppConfig struct {
	// BaseURL: публичный адрес фронтенда; используется в ссылках писем
	BaseURL string `mapstructure:"base_url"`

	// CommunityURL: адрес сообщества для CTA в письмах
	CommunityURL string `mapstructure:"community_url"`

	// CronSecret: секрет эндпоинта обработки очереди писем
	CronSecret string `mapstructure:"cron_secret"`

	// CORSAllowedOrigins: список разрешенных Origin для фронтенда
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// PostgresConnectionString формирует строку подключения к PostgreSQL
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Load загружает конфигурацию из файла
func Load(configPath string) (*Config, error) {
	vip := viper.New() // Используем новый экземпляр Viper, чтобы избежать глобального состояния

	// 1. Значения по умолчанию
	vip.SetDefault("server.port", "8080")
	vip.SetDefault("admin.session_ttl_hours", 24)
	vip.SetDefault("app.base_url", "http://localhost:3000")

	// 2. Привязываем переменные окружения ЯВНО
	// Привязка для секции Database
	vip.BindEnv("database.host", "DATABASE_HOST")
	vip.BindEnv("database.port", "DATABASE_PORT")
	vip.BindEnv("database.user", "DATABASE_USER")
	vip.BindEnv("database.password", "DATABASE_PASSWORD")
	vip.BindEnv("database.dbname", "DATABASE_DBNAME")
	vip.BindEnv("database.sslmode", "DATABASE_SSLMODE")

	// Привязка для секции Redis
	vip.BindEnv("redis.mode", "REDIS_MODE")
	vip.BindEnv("redis.addrs", "REDIS_ADDRS") // Для массива строк
	vip.BindEnv("redis.addr", "REDIS_ADDR")   // Для одиночной строки
	vip.BindEnv("redis.password", "REDIS_PASSWORD")
	vip.BindEnv("redis.db", "REDIS_DB")
	vip.BindEnv("redis.master_name", "REDIS_MASTER_NAME")

	// Привязка для секции Email
	vip.BindEnv("email.api_key", "RESEND_API_KEY")
	vip.BindEnv("email.from", "EMAIL_FROM")
	vip.BindEnv("email.send_first_immediately", "EMAIL_SEND_FIRST_IMMEDIATELY")
	vip.BindEnv("email.default_audience", "RESEND_DEFAULT_AUDIENCE")

	// Привязка для секции Admin
	vip.BindEnv("admin.password_hash", "ADMIN_PASSWORD_HASH")
	vip.BindEnv("admin.jwt_secret", "ADMIN_JWT_SECRET")
	vip.BindEnv("admin.session_ttl_hours", "ADMIN_SESSION_TTL_HOURS")
	vip.BindEnv("admin.cookie_secure", "ADMIN_COOKIE_SECURE")

	// Привязка для секции App
	vip.BindEnv("app.base_url", "APP_BASE_URL")
	vip.BindEnv("app.community_url", "APP_COMMUNITY_URL")
	vip.BindEnv("app.cron_secret", "CRON_SECRET")
	vip.BindEnv("app.cors_allowed_origins", "CORS_ALLOWED_ORIGINS")

	// Привязка для Server
	vip.BindEnv("server.port", "SERVER_PORT")

	// 3. Устанавливаем путь к файлу конфигурации
	if configPath != "" {
		vip.SetConfigFile(configPath)
		// 4. Пытаемся прочитать файл конфигурации (не страшно, если его нет, т.к. есть BindEnv)
		if err := vip.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				log.Printf("Файл конфигурации '%s' не найден, используются переменные окружения/умолчания.", configPath)
			} else {
				log.Printf("Предупреждение: не удалось прочитать файл конфигурации '%s': %v", configPath, err)
			}
		}
	}

	// 5. Анмаршалим конфигурацию (Viper объединит значения из файла и привязанных env vars)
	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Логирование конфигурации (только в debug режиме)
	if os.Getenv("GIN_MODE") != "release" {
		log.Printf("--- Загруженные значения конфигурации ---")
		log.Printf("Database Host: %s", cfg.Database.Host)
		log.Printf("Database Port: %s", cfg.Database.Port)
		log.Printf("Database User: %s", cfg.Database.User)
		log.Printf("Database Name: %s", cfg.Database.DBName)
		log.Printf("Database SSLMode: %s", cfg.Database.SSLMode)
		log.Printf("Redis Addr: %s", cfg.Redis.Addr)
		log.Printf("Redis Mode: %s", cfg.Redis.Mode)
		log.Printf("Email From: %s", cfg.Email.From)
		log.Printf("Resend API Key Set: %t", cfg.Email.APIKey != "")
		log.Printf("Admin Password Hash Set: %t", cfg.Admin.PasswordHash != "")
		log.Printf("Cron Secret Set: %t", cfg.App.CronSecret != "")
		log.Printf("App Base URL: %s", cfg.App.BaseURL)
		log.Printf("Server Port: %s", cfg.Server.Port)
		log.Printf("-----------------------------------------")
	}

	// 7. Проверка обязательных параметров
	if cfg.Database.Host == "" || cfg.Database.DBName == "" || cfg.Database.User == "" {
		return nil, fmt.Errorf("database configuration (host, dbname, user) is incomplete in config (check DATABASE_HOST, DATABASE_DBNAME, DATABASE_USER env vars)")
	}
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		if cfg.Database.Password == "" {
			return nil, fmt.Errorf("database password is required in production mode (check DATABASE_PASSWORD env var)")
		}
		if cfg.Admin.JWTSecret == "" {
			return nil, fmt.Errorf("admin JWT secret is required in production mode (check ADMIN_JWT_SECRET env var)")
		}
		if cfg.App.CronSecret == "" {
			return nil, fmt.Errorf("cron secret is required in production mode (check CRON_SECRET env var)")
		}
	}

	return &cfg, nil
}
