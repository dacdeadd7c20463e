package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Advisor  AdvisorConfig
	Limits   LimitsConfig
	Storage  StorageConfig
	Seed     SeedConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
	RefreshExp time.Duration
}

// AdvisorConfig selects and configures the AI advisory provider.
// "openai" talks to any OpenAI-compatible chat-completions endpoint,
// "gigachat" uses the GigaChat SDK, "disabled" serves canned advice only.
type AdvisorConfig struct {
	Provider string
	APIURL   string
	APIKey   string
	Model    string
	Referer  string
	Title    string
	GigaChat GigaChatConfig
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	InsecureSkipVerify bool
}

// LimitsConfig configures the baseline fixed daily ceiling for micro expenses.
type LimitsConfig struct {
	DailyMicroLimit string
}

// StorageConfig selects the repository backend: "memory" (default) or "postgres".
type StorageConfig struct {
	Backend string
}

// SeedConfig controls default demo user seeding. Seeding is skipped when a
// Supabase project is configured, since auth is then delegated externally.
type SeedConfig struct {
	SupabaseURL     string
	SupabaseAnonKey string
	UserEmail       string
	UserPassword    string
	UserName        string
}

// UseSupabase reports whether an external Supabase auth provider is configured.
func (s SeedConfig) UseSupabase() bool {
	return s.SupabaseURL != "" && s.SupabaseAnonKey != ""
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	jwtExp, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	refreshExp, _ := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRATION_HOURS", "168"))
	insecureSkipVerify := getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "true") == "true"
	maxConns, _ := strconv.Atoi(getEnv("DB_MAX_CONNS", "10"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "fintrack"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: int32(maxConns),
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			Expiration: time.Duration(jwtExp) * time.Hour,
			RefreshExp: time.Duration(refreshExp) * time.Hour,
		},
		Advisor: AdvisorConfig{
			Provider: getEnv("ADVISOR_PROVIDER", "openai"),
			APIURL:   getEnv("AI_API_URL", ""),
			APIKey:   getEnv("AI_API_KEY", ""),
			Model:    getEnv("AI_MODEL", "deepseek/deepseek-r1:free"),
			Referer:  getEnv("AI_REFERER", ""),
			Title:    getEnv("AI_TITLE", ""),
			GigaChat: GigaChatConfig{
				APIKey:             getEnv("GIGACHAT_API_KEY", ""),
				Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
				InsecureSkipVerify: insecureSkipVerify,
			},
		},
		Limits: LimitsConfig{
			DailyMicroLimit: getEnv("DAILY_MICRO_LIMIT", "50.00"),
		},
		Storage: StorageConfig{
			Backend: getEnv("STORAGE_BACKEND", "memory"),
		},
		Seed: SeedConfig{
			SupabaseURL:     getEnv("SUPABASE_URL", ""),
			SupabaseAnonKey: getEnv("SUPABASE_ANON_KEY", ""),
			UserEmail:       getEnv("DEFAULT_USER_EMAIL", "demo@demo.com"),
			UserPassword:    getEnv("DEFAULT_USER_PASSWORD", "123456"),
			UserName:        getEnv("DEFAULT_USER_NAME", "Demo"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
