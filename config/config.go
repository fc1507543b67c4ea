package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type EmailConfig struct {
	APIKey string `yaml:"api_key"`
	From   string `yaml:"from"`
}

type AppConfig struct {
	BaseURL         string `yaml:"base_url"`
	SendConcurrency int    `yaml:"send_concurrency"`
}

type ConfirmationConfig struct {
	// AllowReresponse keeps the legacy last-write-wins behaviour: a link
	// that was already answered can be answered again. Set to false to
	// reject responses once a confirmation is terminal.
	AllowReresponse bool `yaml:"allow_reresponse"`
}

type Config struct {
	DB           DBConfig           `yaml:"db"`
	JWT          JWTConfig          `yaml:"jwt"`
	Server       ServerConfig       `yaml:"server"`
	Email        EmailConfig        `yaml:"email"`
	App          AppConfig          `yaml:"app"`
	Confirmation ConfirmationConfig `yaml:"confirmation"`
}

func Load() *Config {
	f, err := os.Open("config.yaml")
	if err != nil {
		log.Fatalf("failed to open config.yaml: %v", err)
	}
	defer f.Close()

	cfg := Config{
		Confirmation: ConfirmationConfig{AllowReresponse: true},
	}
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		log.Fatalf("failed to decode config.yaml: %v", err)
	}

	overrideFromEnv(&cfg)

	if cfg.App.SendConcurrency <= 0 {
		cfg.App.SendConcurrency = 8
	}
	if cfg.App.BaseURL == "" {
		cfg.App.BaseURL = "http://localhost:3000"
	}
	if cfg.Email.From == "" {
		cfg.Email.From = "Platform One <noreply@resend.dev>"
	}

	return &cfg
}

func overrideFromEnv(cfg *Config) {
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.DB.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.DB.Port = p
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.DB.Password = password
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.DB.Name = name
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}

	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.Server.Port = port
	}

	if key := os.Getenv("RESEND_API_KEY"); key != "" {
		cfg.Email.APIKey = key
	}
	if from := os.Getenv("RESEND_FROM_EMAIL"); from != "" {
		cfg.Email.From = from
	}

	if baseURL := os.Getenv("BASE_URL"); baseURL != "" {
		cfg.App.BaseURL = baseURL
	}
}
