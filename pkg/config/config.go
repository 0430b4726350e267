package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds all configuration for both binaries
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Server ServerConfig `mapstructure:"server"`
	Client ClientConfig `mapstructure:"client"`
}

type AppConfig struct {
	Env string `mapstructure:"env"` // e.g., "local", "prod"
}

type ServerConfig struct {
	Port string `mapstructure:"port"` // gRPC listen address, e.g. ":9090"
}

type ClientConfig struct {
	ServerAddr string `mapstructure:"server_addr"` // gRPC server the client dials
	HTTPAddr   string `mapstructure:"http_addr"`   // REST facade listen address
}

// LoadConfig reads configuration from .env file, environment variables, and defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// 1. Load .env file into System Environment (if it exists)
	// This ensures variables like SERVER_PORT are available as real env vars
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, relying on System Env Vars")
	}

	// 2. Set Defaults (12-Factor App: Dev/Prod Parity)
	v.SetDefault("app.env", "local")

	v.SetDefault("server.port", ":9090")

	v.SetDefault("client.server_addr", "localhost:9090")
	v.SetDefault("client.http_addr", ":8080")

	// 3. Configure Viper to read Environment Variables
	// This maps dot-notation to underscores (e.g., "server.port" -> "SERVER_PORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Explicitly Bind Env Vars to Keys
	// This is crucial for Viper to map flat Env Vars (SERVER_PORT) to nested structs (Server.Port)
	bindEnv(v, "app.env")
	bindEnv(v, "server.port")
	bindEnv(v, "client.server_addr", "client.http_addr")

	// 5. Unmarshal into Struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %v", err)
	}

	// 6. Basic Validation
	if cfg.Server.Port == "" {
		return nil, fmt.Errorf("server port cannot be empty")
	}
	if cfg.Client.ServerAddr == "" {
		return nil, fmt.Errorf("client server_addr cannot be empty")
	}

	return &cfg, nil
}

// NewLogger builds the zap logger for the configured environment
func NewLogger(app AppConfig) (*zap.Logger, error) {
	if app.Env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// bindEnv is a helper to bind multiple keys at once
func bindEnv(v *viper.Viper, keys ...string) {
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			log.Printf("Could not bind env var for key %s: %v", key, err)
		}
	}
}
