package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xxxsen/common/logger"
)

type Config struct {
	Port              int              `json:"port"`
	JWTSecret         string           `json:"jwt_secret"`
	TokenTTLHours     int              `json:"token_ttl_hours"`
	Database          DatabaseConfig   `json:"database"`
	LogConfig         logger.LogConfig `json:"log_config"`
	FileStore         FileStoreConfig  `json:"file_store"`
	CORSAllowlist     []string         `json:"cors_allowlist"`
	ListCache         ListCacheConfig  `json:"list_cache"`
	UploadMaxAgeHours int              `json:"upload_max_age_hours"`
	UploadCleanupSpec string           `json:"upload_cleanup_spec"`
}

type DatabaseConfig struct {
	DSN      string `json:"dsn"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"db_name"`
	SSLMode  string `json:"ssl_mode"`
}

type FileStoreConfig struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type ListCacheConfig struct {
	Size       int `json:"size"`
	TTLSeconds int `json:"ttl_seconds"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	// The signing secret is required configuration. There is no
	// built-in fallback value.
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required")
	}
	if cfg.Port == 0 {
		return nil, fmt.Errorf("port is required")
	}
	if cfg.Database.DSN == "" && (cfg.Database.Host == "" || cfg.Database.DBName == "") {
		return nil, fmt.Errorf("database.dsn or database.host/db_name is required")
	}
	if cfg.TokenTTLHours == 0 {
		cfg.TokenTTLHours = 24 * 30
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	if cfg.FileStore.Type == "" {
		cfg.FileStore.Type = "local"
	}
	if cfg.ListCache.Size == 0 {
		cfg.ListCache.Size = 128
	}
	if cfg.ListCache.TTLSeconds == 0 {
		cfg.ListCache.TTLSeconds = 30
	}
	if cfg.UploadMaxAgeHours == 0 {
		cfg.UploadMaxAgeHours = 24
	}
	if cfg.UploadCleanupSpec == "" {
		cfg.UploadCleanupSpec = "0 * * * *"
	}
	return &cfg, nil
}
