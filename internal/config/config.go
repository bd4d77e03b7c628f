package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	applog "lamsa/internal/log"
)

type Config struct {
	Port          string        `mapstructure:"PORT"`
	DBDSN         string        `mapstructure:"DB_DSN"`
	LogFile       string        `mapstructure:"LOG_FILE"`
	TemplatesDir  string        `mapstructure:"TEMPLATES_DIR"`
	StaticDir     string        `mapstructure:"STATIC_DIR"`
	AdminUsername string        `mapstructure:"ADMIN_USERNAME"`
	AdminPassword string        `mapstructure:"ADMIN_PASSWORD"`
	SessionSecret string        `mapstructure:"SESSION_SECRET"`
	SessionTTL    time.Duration `mapstructure:"SESSION_TTL"`
	SeedDemo      bool          `mapstructure:"SEED_DEMO"`
}

var defaults = map[string]any{
	"PORT":           "5000",
	"DB_DSN":         "database.db", // sqlite file in working dir
	"LOG_FILE":       "",
	"TEMPLATES_DIR":  "./web/templates",
	"STATIC_DIR":     "./web/static",
	"ADMIN_USERNAME": "admin",
	"ADMIN_PASSWORD": "12345",
	"SESSION_SECRET": "bakery_legendary_key_2026",
	"SESSION_TTL":    "24h",
	"SEED_DEMO":      true,
}

// Load reads an optional .env file, then the process environment, falling
// back to the defaults above for anything unset.
func Load() (Config, error) {
	// .env is optional; a missing file is not an error
	_ = godotenv.Load()

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	applog.Info(nil, "config.loaded", map[string]any{
		"port":      cfg.Port,
		"db_dsn":    cfg.DBDSN,
		"log_file":  cfg.LogFile,
		"templates": cfg.TemplatesDir,
		"seed_demo": cfg.SeedDemo,
	})
	return cfg, nil
}
