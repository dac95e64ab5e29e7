// Package config loads process configuration once at start-up.
//
// Values come from defaults, an optional dotenv file and ASH_-prefixed
// environment variables, in increasing order of precedence. Nested keys map to
// variables by replacing dots with underscores: db.driver is ASH_DB_DRIVER.
package config

import (
	"os"
	"strings"

	"github.com/ashub/ash/pkg/ash/database"
	"github.com/ashub/ash/pkg/ash/models"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable
const EnvPrefix = "ASH"

// Config is the resolved process configuration
type Config struct {
	Port            string
	BaseURL         string
	DB              database.Options
	UploadDir       string
	StaticDir       string
	DefaultCapacity int
	CORSOrigins     []string
	LogLevel        string
	LogFormat       string
	SeedFile        string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "5000")
	v.SetDefault("base_url", "http://localhost:5000")
	v.SetDefault("db.driver", database.DriverSQLite)
	v.SetDefault("db.path", "ash.db")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "ash")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.log_sql", false)
	v.SetDefault("upload.dir", "./public/uploads")
	v.SetDefault("static.dir", "./public")
	v.SetDefault("groups.default_capacity", models.DefaultCapacity)
	v.SetDefault("cors.origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("seed.file", "")
}

// Load reads configuration. A missing dotenv file is not an error.
func Load() (*Config, error) {
	envFile := os.Getenv(EnvPrefix + "_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, errors.Wrapf(err, "config: load %s", envFile)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "config: stat %s", envFile)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:    v.GetString("port"),
		BaseURL: strings.TrimRight(v.GetString("base_url"), "/"),
		DB: database.Options{
			Driver:       strings.ToLower(v.GetString("db.driver")),
			Path:         v.GetString("db.path"),
			Host:         v.GetString("db.host"),
			Port:         v.GetInt("db.port"),
			User:         v.GetString("db.user"),
			Password:     v.GetString("db.pass"),
			Name:         v.GetString("db.name"),
			MaxOpenConns: v.GetInt("db.max_open_conns"),
			LogSQL:       v.GetBool("db.log_sql"),
		},
		UploadDir:       v.GetString("upload.dir"),
		StaticDir:       v.GetString("static.dir"),
		DefaultCapacity: v.GetInt("groups.default_capacity"),
		CORSOrigins:     splitList(v.GetStringSlice("cors.origins")),
		LogLevel:        v.GetString("log.level"),
		LogFormat:       v.GetString("log.format"),
		SeedFile:        v.GetString("seed.file"),
	}

	if cfg.DB.Driver != database.DriverSQLite && cfg.DB.Driver != database.DriverMySQL {
		return nil, errors.Errorf("config: unsupported db.driver %q", cfg.DB.Driver)
	}
	if cfg.DefaultCapacity < 1 {
		return nil, errors.Errorf("config: groups.default_capacity must be positive, got %d", cfg.DefaultCapacity)
	}
	if cfg.Port == "" {
		return nil, errors.New("config: port is required")
	}

	return cfg, nil
}

// splitList accepts both repeated values and a single comma-separated value,
// which is how lists arrive from environment variables
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
