package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Log      Log
	Database Database
	Storage  Storage
	Redis    Redis
	Upload   Upload
	Feedback Feedback
}

type Server struct {
	Port         string
	GinMode      string
	AllowOrigins []string
}

type Log struct {
	Level  string
	Format string // "console" or "json"
	File   string
}

type Database struct {
	Driver     string // "postgres" or "sqlite"
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
	Seed       bool
}

// Storage describes the resume store chain. Backends are tried in order.
type Storage struct {
	Backends []string
	DataDir  string
	KVDriver string
	KVKey    string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Upload struct {
	MaxBytes      int64
	RatePerMinute uint
}

type Feedback struct {
	Provider     string // "mock" or "gemini"
	GeminiApiKey string
	GeminiModel  string
}

const (
	BackendFile = "file"
	BackendKV   = "kv"
	BackendDB   = "db"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("LOG_FILE", "")

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "postgres")
	v.SetDefault("DATABASE_NAME", "interview_prep")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_SQLITE_PATH", "interview_prep.db")
	v.SetDefault("DATABASE_SEED", true)

	v.SetDefault("STORAGE_BACKENDS", "file,kv,db")
	v.SetDefault("STORAGE_DATA_DIR", "data")
	v.SetDefault("KV_DRIVER", "memory")
	v.SetDefault("KV_RESUME_KEY", "parsed_resumes")

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("UPLOAD_MAX_BYTES", 10*1024*1024)
	v.SetDefault("UPLOAD_RATE_PER_MINUTE", 30)

	v.SetDefault("FEEDBACK_PROVIDER", "mock")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
}

// NewConfig reads .env from the working directory, then the environment.
func NewConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file, using environment and defaults")
	}

	cfg, err := Load(v)
	if err != nil {
		return nil, err
	}
	watch(v)

	log.Info().
		Str("port", cfg.Server.Port).
		Str("db_driver", cfg.Database.Driver).
		Strs("storage_backends", cfg.Storage.Backends).
		Str("kv_driver", cfg.Storage.KVDriver).
		Str("feedback_provider", cfg.Feedback.Provider).
		Msg("Config loaded")
	return cfg, nil
}

// Load builds a Config from an already populated viper instance.
func Load(v *viper.Viper) (*Config, error) {
	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.GinMode = v.GetString("GIN_MODE")
	config.Server.AllowOrigins = splitList(v.GetString("CORS_ALLOW_ORIGINS"))

	config.Log.Level = v.GetString("LOG_LEVEL")
	config.Log.Format = strings.ToLower(v.GetString("LOG_FORMAT"))
	config.Log.File = v.GetString("LOG_FILE")

	config.Database.Driver = strings.ToLower(v.GetString("DATABASE_DRIVER"))
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Database.SSLMode = v.GetString("DATABASE_SSLMODE")
	config.Database.SQLitePath = v.GetString("DATABASE_SQLITE_PATH")
	config.Database.Seed = v.GetBool("DATABASE_SEED")

	config.Storage.Backends = splitList(strings.ToLower(v.GetString("STORAGE_BACKENDS")))
	config.Storage.DataDir = v.GetString("STORAGE_DATA_DIR")
	config.Storage.KVDriver = strings.ToLower(v.GetString("KV_DRIVER"))
	config.Storage.KVKey = v.GetString("KV_RESUME_KEY")

	config.Redis.Addr = v.GetString("REDIS_ADDR")
	config.Redis.Password = v.GetString("REDIS_PASSWORD")
	config.Redis.DB = v.GetInt("REDIS_DB")

	config.Upload.MaxBytes = v.GetInt64("UPLOAD_MAX_BYTES")
	config.Upload.RatePerMinute = v.GetUint("UPLOAD_RATE_PER_MINUTE")

	config.Feedback.Provider = strings.ToLower(v.GetString("FEEDBACK_PROVIDER"))
	config.Feedback.GeminiApiKey = v.GetString("GEMINI_API_KEY")
	config.Feedback.GeminiModel = v.GetString("GEMINI_MODEL")

	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.Database.Driver)
	}
	if len(c.Storage.Backends) == 0 {
		return fmt.Errorf("STORAGE_BACKENDS must name at least one backend")
	}
	for _, b := range c.Storage.Backends {
		switch b {
		case BackendFile, BackendKV, BackendDB:
		default:
			return fmt.Errorf("unknown storage backend %q", b)
		}
	}
	switch c.Storage.KVDriver {
	case "memory", "redis":
	default:
		return fmt.Errorf("unsupported KV_DRIVER %q", c.Storage.KVDriver)
	}
	switch c.Feedback.Provider {
	case "mock", "gemini":
	default:
		return fmt.Errorf("unsupported FEEDBACK_PROVIDER %q", c.Feedback.Provider)
	}
	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}
	return nil
}

// HasBackend reports whether the named store is part of the chain.
func (s Storage) HasBackend(name string) bool {
	for _, b := range s.Backends {
		if b == name {
			return true
		}
	}
	return false
}

// watch re-applies LOG_LEVEL whenever the .env file changes.
func watch(v *viper.Viper) {
	if v.ConfigFileUsed() == "" {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		lvl, err := zerolog.ParseLevel(v.GetString("LOG_LEVEL"))
		if err != nil {
			log.Warn().Err(err).Str("file", e.Name).Msg("Ignoring invalid LOG_LEVEL on reload")
			return
		}
		zerolog.SetGlobalLevel(lvl)
		log.Info().Str("file", e.Name).Str("level", lvl.String()).Msg("Config file changed, log level updated")
	})
	v.WatchConfig()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
