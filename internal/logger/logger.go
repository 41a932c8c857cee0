package logger

import (
	"io"
	"os"
	"time"

	"github.com/lshigami/intervue/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init configures the global zerolog logger with development defaults.
// It is called before the config is loaded so startup messages are readable.
func Init() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

// Configure applies the loaded log settings. When a log file is set, entries
// are written to it as JSON and rotated by lumberjack.
func Configure(cfg *config.Config) {
	lvl, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || cfg.Log.Level == "" {
		log.Warn().Str("level", cfg.Log.Level).Msg("Invalid LOG_LEVEL, falling back to info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	var console io.Writer = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	if cfg.Log.Format == "json" {
		console = os.Stdout
	}

	out := console
	if cfg.Log.File != "" {
		out = zerolog.MultiLevelWriter(console, &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     7, // days
			Compress:   true,
		})
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	log.Info().Str("level", lvl.String()).Str("format", cfg.Log.Format).Str("file", cfg.Log.File).Msg("Logger configured")
}
