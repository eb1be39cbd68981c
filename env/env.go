package env

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/jt05610/nelson"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Environment struct {
	LogLevel           zapcore.Level
	PrimaryDimension   []any
	SecondaryDimension []any
	GraphvizFont       string
}

// LoadEnv reads the environment, after loading a .env file if there is one.
func LoadEnv(logger *zap.Logger) *Environment {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Error loading .env file", zap.Error(err))
	}
	ret := &Environment{
		LogLevel:           zapcore.InfoLevel,
		PrimaryDimension:   []any{nelson.Row},
		SecondaryDimension: []any{nelson.Column},
	}
	if level, ok := os.LookupEnv("NELSON_LOG_LEVEL"); ok {
		if err := ret.LogLevel.UnmarshalText([]byte(level)); err != nil {
			logger.Warn("Failed to parse log level", zap.String("level", level), zap.Error(err))
		}
	}
	if dim, ok := os.LookupEnv("NELSON_PRIMARY_DIMENSION"); ok {
		ret.PrimaryDimension = ParseDimension(dim)
	}
	if dim, ok := os.LookupEnv("NELSON_SECONDARY_DIMENSION"); ok {
		ret.SecondaryDimension = ParseDimension(dim)
	}
	if font, ok := os.LookupEnv("NELSON_GRAPHVIZ_FONT"); ok {
		ret.GraphvizFont = font
	}
	logger.Debug("loaded environment",
		zap.Stringer("level", ret.LogLevel),
		zap.Any("primary", ret.PrimaryDimension),
		zap.Any("secondary", ret.SecondaryDimension),
	)
	return ret
}

// ParseDimension splits a comma separated dimension such as "domain, 0". Integer parts
// become ints and the rest symbols.
func ParseDimension(s string) []any {
	parts := strings.Split(s, ",")
	ret := make([]any, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if i, err := strconv.Atoi(part); err == nil {
			ret = append(ret, i)
			continue
		}
		ret = append(ret, nelson.Symbol(part))
	}
	return ret
}

// Options turns the environment into world options.
func (e *Environment) Options(logger *zap.Logger) []nelson.Option {
	return []nelson.Option{
		nelson.WithLogger(logger),
		nelson.WithPrimaryDimension(e.PrimaryDimension...),
		nelson.WithSecondaryDimension(e.SecondaryDimension...),
	}
}

// Logger builds a development logger at debug level and a production logger otherwise.
func (e *Environment) Logger() (*zap.Logger, error) {
	if e.LogLevel <= zapcore.DebugLevel {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(e.LogLevel)
	return cfg.Build()
}
