package env_test

import (
	"testing"

	"github.com/jt05610/nelson"
	"github.com/jt05610/nelson/env"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseDimension(t *testing.T) {
	got := env.ParseDimension(" domain, 2 ,")
	if len(got) != 2 || got[0] != nelson.Domain || got[1] != 2 {
		t.Errorf("unexpected dimension %v", got)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("NELSON_LOG_LEVEL", "warn")
	t.Setenv("NELSON_PRIMARY_DIMENSION", "sheet,1")
	t.Setenv("NELSON_SECONDARY_DIMENSION", "column")
	t.Setenv("NELSON_GRAPHVIZ_FONT", "Times")
	e := env.LoadEnv(zap.NewNop())
	if e.LogLevel != zapcore.WarnLevel {
		t.Errorf("expected warn, got %s", e.LogLevel)
	}
	if e.GraphvizFont != "Times" {
		t.Errorf("expected Times, got %s", e.GraphvizFont)
	}
	w, err := nelson.NewWorld(e.Options(zap.NewNop())...)
	if err != nil {
		t.Fatal(err)
	}
	if w.PrimaryDimension().Dimension() != w.MustDimension(nelson.Sheet, 1) {
		t.Errorf("unexpected primary dimension %s", w.PrimaryDimension())
	}
	if w.SecondaryDimension().Dimension() != w.MustDimension(nelson.Column) {
		t.Errorf("unexpected secondary dimension %s", w.SecondaryDimension())
	}
}
