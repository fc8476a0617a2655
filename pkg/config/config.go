// Package config loads the optional blockboard.toml configuration file.
//
// Configuration overrides the stock layout metrics (block dimensions, snap
// and break tolerances, container geometry) and the terminal canvas mapping.
// Absent keys keep their defaults, so a minimal file tweaking one tolerance
// is valid. Validation happens after decoding; a config that passes
// Validate always yields a usable board.Metrics.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/blockboard/pkg/board"
	"github.com/matzehuels/blockboard/pkg/errors"
)

// Config is the decoded configuration file.
type Config struct {
	Metrics Metrics `toml:"metrics"`
	Canvas  Canvas  `toml:"canvas"`
}

// Metrics mirrors board.Metrics with toml keys. All values are canvas
// pixels.
type Metrics struct {
	BlockHeight  float64 `toml:"block_height"`
	BlockWidth   float64 `toml:"block_width"`
	ConnectorGap float64 `toml:"connector_gap"`

	FlowPadding   float64 `toml:"flow_padding"`
	FlowSpacing   float64 `toml:"flow_spacing"`
	FlowMinWidth  float64 `toml:"flow_min_width"`
	FlowMinHeight float64 `toml:"flow_min_height"`

	CollectionGap    float64 `toml:"collection_gap"`
	CollectionMargin float64 `toml:"collection_margin"`

	ConnectToleranceY float64 `toml:"connect_tolerance_y"`
	ConnectToleranceX float64 `toml:"connect_tolerance_x"`
	BreakToleranceY   float64 `toml:"break_tolerance_y"`
	BreakToleranceX   float64 `toml:"break_tolerance_x"`

	SpanTolerance float64 `toml:"span_tolerance"`
}

// Canvas maps canvas pixels onto terminal cells for the TUI front-end.
type Canvas struct {
	// CellWidth is how many canvas pixels one terminal column spans.
	CellWidth float64 `toml:"cell_width"`
	// CellHeight is how many canvas pixels one terminal row spans.
	CellHeight float64 `toml:"cell_height"`
	// CursorStep is how many canvas pixels one arrow-key press moves the
	// pointer.
	CursorStep float64 `toml:"cursor_step"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	m := board.DefaultMetrics()
	return Config{
		Metrics: Metrics{
			BlockHeight:       m.BlockHeight,
			BlockWidth:        m.BlockWidth,
			ConnectorGap:      m.ConnectorGap,
			FlowPadding:       m.FlowPadding,
			FlowSpacing:       m.FlowSpacing,
			FlowMinWidth:      m.FlowMinWidth,
			FlowMinHeight:     m.FlowMinHeight,
			CollectionGap:     m.CollectionGap,
			CollectionMargin:  m.CollectionMargin,
			ConnectToleranceY: m.ConnectToleranceY,
			ConnectToleranceX: m.ConnectToleranceX,
			BreakToleranceY:   m.BreakToleranceY,
			BreakToleranceX:   m.BreakToleranceX,
			SpanTolerance:     m.SpanTolerance,
		},
		Canvas: Canvas{
			CellWidth:  10,
			CellHeight: 25,
			CursorStep: 5,
		},
	}
}

// Load reads the config file at path, layered over the defaults. An empty
// path returns the defaults unchanged. The result is validated; a non-nil
// error always carries a structured code.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, errors.New(errors.ErrCodeFileNotFound, "config file %s does not exist", path)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that every dimension is positive and every tolerance
// non-negative.
func (c Config) Validate() error {
	dims := map[string]float64{
		"block_height":    c.Metrics.BlockHeight,
		"block_width":     c.Metrics.BlockWidth,
		"flow_min_width":  c.Metrics.FlowMinWidth,
		"flow_min_height": c.Metrics.FlowMinHeight,
		"collection_gap":  c.Metrics.CollectionGap,
		"cell_width":      c.Canvas.CellWidth,
		"cell_height":     c.Canvas.CellHeight,
		"cursor_step":     c.Canvas.CursorStep,
	}
	for name, v := range dims {
		if v <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be positive, got %v", name, v)
		}
	}
	tols := map[string]float64{
		"connector_gap":       c.Metrics.ConnectorGap,
		"flow_padding":        c.Metrics.FlowPadding,
		"flow_spacing":        c.Metrics.FlowSpacing,
		"collection_margin":   c.Metrics.CollectionMargin,
		"connect_tolerance_y": c.Metrics.ConnectToleranceY,
		"connect_tolerance_x": c.Metrics.ConnectToleranceX,
		"break_tolerance_y":   c.Metrics.BreakToleranceY,
		"break_tolerance_x":   c.Metrics.BreakToleranceX,
		"span_tolerance":      c.Metrics.SpanTolerance,
	}
	for name, v := range tols {
		if v < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must not be negative, got %v", name, v)
		}
	}
	return nil
}

// BoardMetrics converts the configured metrics into the board's type.
func (c Config) BoardMetrics() board.Metrics {
	return board.Metrics{
		BlockHeight:       c.Metrics.BlockHeight,
		BlockWidth:        c.Metrics.BlockWidth,
		ConnectorGap:      c.Metrics.ConnectorGap,
		FlowPadding:       c.Metrics.FlowPadding,
		FlowSpacing:       c.Metrics.FlowSpacing,
		FlowMinWidth:      c.Metrics.FlowMinWidth,
		FlowMinHeight:     c.Metrics.FlowMinHeight,
		CollectionGap:     c.Metrics.CollectionGap,
		CollectionMargin:  c.Metrics.CollectionMargin,
		ConnectToleranceY: c.Metrics.ConnectToleranceY,
		ConnectToleranceX: c.Metrics.ConnectToleranceX,
		BreakToleranceY:   c.Metrics.BreakToleranceY,
		BreakToleranceX:   c.Metrics.BreakToleranceX,
		SpanTolerance:     c.Metrics.SpanTolerance,
	}
}
