// Package showcase loads button showcase files and lays the buttons out on
// a grid.
package showcase

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gg"
	"github.com/gogpu/neopop"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for files that are neither TOML nor YAML.
var ErrUnknownFormat = errors.New("showcase: unknown file format")

// ErrUnknownState is returned for state names that no State has.
var ErrUnknownState = errors.New("showcase: unknown state")

// Config is a showcase file.
type Config struct {
	Columns    int      `toml:"columns" yaml:"columns"`
	CellWidth  float64  `toml:"cell_width" yaml:"cell_width"`
	CellHeight float64  `toml:"cell_height" yaml:"cell_height"`
	Gap        float64  `toml:"gap" yaml:"gap"`
	Scale      float64  `toml:"scale" yaml:"scale"`
	Background string   `toml:"background" yaml:"background"`
	Palette    []string `toml:"palette" yaml:"palette"`

	Buttons []ButtonSpec `toml:"button" yaml:"buttons"`
}

// ButtonSpec describes one showcase button.
type ButtonSpec struct {
	Title     string               `toml:"title" yaml:"title"`
	Direction neopop.EdgeDirection `toml:"direction" yaml:"direction"`
	Position  neopop.Position      `toml:"position" yaml:"position"`
	// Color is the face color; empty picks the next palette color.
	Color      string  `toml:"color" yaml:"color"`
	TitleColor string  `toml:"title_color" yaml:"title_color"`
	Border     string  `toml:"border" yaml:"border"`
	BorderSize float64 `toml:"border_width" yaml:"border_width"`
	EdgeLength float64 `toml:"edge_length" yaml:"edge_length"`
	State      string  `toml:"state" yaml:"state"`
	Pressed    bool    `toml:"pressed" yaml:"pressed"`
	Upper      bool    `toml:"upper" yaml:"upper"`
	Shimmer    bool    `toml:"shimmer" yaml:"shimmer"`
	Floating   bool    `toml:"floating" yaml:"floating"`
	Static     bool    `toml:"static_edges" yaml:"static_edges"`
}

// Defaults of a showcase grid.
const (
	DefaultColumns    = 4
	DefaultCellWidth  = 180.0
	DefaultCellHeight = 64.0
	DefaultGap        = 24.0
)

// DefaultPalette cycles through the face colors of buttons without one.
var DefaultPalette = []string{"FFE0A0", "0D0D0D", "06C270", "E0E0E0", "8A6CFF", "FF8787"}

// Default returns a showcase with one button per direction.
func Default() Config {
	cfg := Config{Background: "F5F5F5"}
	for _, k := range []neopop.EdgeDirection{
		neopop.TopLeft(), neopop.TopRight(), neopop.BottomLeft(), neopop.BottomRight(),
		neopop.Top(), neopop.Bottom(), neopop.Left(), neopop.Right(),
	} {
		cfg.Buttons = append(cfg.Buttons, ButtonSpec{
			Title:     k.Name(),
			Direction: k,
			Position:  neopop.PositionCenter,
		})
	}
	cfg.Buttons = append(cfg.Buttons,
		ButtonSpec{Title: "Disabled", Direction: neopop.BottomRight(), State: "disabled"},
		ButtonSpec{Title: "Pressed", Direction: neopop.BottomRight(), Pressed: true},
		ButtonSpec{Title: "Floating", Floating: true, Color: "FFFFFF"},
	)
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	if c.Columns <= 0 {
		c.Columns = DefaultColumns
	}
	if c.CellWidth <= 0 {
		c.CellWidth = DefaultCellWidth
	}
	if c.CellHeight <= 0 {
		c.CellHeight = DefaultCellHeight
	}
	if c.Gap <= 0 {
		c.Gap = DefaultGap
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if len(c.Palette) == 0 {
		c.Palette = DefaultPalette
	}
}

// Load reads a showcase file. The format follows the extension: .toml,
// .yaml or .yml.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Decode(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses a showcase in the given format ("toml", "yaml" or "yml").
func Decode(data []byte, format string) (Config, error) {
	var cfg Config
	switch strings.ToLower(format) {
	case "toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode toml: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	for i, b := range cfg.Buttons {
		if _, err := ParseState(b.State); err != nil {
			return Config{}, fmt.Errorf("button %d: %w", i, err)
		}
	}
	cfg.setDefaults()
	return cfg, nil
}

// ParseState parses a state name as printed by State.String. The empty
// name is StateNormal.
func ParseState(name string) (neopop.State, error) {
	if name == "" {
		return neopop.StateNormal, nil
	}
	for s := neopop.StateNormal; s <= neopop.StateDisabledWithOpacity; s++ {
		if strings.EqualFold(s.String(), name) {
			return s, nil
		}
	}
	return neopop.StateUnknown, fmt.Errorf("%w: %q", ErrUnknownState, name)
}

// Grid is a built showcase.
type Grid struct {
	Width, Height float64
	Background    gg.RGBA
	Buttons       []*neopop.Button
	Floating      []*neopop.FloatingButton
	cfg           Config
}

// Cell returns the frame of grid cell i.
func (c Config) Cell(i int) neopop.Rect {
	col, row := i%c.Columns, i/c.Columns
	return neopop.R(
		c.Gap+float64(col)*(c.CellWidth+c.Gap),
		c.Gap+float64(row)*(c.CellHeight+c.Gap),
		c.CellWidth, c.CellHeight,
	)
}

// Size returns the size of a grid holding n cells.
func (c Config) Size(n int) (w, h float64) {
	cols := min(n, c.Columns)
	rows := (n + c.Columns - 1) / c.Columns
	return c.Gap + float64(cols)*(c.CellWidth+c.Gap), c.Gap + float64(rows)*(c.CellHeight+c.Gap)
}

// Build creates and configures every button of cfg. opts are passed to
// each button.
func Build(cfg Config, opts ...neopop.Option) (*Grid, error) {
	cfg.setDefaults()
	g := &Grid{Background: neopop.HexARGB(cfg.Background), cfg: cfg}
	if cfg.Background == "" {
		g.Background = gg.White
	}
	g.Width, g.Height = cfg.Size(len(cfg.Buttons))

	for i, spec := range cfg.Buttons {
		face := spec.Color
		if face == "" {
			face = cfg.Palette[neopop.Wrap(i, len(cfg.Palette))]
		}
		bg := neopop.HexARGB(face)
		content := neopop.NewContentModel(spec.Title)
		content.TitleColor = titleColor(spec.TitleColor, bg)
		if spec.Upper {
			content.Case = neopop.CaseUpper
		}
		frame := cfg.Cell(i)

		if spec.Floating {
			b := neopop.NewFloatingButton(opts...)
			b.SetFrame(frame)
			m := neopop.NewFloatingModel()
			m.Background = bg
			if spec.Border != "" {
				m.BorderColor = neopop.ColorRef(neopop.HexARGB(spec.Border))
				m.BorderWidth = spec.BorderSize
			}
			b.Configure(m)
			if err := b.ConfigureContent(content); err != nil {
				return nil, fmt.Errorf("button %d: %w", i, err)
			}
			if spec.Shimmer {
				b.StartShimmer(0, 0)
			}
			g.Floating = append(g.Floating, b)
			continue
		}

		state, err := ParseState(spec.State)
		if err != nil {
			return nil, fmt.Errorf("button %d: %w", i, err)
		}
		b := neopop.NewButton(opts...)
		b.SetFrame(frame)
		m := neopop.NewButtonModel(spec.Direction, bg)
		m.Position = spec.Position
		m.ShowStaticBaseEdges = spec.Static
		if spec.EdgeLength > 0 {
			m.EdgeLength = spec.EdgeLength
		}
		if spec.Border != "" {
			border := neopop.HexARGB(spec.Border)
			m.FaceBorderColors = neopop.AllEdges(border)
			m.BorderColors = neopop.AllBorders(neopop.AllEdges(border))
			m.BorderWidth = spec.BorderSize
			if m.BorderWidth <= 0 {
				m.BorderWidth = 1
			}
		}
		if spec.Shimmer {
			m.Shimmer = neopop.SingleShimmer(70, 20, gg.RGBA2(1, 1, 1, 0.4), 1500*time.Millisecond, time.Second)
		}
		b.Configure(m)
		if err := b.ConfigureContent(content); err != nil {
			return nil, fmt.Errorf("button %d: %w", i, err)
		}
		if spec.Pressed {
			b.SetHighlighted(true)
		}
		if state != neopop.StateNormal {
			b.ChangeState(state)
		}
		if spec.Shimmer {
			b.StartShimmer(0, 0)
		}
		g.Buttons = append(g.Buttons, b)
	}
	return g, nil
}

// titleColor returns the configured title color, or black or white
// depending on the face luminance.
func titleColor(hex string, face gg.RGBA) gg.RGBA {
	if hex != "" {
		return neopop.HexARGB(hex)
	}
	if neopop.Luminance(face) < 0.5 {
		return gg.White
	}
	return gg.Black
}

// DisplayList returns the display lists of every button in grid order.
func (g *Grid) DisplayList() neopop.DisplayList {
	var l neopop.DisplayList
	for _, b := range g.Buttons {
		l.Append(b.DisplayList())
	}
	for _, b := range g.Floating {
		l.Append(b.DisplayList())
	}
	return l
}

// Draw paints the grid onto a new context scaled by the configured scale.
func (g *Grid) Draw() (*gg.Context, error) {
	s := g.cfg.Scale
	dc := gg.NewContext(int(g.Width*s+0.5), int(g.Height*s+0.5))
	dc.ClearWithColor(g.Background)
	dc.Scale(s, s)
	l := g.DisplayList()
	if err := l.Draw(dc); err != nil {
		return nil, err
	}
	return dc, nil
}

// Close releases every button.
func (g *Grid) Close() {
	for _, b := range g.Buttons {
		b.Close()
	}
	for _, b := range g.Floating {
		b.Close()
	}
}
