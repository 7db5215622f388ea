package parabox

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Level describes a world, its themes and its actor. Levels are stored as
// YAML.
type Level struct {
	Version int                 `yaml:"version"`
	Grid    int                 `yaml:"grid"`
	Root    string              `yaml:"root"`
	Boxes   []LevelBox          `yaml:"boxes"`
	Themes  map[int]LevelSwatch `yaml:"themes"`
	Actor   LevelActor          `yaml:"actor"`
}

// LevelBox is one box of a level. Children refer to other boxes by ID.
type LevelBox struct {
	ID       string       `yaml:"id"`
	Kind     int          `yaml:"kind"`
	Children []LevelChild `yaml:"children"`
}

// LevelChild binds box Box at Cell ([col, row]) of its parent.
type LevelChild struct {
	Cell [2]int `yaml:"cell"`
	Box  string `yaml:"box"`
}

// LevelSwatch is a palette entry.
type LevelSwatch struct {
	Hue int `yaml:"hue"`
	Lum int `yaml:"lum"`
}

// LevelActor overrides DefaultActorConfig. Zero fields keep the default.
type LevelActor struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	CellSize float64 `yaml:"cell_size"`
	Step     float64 `yaml:"step"`
	Start    [2]int  `yaml:"start"`
}

// DefaultLevel is a red box holding a blue box in its last face slot, with
// Mila on an 8x8 grid.
func DefaultLevel() *Level {
	return &Level{
		Version: 1,
		Grid:    FaceGrid.Extent,
		Root:    "world",
		Boxes: []LevelBox{
			{ID: "world", Kind: int(KindRed), Children: []LevelChild{{Cell: [2]int{3, 3}, Box: "inner"}}},
			{ID: "inner", Kind: int(KindBlue)},
		},
	}
}

// LoadLevel reads and validates a level file.
func LoadLevel(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading level: %w", err)
	}
	lvl, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("loading level %s: %w", path, err)
	}
	return lvl, nil
}

// ParseLevel decodes and validates YAML level data.
func ParseLevel(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Validate checks the structure of the level. Containment and address
// errors are reported by Build.
func (l *Level) Validate() error {
	if l.Version != 1 {
		return fmt.Errorf("unsupported level version: %d", l.Version)
	}
	if strings.TrimSpace(l.Root) == "" {
		return fmt.Errorf("root box is required")
	}
	if len(l.Boxes) == 0 {
		return fmt.Errorf("at least one box is required")
	}
	seen := make(map[string]struct{}, len(l.Boxes))
	for i, b := range l.Boxes {
		if strings.TrimSpace(b.ID) == "" {
			return fmt.Errorf("box %d id is required", i)
		}
		if _, dup := seen[b.ID]; dup {
			return fmt.Errorf("duplicate box id: %s", b.ID)
		}
		if b.Kind <= 0 || b.Kind > 255 {
			return fmt.Errorf("box %s kind %d out of range", b.ID, b.Kind)
		}
		seen[b.ID] = struct{}{}
	}
	for k := range l.Themes {
		if k <= 0 || k > 255 {
			return fmt.Errorf("theme kind %d out of range", k)
		}
	}
	if _, ok := seen[l.Root]; !ok {
		return fmt.Errorf("root box %s not defined", l.Root)
	}
	for _, b := range l.Boxes {
		for _, c := range b.Children {
			if _, ok := seen[c.Box]; !ok {
				return fmt.Errorf("box %s: child %s not defined", b.ID, c.Box)
			}
		}
	}
	return nil
}

// ThemeTable returns the level's themes, or DefaultThemes when it has none.
func (l *Level) ThemeTable() ThemeTable {
	if len(l.Themes) == 0 {
		return DefaultThemes
	}
	t := make(ThemeTable, len(l.Themes))
	for k, s := range l.Themes {
		t[Kind(k)] = Swatch{Hue: s.Hue, Lum: s.Lum}
	}
	return t
}

// ActorConfig returns DefaultActorConfig with the level's overrides applied.
func (l *Level) ActorConfig() ActorConfig {
	cfg := DefaultActorConfig()
	if l.Actor.Width > 0 {
		cfg.Width = l.Actor.Width
	}
	if l.Actor.Height > 0 {
		cfg.Height = l.Actor.Height
	}
	if l.Actor.CellSize > 0 {
		cfg.CellSize = l.Actor.CellSize
	}
	if l.Actor.Step > 0 {
		cfg.StepDuration = l.Actor.Step
	}
	cfg.Start = Cell{Col: l.Actor.Start[0], Row: l.Actor.Start[1]}
	return cfg
}

// BuildWorld creates the level's boxes and bindings.
func (l *Level) BuildWorld() (*World, Box, error) {
	extent := l.Grid
	if extent == 0 {
		extent = FaceGrid.Extent
	}
	grid, err := NewGrid(extent)
	if err != nil {
		return nil, NoBox, fmt.Errorf("build level: %w", err)
	}
	w := NewWorld(grid)
	ids := make(map[string]Box, len(l.Boxes))
	for _, b := range l.Boxes {
		ids[b.ID] = w.Create(Kind(b.Kind))
	}
	for _, b := range l.Boxes {
		for _, c := range b.Children {
			index, err := grid.Encode(Cell{Col: c.Cell[0], Row: c.Cell[1]})
			if err != nil {
				return nil, NoBox, fmt.Errorf("build level: box %s child %s: %w", b.ID, c.Box, err)
			}
			if err := w.Add(ids[b.ID], index, ids[c.Box]); err != nil {
				return nil, NoBox, fmt.Errorf("build level: box %s child %s: %w", b.ID, c.Box, err)
			}
		}
	}
	root := ids[l.Root]
	if _, _, ok := w.Parent(root); ok {
		return nil, NoBox, fmt.Errorf("build level: root %s is a child of another box: %w", l.Root, ErrCyclicContainment)
	}
	return w, root, nil
}

// Build creates a ready-to-run Game from the level.
func (l *Level) Build() (*Game, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("build level: %w", err)
	}
	w, root, err := l.BuildWorld()
	if err != nil {
		return nil, err
	}
	return NewGame(w, root, l.ThemeTable(), l.ActorConfig())
}
