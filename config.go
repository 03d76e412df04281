package conflict

import (
	"fmt"
	"io"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// MixedShapeStrategy decides how a circle is tested against a polygon.
type MixedShapeStrategy int

const (
	// MixedShapesPolygon approximates the circle with a polygon.
	MixedShapesPolygon MixedShapeStrategy = iota
	// MixedShapesCircle encloses the polygon in a circle.
	MixedShapesCircle
)

func (s MixedShapeStrategy) String() string {
	switch s {
	case MixedShapesPolygon:
		return "polygon"
	case MixedShapesCircle:
		return "circle"
	}
	return fmt.Sprintf("MixedShapeStrategy(%d)", int(s))
}

func (s *MixedShapeStrategy) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	switch name {
	case "", "polygon":
		*s = MixedShapesPolygon
	case "circle":
		*s = MixedShapesCircle
	default:
		return fmt.Errorf("line %d: unknown mixed shape strategy %q: %w", node.Line, name, ErrInvalidConfig)
	}
	return nil
}

func (s MixedShapeStrategy) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// Config tunes how a CollisionHandler checks shapes.
type Config struct {
	MixedShapes MixedShapeStrategy `yaml:"mixed_shapes"`
	// CircleMinVertices and CircleMaxEdgeLength control how circles are turned into
	// polygons. Zero disables a limit.
	CircleMinVertices   int     `yaml:"circle_min_vertices"`
	CircleMaxEdgeLength float64 `yaml:"circle_max_edge_length"`
	// BoundingBoxFirst overrides the bounding box check default of every collision
	// information that didn't choose for itself. Nil keeps the per-shape-count default.
	BoundingBoxFirst *bool `yaml:"bounding_box_first"`
	// Workers is how many goroutines transform shapes at the start of a tick.
	Workers int `yaml:"workers"`
	// CellSize is the cell dimension of the spatial hash passive collidables are
	// bucketed into each tick. Zero checks every listener against every collidable.
	CellSize float64 `yaml:"cell_size"`
}

func DefaultConfig() Config {
	return Config{
		MixedShapes:       MixedShapesPolygon,
		CircleMinVertices: 8,
		Workers:           1,
	}
}

// LoadConfig reads a YAML config. Fields missing from r keep their DefaultConfig values.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem with the config at once.
func (c Config) Validate() error {
	var err error
	if c.MixedShapes != MixedShapesPolygon && c.MixedShapes != MixedShapesCircle {
		err = multierr.Append(err, fmt.Errorf("mixed_shapes: unknown strategy %d: %w", int(c.MixedShapes), ErrInvalidConfig))
	}
	if c.CircleMinVertices < 0 {
		err = multierr.Append(err, fmt.Errorf("circle_min_vertices must not be negative, got %d: %w", c.CircleMinVertices, ErrInvalidConfig))
	}
	if c.CircleMaxEdgeLength < 0 || !finite(c.CircleMaxEdgeLength) {
		err = multierr.Append(err, fmt.Errorf("circle_max_edge_length must be a non-negative number, got %v: %w", c.CircleMaxEdgeLength, ErrInvalidConfig))
	}
	if c.Workers < 1 {
		err = multierr.Append(err, fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, ErrInvalidConfig))
	}
	if c.CellSize < 0 || !finite(c.CellSize) {
		err = multierr.Append(err, fmt.Errorf("cell_size must be a non-negative number, got %v: %w", c.CellSize, ErrInvalidConfig))
	}
	return err
}
