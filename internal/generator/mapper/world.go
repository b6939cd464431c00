package mapper

import (
	"fmt"

	"floorplan-sim/internal/generator/door"
	"floorplan-sim/internal/generator/models"
	"floorplan-sim/internal/generator/sdf"

	"github.com/charmbracelet/log"
)

// ============================================================
// World assembly
// ============================================================

// Builder генерирует модели дверей для набора проемов.
type Builder struct {
	cfg         door.Config
	defaultKind door.Kind
	logger      *log.Logger
}

func NewBuilder(cfg door.Config, defaultKind door.Kind, logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.Default()
	}
	if defaultKind == "" {
		defaultKind = door.KindSliding
	}
	return &Builder{cfg: cfg, defaultKind: defaultKind, logger: logger}
}

// Door строит одну дверь; Edge.Kind имеет приоритет над типом по умолчанию.
func (b *Builder) Door(edge models.Edge) (*door.Door, error) {
	kind := b.defaultKind
	if edge.Kind != "" {
		k, err := door.ParseKind(edge.Kind)
		if err != nil {
			return nil, fmt.Errorf("door %s: %w", edge.Name, err)
		}
		kind = k
	}
	return door.Generate(edge, kind, door.WithConfig(b.cfg), door.WithLogger(b.logger))
}

// Doors builds every edge in order and stops at the first failure.
func (b *Builder) Doors(edges []models.Edge) ([]*door.Door, error) {
	doors := make([]*door.Door, 0, len(edges))
	for _, edge := range edges {
		d, err := b.Door(edge)
		if err != nil {
			return nil, err
		}
		doors = append(doors, d)
	}
	return doors, nil
}

// Scene converts all door holes of a react-planner scene into a world document.
func (b *Builder) Scene(scene *models.Scene, worldName string) (*sdf.Element, error) {
	edges, err := Edges(scene)
	if err != nil {
		return nil, fmt.Errorf("extract edges: %w", err)
	}

	doors, err := b.Doors(edges)
	if err != nil {
		return nil, err
	}

	b.logger.Info("scene converted", "world", worldName, "doors", len(doors))
	return World(worldName, doors), nil
}

// World wraps door models into <sdf><world name="...">.
func World(name string, doors []*door.Door) *sdf.Element {
	if name == "" {
		name = "building"
	}

	root := sdf.NewDocument(sdf.DefaultVersion)
	world := root.SubElement("world").Set("name", name)
	for _, d := range doors {
		world.Append(d.Model())
	}
	return root
}
