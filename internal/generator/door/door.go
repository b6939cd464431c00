// Package door строит описание модели двери (model → link → joint) для
// симулятора по одному дверному проему.
package door

import (
	"fmt"

	"floorplan-sim/internal/generator/models"
	"floorplan-sim/internal/generator/sdf"

	"github.com/charmbracelet/log"
)

// ============================================================
// Door Builder
// ============================================================

// Door holds one model tree under construction. It is not safe for
// concurrent use; build each door in its own goroutine instead.
type Door struct {
	Name   string
	Length float64
	X      float64
	Y      float64
	Yaw    float64

	cfg    Config
	logger *log.Logger
	model  *sdf.Element
}

// Option configures a Door at construction.
type Option func(*Door)

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(d *Door) { d.cfg = cfg }
}

// WithLogger sets the logger used for the construction notice.
func WithLogger(l *log.Logger) Option {
	return func(d *Door) {
		if l != nil {
			d.logger = l
		}
	}
}

// New создает <model> с позой "{x} {y} 0 0 0 {yaw}". Вход не проверяется.
func New(edge models.Edge, opts ...Option) *Door {
	d := &Door{
		Name:   edge.Name,
		Length: edge.Length,
		X:      edge.X,
		Y:      edge.Y,
		Yaw:    edge.Yaw,
		cfg:    DefaultConfig(),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.logger.Info("door", "name", d.Name)

	d.model = sdf.NewElement("model").Set("name", d.Name)
	d.model.SubElement("pose").SetText(sdf.Pose([6]string{
		sdf.FormatDecimal(d.X), sdf.FormatDecimal(d.Y), "0", "0", "0", sdf.FormatDecimal(d.Yaw),
	}))

	return d
}

// Model returns the tree built so far. The caller owns it once
// construction is finished.
func (d *Door) Model() *sdf.Element {
	return d.model
}

// Config returns the constants this door was built with.
func (d *Door) Config() Config {
	return d.cfg
}

// AddSlidingSection добавляет link с visual/collision и prismatic joint,
// привязанный к world. Уникальность имени и порядок границ не проверяются.
func (d *Door) AddSlidingSection(name string, width, xOffset float64, bounds models.Bounds) {
	link := d.model.SubElement("link").Set("name", name)
	link.SubElement("pose").SetText(sdf.Pose([6]string{
		sdf.FormatDecimal(xOffset), "0", sdf.FormatDecimal(d.cfg.Height/2 + d.cfg.GroundClear), "0", "0", "0",
	}))

	visual := link.SubElement("visual").Set("name", name)
	visual.Append(d.Material())
	visual.SubElement("geometry").Append(Box(width, d.cfg.Thickness, d.cfg.Height))

	collision := link.SubElement("collision").Set("name", name)
	collision.Append(d.CollideBitmask())
	collision.SubElement("geometry").Append(Box(width, d.cfg.Thickness, d.cfg.Height))

	// joint for this link
	joint := d.model.SubElement("joint").
		Set("name", name+"_joint").
		Set("type", "prismatic")
	joint.SubElement("parent").SetText("world")
	joint.SubElement("child").SetText(name)

	axis := joint.SubElement("axis").SetText("1 0 0")
	limit := axis.SubElement("limit")
	limit.SubElement("lower").SetText(sdf.FormatDecimal(bounds.Lower))
	limit.SubElement("upper").SetText(sdf.FormatDecimal(bounds.Upper))
}

// AddSection is AddSlidingSection for a prepared Section.
func (d *Door) AddSection(s models.Section) {
	d.AddSlidingSection(s.Name, s.Width, s.XOffset, s.Bounds)
}

// ============================================================
// Fragments
// ============================================================

// CollideBitmask returns <surface><contact><collide_bitmask>.
func (d *Door) CollideBitmask() *sdf.Element {
	return CollideBitmask(d.cfg.CollideBitmask)
}

// Material returns the door's appearance block.
func (d *Door) Material() *sdf.Element {
	return Material(d.cfg.Color)
}

// CollideBitmask builds a contact filter fragment for the given class.
func CollideBitmask(mask uint16) *sdf.Element {
	surface := sdf.NewElement("surface")
	contact := surface.SubElement("contact")
	contact.SubElement("collide_bitmask").SetText(fmt.Sprintf("0x%02x", mask))
	return surface
}

// Box builds <box><size>x y z</size></box>. Sizes print in shortest
// form: a width of 1.0 is written as "1", never "1.0".
func Box(x, y, z float64) *sdf.Element {
	box := sdf.NewElement("box")
	box.SubElement("size").SetText(sdf.Vector(x, y, z))
	return box
}

// Material builds a material with identical ambient and diffuse channels.
func Material(c Color) *sdf.Element {
	material := sdf.NewElement("material")
	// полупрозрачный цвет, чтобы дверь было видно
	material.SubElement("ambient").SetText(c.String())
	material.SubElement("diffuse").SetText(c.String())
	return material
}

func (c Color) String() string {
	return fmt.Sprintf("%d %d %d %s", c.R, c.G, c.B, sdf.FormatFloat(c.A))
}

// CollisionFilter is CollideBitmask with the default door class.
func CollisionFilter() *sdf.Element {
	return CollideBitmask(DefaultConfig().CollideBitmask)
}

// DefaultMaterial is Material with the default blue-green glass color.
func DefaultMaterial() *sdf.Element {
	return Material(DefaultConfig().Color)
}
