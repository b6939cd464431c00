package models

// ============================================================
// Door descriptors
// ============================================================

// Edge описывает дверной проем: центр, длину и поворот вокруг вертикали.
// Значения не валидируются и переносятся в модель как есть.
type Edge struct {
	Name   string  `json:"name" yaml:"name"`
	Length float64 `json:"length" yaml:"length"`
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Yaw    float64 `json:"yaw" yaml:"yaw"`
	Kind   string  `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// Bounds is the travel range of a prismatic joint along local X.
type Bounds struct {
	Lower float64 `json:"lower" yaml:"lower"`
	Upper float64 `json:"upper" yaml:"upper"`
}

// Section is one movable leaf of a sliding door.
type Section struct {
	Name    string  `json:"name" yaml:"name"`
	Width   float64 `json:"width" yaml:"width"`
	XOffset float64 `json:"x_offset" yaml:"x_offset"`
	Bounds  Bounds  `json:"bounds" yaml:"bounds"`
}

// ============================================================
// Geometry primitives
// ============================================================

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ============================================================
// React Planner core structures
// ============================================================

type Vertex struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Type  string   `json:"type"`
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	Lines []string `json:"lines"`
}

type Line struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Vertices   []string       `json:"vertices"`
	Holes      []string       `json:"holes"`
	Properties map[string]any `json:"properties"`
}

type Hole struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Offset     float64        `json:"offset"`
	Line       string         `json:"line"`
	Properties map[string]any `json:"properties"`
}

type Layer struct {
	ID       string            `json:"id"`
	Altitude float64           `json:"altitude"`
	Name     string            `json:"name"`
	Vertices map[string]Vertex `json:"vertices"`
	Lines    map[string]Line   `json:"lines"`
	Holes    map[string]Hole   `json:"holes"`
}

type Scene struct {
	Unit          string           `json:"unit"`
	Layers        map[string]Layer `json:"layers"`
	SelectedLayer string           `json:"selectedLayer"`
	Width         float64          `json:"width"`
	Height        float64          `json:"height"`
}
