package door

import (
	"errors"
	"fmt"
	"strings"

	"floorplan-sim/internal/generator/models"
)

// ============================================================
// Door kinds
// ============================================================

type Kind string

const (
	KindSliding       Kind = "sliding"
	KindDoubleSliding Kind = "double_sliding"
)

var ErrUnknownKind = errors.New("unknown door kind")

// ParseKind принимает "sliding" и "double_sliding" (регистр не важен).
// Пустая строка дает KindSliding.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case "", KindSliding:
		return KindSliding, nil
	case KindDoubleSliding:
		return KindDoubleSliding, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Sections раскладывает проем длиной length на створки.
//
// sliding: одна створка во всю длину, уезжает на -length.
// double_sliding: две половины, каждая уезжает в свою сторону.
func Sections(name string, length float64, kind Kind) ([]models.Section, error) {
	switch kind {
	case KindSliding:
		return []models.Section{{
			Name:    name + "_right",
			Width:   length,
			XOffset: 0,
			Bounds:  models.Bounds{Lower: -length, Upper: 0},
		}}, nil
	case KindDoubleSliding:
		half := length / 2
		return []models.Section{
			{
				Name:    name + "_right",
				Width:   half,
				XOffset: length / 4,
				Bounds:  models.Bounds{Lower: 0, Upper: half},
			},
			{
				Name:    name + "_left",
				Width:   half,
				XOffset: -length / 4,
				Bounds:  models.Bounds{Lower: -half, Upper: 0},
			},
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// Generate builds a complete door of the given kind from one edge.
func Generate(edge models.Edge, kind Kind, opts ...Option) (*Door, error) {
	sections, err := Sections(edge.Name, edge.Length, kind)
	if err != nil {
		return nil, err
	}

	d := New(edge, opts...)
	for _, s := range sections {
		d.AddSection(s)
	}
	return d, nil
}
