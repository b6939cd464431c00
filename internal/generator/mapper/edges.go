package mapper

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"floorplan-sim/internal/generator/models"
)

// ============================================================
// Scene → door edges
// ============================================================

// ErrNoLayer is returned for scenes without layers.
var ErrNoLayer = errors.New("scene has no layers")

const defaultDoorWidth = 80.0 // в единицах сцены, как у react-planner

// unitScale переводит единицы сцены в метры. Неизвестная единица считается сантиметрами.
func unitScale(unit string) float64 {
	switch strings.ToLower(unit) {
	case "m":
		return 1
	case "mm":
		return 0.001
	case "in":
		return 0.0254
	case "ft":
		return 0.3048
	default:
		return 0.01
	}
}

// Edges извлекает дверные проемы выбранного слоя. Координаты переводятся
// в метры, ось Y разворачивается (SVG смотрит вниз, мир вверх).
func Edges(scene *models.Scene) ([]models.Edge, error) {
	if scene == nil {
		return nil, fmt.Errorf("scene is nil")
	}

	layer, err := pickLayer(scene)
	if err != nil {
		return nil, err
	}

	scale := unitScale(scene.Unit)
	var edges []models.Edge

	for _, hole := range layer.Holes {
		if hole.Type != "door" {
			continue
		}

		line, ok := layer.Lines[hole.Line]
		if !ok || len(line.Vertices) < 2 {
			continue
		}
		v1, ok1 := layer.Vertices[line.Vertices[0]]
		v2, ok2 := layer.Vertices[line.Vertices[1]]
		if !ok1 || !ok2 {
			continue
		}

		dx := v2.X - v1.X
		dy := v2.Y - v1.Y
		offset := clamp(hole.Offset, 0, 1)

		cx := v1.X + dx*offset
		cy := v1.Y + dy*offset

		name := hole.Name
		if name == "" {
			name = hole.ID
		}

		edges = append(edges, models.Edge{
			Name:   name,
			Length: lengthFromProperties(hole.Properties, "width", defaultDoorWidth) * scale,
			X:      cx * scale,
			Y:      -cy * scale,
			Yaw:    math.Atan2(-dy, dx),
			Kind:   stringFromProperties(hole.Properties, "door_type"),
		})
	}

	sort.Slice(edges, func(i, j int) bool { return edges[i].Name < edges[j].Name })
	return edges, nil
}

func pickLayer(scene *models.Scene) (models.Layer, error) {
	if len(scene.Layers) == 0 {
		return models.Layer{}, ErrNoLayer
	}

	if scene.SelectedLayer != "" {
		if layer, ok := scene.Layers[scene.SelectedLayer]; ok {
			return layer, nil
		}
	}

	var ids []string
	for id := range scene.Layers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return scene.Layers[ids[0]], nil
}

// ============================================================
// Helpers
// ============================================================

func clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func lengthFromProperties(props map[string]any, key string, def float64) float64 {
	if props == nil {
		return def
	}

	if raw, ok := props[key]; ok {
		switch v := raw.(type) {
		case float64:
			return v
		case map[string]any:
			if val, ok := v["length"]; ok {
				if f, ok := val.(float64); ok {
					return f
				}
			}
		}
	}
	return def
}

func stringFromProperties(props map[string]any, key string) string {
	if s, ok := props[key].(string); ok {
		return s
	}
	return ""
}
