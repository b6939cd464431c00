package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"floorplan-sim/internal/generator/door"
	"floorplan-sim/internal/generator/mapper"
	"floorplan-sim/internal/generator/models"
	"floorplan-sim/internal/generator/sdf"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Scene Handler
// ============================================================

// ConvertScene конвертирует react-planner JSON в SDF мир с моделями дверей.
func (h *DoorHandler) ConvertScene(c fiber.Ctx) error {
	h.logger.Info("scene request", "content_length", len(c.Body()))

	if len(c.Body()) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "body required"})
	}

	var scene models.Scene
	if err := json.Unmarshal(c.Body(), &scene); err != nil {
		h.logger.Warn("decode error", "err", err)
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON payload"})
	}

	world, err := h.builder.Scene(&scene, c.Query("world", "building"))
	if err != nil {
		h.logger.Error("convert error", "err", err)
		status := http.StatusInternalServerError
		if errors.Is(err, mapper.ErrNoLayer) || errors.Is(err, door.ErrUnknownKind) {
			status = http.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	out, err := sdf.Marshal(world)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set("Content-Type", "application/xml")
	return c.Send(out)
}
