package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"floorplan-sim/internal/generator/door"
	"floorplan-sim/internal/generator/mapper"
	"floorplan-sim/internal/generator/models"
	"floorplan-sim/internal/generator/repository"
	"floorplan-sim/internal/generator/sdf"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Door Handler
// ============================================================

// Store is the part of the archive the handlers need.
type Store interface {
	Save(ctx context.Context, name, kind string, sdf []byte) (*repository.Record, error)
	Get(ctx context.Context, id string) (*repository.Record, error)
	List(ctx context.Context) ([]repository.Record, error)
}

type DoorHandler struct {
	builder *mapper.Builder
	cfg     door.Config
	store   Store
	logger  *log.Logger
}

func NewDoorHandler(cfg door.Config, defaultKind door.Kind, store Store, logger *log.Logger) *DoorHandler {
	if logger == nil {
		logger = log.Default()
	}
	return &DoorHandler{
		builder: mapper.NewBuilder(cfg, defaultKind, logger),
		cfg:     cfg,
		store:   store,
		logger:  logger.WithPrefix("GENERATOR"),
	}
}

// Register вешает маршруты генератора на приложение.
func (h *DoorHandler) Register(app *fiber.App) {
	app.Post("/doors", h.CreateDoor)
	app.Get("/doors", h.ListDoors)
	app.Get("/doors/:id", h.GetDoor)
	app.Post("/scene/doors", h.ConvertScene)
}

type doorRequest struct {
	Edge     models.Edge      `json:"edge"`
	Kind     string           `json:"kind"`
	Sections []models.Section `json:"sections"`
}

// CreateDoor строит модель двери из JSON и сохраняет ее в архив.
// Если переданы sections, они добавляются как есть и kind игнорируется.
func (h *DoorHandler) CreateDoor(c fiber.Ctx) error {
	h.logger.Debug("create door", "content_length", len(c.Body()))

	if len(c.Body()) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "body required"})
	}

	var req doorRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		h.logger.Warn("decode error", "err", err)
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON payload"})
	}
	if req.Kind != "" {
		req.Edge.Kind = req.Kind
	}

	var (
		d    *door.Door
		kind string
		err  error
	)
	if len(req.Sections) > 0 {
		d = door.New(req.Edge, door.WithConfig(h.cfg), door.WithLogger(h.logger))
		for _, s := range req.Sections {
			d.AddSection(s)
		}
		kind = "custom"
	} else {
		d, err = h.builder.Door(req.Edge)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		kind = req.Edge.Kind
		if kind == "" {
			kind = string(door.KindSliding)
		}
	}

	out, err := sdf.Marshal(d.Model())
	if err != nil {
		h.logger.Error("marshal error", "door", d.Name, "err", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if h.store != nil {
		rec, err := h.store.Save(context.Background(), d.Name, kind, out)
		if err != nil {
			h.logger.Error("save error", "door", d.Name, "err", err)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save model"})
		}
		c.Set("X-Model-ID", rec.ID)
	}

	c.Set("Content-Type", "application/xml")
	return c.Status(http.StatusCreated).Send(out)
}

// GetDoor отдаёт сохраненную модель.
func (h *DoorHandler) GetDoor(c fiber.Ctx) error {
	if h.store == nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "archive disabled"})
	}

	rec, err := h.store.Get(context.Background(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "model not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set("Content-Type", "application/xml")
	c.Set("X-Model-ID", rec.ID)
	return c.SendString(rec.SDF)
}

// ListDoors отдаёт список сохраненных моделей без тела.
func (h *DoorHandler) ListDoors(c fiber.Ctx) error {
	if h.store == nil {
		return c.JSON([]repository.Record{})
	}

	records, err := h.store.List(context.Background())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(records)
}
