package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cagncvs/minimal-api/services/minimal-api/internal/domain"
)

type VehicleService interface {
	Insert(ctx context.Context, v *domain.Vehicle) error
	FindByID(ctx context.Context, id int) (*domain.Vehicle, error)
	ListAll(ctx context.Context, page int, name, brand string) ([]domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, v *domain.Vehicle) error
}

type VehicleHandler struct {
	svc    VehicleService
	logger *slog.Logger
}

func NewVehicleHandler(svc VehicleService, logger *slog.Logger) *VehicleHandler {
	registerValidators()
	return &VehicleHandler{svc: svc, logger: logger}
}

type vehicleDTO struct {
	Nome  string `json:"nome" binding:"required,notblank"`
	Marca string `json:"marca" binding:"required,notblank"`
	Ano   int    `json:"ano" binding:"gte=1950"`
}

func (h *VehicleHandler) Create(c *gin.Context) {
	var in vehicleDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		validationError(c, err)
		return
	}
	v := &domain.Vehicle{Name: in.Nome, Brand: in.Marca, Year: in.Ano}
	if err := h.svc.Insert(c.Request.Context(), v); err != nil {
		h.logger.Error("create vehicle failed", "error", err)
		internalError(c)
		return
	}
	c.Header("Location", "/veiculos/"+strconv.Itoa(v.ID))
	c.JSON(http.StatusCreated, v)
}

func (h *VehicleHandler) List(c *gin.Context) {
	list, err := h.svc.ListAll(c.Request.Context(), queryPage(c), c.Query("nome"), c.Query("marca"))
	if err != nil {
		h.logger.Error("list vehicles failed", "error", err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *VehicleHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	v, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("find vehicle failed", "vehicle_id", id, "error", err)
		internalError(c)
		return
	}
	if v == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *VehicleHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in vehicleDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		validationError(c, err)
		return
	}
	v := &domain.Vehicle{ID: id, Name: in.Nome, Brand: in.Marca, Year: in.Ano}
	err := h.svc.Update(c.Request.Context(), v)
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		return
	}
	if err != nil {
		h.logger.Error("update vehicle failed", "vehicle_id", id, "error", err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *VehicleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	v, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("find vehicle failed", "vehicle_id", id, "error", err)
		internalError(c)
		return
	}
	if v == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		return
	}
	if err := h.svc.Delete(c.Request.Context(), v); err != nil {
		h.logger.Error("delete vehicle failed", "vehicle_id", id, "error", err)
		internalError(c)
		return
	}
	c.Status(http.StatusNoContent)
}
