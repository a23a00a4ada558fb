package handler

import (
	"errors"
	"math"
	"strconv"

	"go-inventario-services/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// listResponse es el sobre de todos los listados paginados.
type listResponse struct {
	Data       interface{} `json:"data"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	Total      int64       `json:"total"`
	TotalPages int         `json:"totalPages"`
}

func paginado(c *fiber.Ctx, data interface{}, page, pageSize int, total int64) error {
	return c.JSON(listResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	})
}

func parsePagination(c *fiber.Ctx) (page, pageSize int) {
	page, pageSize = 1, 10
	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		page = p
	}
	if ps, err := strconv.Atoi(c.Query("pageSize")); err == nil && ps > 0 {
		pageSize = ps
	}
	return page, pageSize
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, apperr.Validation("Id inválido")
	}
	return uint(id), nil
}

// responderError traduce la taxonomía de apperr al contrato HTTP: los 4xx
// llevan el mensaje en texto plano para que la UI lo muestre tal cual, el 500
// es siempre genérico y la causa solo se registra.
func responderError(c *fiber.Ctx, err error) error {
	var ve *apperr.ValidationError
	var ce *apperr.ConflictError
	var nf *apperr.NotFoundError

	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).SendString(ve.Msg)
	case errors.As(err, &ce):
		return c.Status(fiber.StatusBadRequest).SendString(ce.Msg)
	case errors.As(err, &nf):
		return c.Status(fiber.StatusNotFound).SendString(nf.Msg)
	default:
		zap.S().Errorw("unhandled error", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Error interno del servidor")
	}
}
