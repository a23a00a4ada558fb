package handler

import (
	"fmt"
	"strconv"
	"time"

	"go-inventario-services/internal/apperr"
	"go-inventario-services/internal/model"
	"go-inventario-services/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TransaccionHandler struct {
	service service.TransaccionService
}

func NewTransaccionHandler(s service.TransaccionService) *TransaccionHandler {
	return &TransaccionHandler{service: s}
}

func (h *TransaccionHandler) RegisterRoutes(api fiber.Router) {
	transacciones := api.Group("/transacciones")
	transacciones.Get("/resumen", h.Resumen)
	transacciones.Get("/", h.List)
	transacciones.Get("/:id", h.Get)
	transacciones.Post("/", h.Create)
	transacciones.Put("/:id", h.Update)
	transacciones.Delete("/:id", h.Delete)
}

func parseFecha(valor string) (*time.Time, error) {
	if valor == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, valor); err == nil {
			return &t, nil
		}
	}
	return nil, apperr.Validation("Fecha inválida")
}

func (h *TransaccionHandler) List(c *fiber.Ctx) error {
	var filtro model.FiltroTransacciones

	fecha, err := parseFecha(c.Query("fecha"))
	if err != nil {
		return responderError(c, err)
	}
	filtro.Fecha = fecha
	filtro.Tipo = c.Query("tipo")
	if v := c.Query("productoId"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			productoID := uint(id)
			filtro.ProductoID = &productoID
		}
	}

	page, pageSize := parsePagination(c)
	transacciones, total, err := h.service.List(filtro, page, pageSize)
	if err != nil {
		return responderError(c, err)
	}
	if transacciones == nil {
		transacciones = []model.Transaccion{}
	}
	return paginado(c, transacciones, page, pageSize, total)
}

func (h *TransaccionHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return responderError(c, err)
	}
	transaccion, err := h.service.Get(id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(transaccion)
}

func (h *TransaccionHandler) Create(c *fiber.Ctx) error {
	var transaccion model.Transaccion
	if err := c.BodyParser(&transaccion); err != nil {
		return responderError(c, apperr.Validation("Cuerpo de la petición inválido"))
	}

	if err := h.service.Create(c.UserContext(), &transaccion); err != nil {
		return responderError(c, err)
	}

	c.Set("Location", fmt.Sprintf("/api/transacciones/%d", transaccion.ID))
	return c.Status(fiber.StatusCreated).JSON(transaccion)
}

func (h *TransaccionHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return responderError(c, err)
	}

	var transaccion model.Transaccion
	if err := c.BodyParser(&transaccion); err != nil {
		return responderError(c, apperr.Validation("Cuerpo de la petición inválido"))
	}
	if transaccion.ID != id {
		return responderError(c, apperr.Validation("El ID no coincide"))
	}

	if err := h.service.Update(c.UserContext(), id, &transaccion); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *TransaccionHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return responderError(c, err)
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *TransaccionHandler) Resumen(c *fiber.Ctx) error {
	fechaInicio, err := parseFecha(c.Query("fechaInicio"))
	if err != nil {
		return responderError(c, err)
	}
	fechaFin, err := parseFecha(c.Query("fechaFin"))
	if err != nil {
		return responderError(c, err)
	}

	resumen, err := h.service.Resumen(fechaInicio, fechaFin)
	if err != nil {
		return responderError(c, err)
	}
	if resumen == nil {
		resumen = []model.ResumenTransacciones{}
	}
	return c.JSON(resumen)
}
