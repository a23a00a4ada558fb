package handler

import (
	"fmt"
	"strconv"
	"strings"

	"go-inventario-services/internal/apperr"
	"go-inventario-services/internal/model"
	"go-inventario-services/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductoHandler struct {
	service service.ProductoService
}

func NewProductoHandler(s service.ProductoService) *ProductoHandler {
	return &ProductoHandler{service: s}
}

func (h *ProductoHandler) RegisterRoutes(api fiber.Router) {
	productos := api.Group("/productos")
	// las rutas fijas van antes que /:id para que no las capture el parámetro
	productos.Get("/categorias", h.Categorias)
	productos.Get("/estadisticas", h.Estadisticas)
	productos.Get("/", h.List)
	productos.Get("/:id", h.Get)
	productos.Post("/", h.Create)
	productos.Put("/:id", h.Update)
	productos.Delete("/:id", h.Delete)
	productos.Patch("/:id/stock", h.PatchStock)
}

func (h *ProductoHandler) List(c *fiber.Ctx) error {
	filtro := model.FiltroProductos{
		Nombre:    c.Query("nombre"),
		Categoria: c.Query("categoria"),
	}
	if v := c.Query("precioMin"); v != "" {
		if precio, err := strconv.ParseFloat(v, 64); err == nil {
			filtro.PrecioMin = &precio
		}
	}
	if v := c.Query("precioMax"); v != "" {
		if precio, err := strconv.ParseFloat(v, 64); err == nil {
			filtro.PrecioMax = &precio
		}
	}
	filtro.StockBajo = c.QueryBool("stockBajo")

	page, pageSize := parsePagination(c)
	productos, total, err := h.service.List(filtro, page, pageSize)
	if err != nil {
		return responderError(c, err)
	}
	if productos == nil {
		productos = []model.Producto{}
	}
	return paginado(c, productos, page, pageSize, total)
}

func (h *ProductoHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return responderError(c, err)
	}
	producto, err := h.service.Get(id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(producto)
}

func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var producto model.Producto
	if err := c.BodyParser(&producto); err != nil {
		return responderError(c, apperr.Validation("Cuerpo de la petición inválido"))
	}

	if err := h.service.Create(&producto); err != nil {
		return responderError(c, err)
	}

	c.Set("Location", fmt.Sprintf("/api/productos/%d", producto.ID))
	return c.Status(fiber.StatusCreated).JSON(producto)
}

func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return responderError(c, err)
	}

	var producto model.Producto
	if err := c.BodyParser(&producto); err != nil {
		return responderError(c, apperr.Validation("Cuerpo de la petición inválido"))
	}
	if producto.ID != id {
		return responderError(c, apperr.Validation("El ID no coincide"))
	}

	if err := h.service.Update(id, &producto); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return responderError(c, err)
	}
	if err := h.service.Delete(id); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PatchStock recibe el entero JSON a secas en el cuerpo, p.ej. `7`.
func (h *ProductoHandler) PatchStock(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return responderError(c, err)
	}

	nuevoStock, err := strconv.Atoi(strings.TrimSpace(string(c.Body())))
	if err != nil {
		return responderError(c, apperr.Validation("Cuerpo de la petición inválido"))
	}

	if err := h.service.PatchStock(id, nuevoStock); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProductoHandler) Categorias(c *fiber.Ctx) error {
	categorias, err := h.service.Categorias()
	if err != nil {
		return responderError(c, err)
	}
	if categorias == nil {
		categorias = []string{}
	}
	return c.JSON(categorias)
}

func (h *ProductoHandler) Estadisticas(c *fiber.Ctx) error {
	stats, err := h.service.Estadisticas()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(stats)
}
