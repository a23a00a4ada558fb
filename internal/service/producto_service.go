package service

import (
	"errors"
	"strings"

	"go-inventario-services/internal/apperr"
	"go-inventario-services/internal/model"
	"go-inventario-services/internal/repository"
	"go-inventario-services/internal/ws"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProductoService interface {
	List(filtro model.FiltroProductos, page, pageSize int) ([]model.Producto, int64, error)
	Get(id uint) (*model.Producto, error)
	Create(p *model.Producto) error
	Update(id uint, p *model.Producto) error
	Delete(id uint) error
	PatchStock(id uint, nuevoStock int) error
	Categorias() ([]string, error)
	Estadisticas() (*model.EstadisticasInventario, error)
}

type productoService struct {
	repo repository.ProductoRepository
	hub  *ws.Hub
	log  *zap.SugaredLogger
}

func NewProductoService(repo repository.ProductoRepository, hub *ws.Hub, log *zap.Logger) ProductoService {
	return &productoService{repo: repo, hub: hub, log: log.Sugar()}
}

func (s *productoService) List(filtro model.FiltroProductos, page, pageSize int) ([]model.Producto, int64, error) {
	return s.repo.List(filtro, page, pageSize)
}

func (s *productoService) Get(id uint) (*model.Producto, error) {
	producto, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Producto no encontrado")
		}
		return nil, err
	}
	return producto, nil
}

func validarProducto(p *model.Producto) error {
	if strings.TrimSpace(p.Nombre) == "" {
		return apperr.Validation("El nombre del producto es requerido")
	}
	if p.Precio <= 0 {
		return apperr.Validation("El precio debe ser mayor a cero")
	}
	if p.Stock < 0 {
		return apperr.Validation("El stock no puede ser negativo")
	}
	return nil
}

func (s *productoService) Create(p *model.Producto) error {
	if err := validarProducto(p); err != nil {
		return err
	}

	// unicidad de nombre sin distinguir mayúsculas
	if existente, err := s.repo.FindByNombre(p.Nombre, 0); err == nil && existente != nil {
		return apperr.Conflict("Ya existe un producto con ese nombre")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := s.repo.Create(p); err != nil {
		return err
	}

	s.publicar(ws.EventoStock{Evento: "producto_creado", ProductoID: p.ID, Nombre: p.Nombre, Stock: p.Stock})
	return nil
}

func (s *productoService) Update(id uint, p *model.Producto) error {
	existente, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Producto no encontrado")
		}
		return err
	}

	if err := validarProducto(p); err != nil {
		return err
	}

	if otro, err := s.repo.FindByNombre(p.Nombre, id); err == nil && otro != nil {
		return apperr.Conflict("Ya existe otro producto con ese nombre")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	// reemplazo completo de los campos mutables
	existente.Nombre = p.Nombre
	existente.Descripcion = p.Descripcion
	existente.Categoria = p.Categoria
	existente.Imagen = p.Imagen
	existente.Precio = p.Precio
	existente.Stock = p.Stock

	if err := s.repo.Update(existente); err != nil {
		return err
	}

	s.publicar(ws.EventoStock{Evento: "producto_actualizado", ProductoID: id, Nombre: existente.Nombre, Stock: existente.Stock})
	return nil
}

func (s *productoService) Delete(id uint) error {
	existente, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Producto no encontrado")
		}
		return err
	}

	// sin comprobación referencial contra transacciones: el borrado es
	// incondicional aunque existan movimientos que apunten aquí
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.log.Infow("producto eliminado", "id", id, "nombre", existente.Nombre)

	s.publicar(ws.EventoStock{Evento: "producto_eliminado", ProductoID: id, Nombre: existente.Nombre})
	return nil
}

// PatchStock fija el stock a un valor absoluto. El valor negativo se rechaza
// antes de consultar la existencia del producto.
func (s *productoService) PatchStock(id uint, nuevoStock int) error {
	if nuevoStock < 0 {
		return apperr.Validation("El stock no puede ser negativo")
	}

	producto, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Producto no encontrado")
		}
		return err
	}

	if err := s.repo.UpdateStock(id, nuevoStock); err != nil {
		return err
	}

	s.publicar(ws.EventoStock{Evento: "stock_ajustado", ProductoID: id, Nombre: producto.Nombre, Stock: nuevoStock})
	return nil
}

func (s *productoService) Categorias() ([]string, error) {
	return s.repo.Categorias()
}

func (s *productoService) Estadisticas() (*model.EstadisticasInventario, error) {
	return s.repo.Estadisticas()
}

func (s *productoService) publicar(evento ws.EventoStock) {
	if s.hub != nil {
		s.hub.Publicar(evento)
	}
}
