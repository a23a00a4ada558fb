package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-inventario-services/internal/apperr"
	"go-inventario-services/internal/model"
	"go-inventario-services/internal/repository"
	"go-inventario-services/internal/stockclient"
	"go-inventario-services/pkg/validator"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TransaccionService coordina el registro de movimientos con el ajuste de
// stock en el servicio de productos. La coordinación es deliberadamente de
// mejor esfuerzo: la escritura local manda, y un fallo al empujar el stock
// tras persistir se registra y se tolera (ver los avisos "stock push").
type TransaccionService interface {
	List(filtro model.FiltroTransacciones, page, pageSize int) ([]model.Transaccion, int64, error)
	Get(id uint) (*model.Transaccion, error)
	Create(ctx context.Context, t *model.Transaccion) error
	Update(ctx context.Context, id uint, t *model.Transaccion) error
	Delete(ctx context.Context, id uint) error
	Resumen(fechaInicio, fechaFin *time.Time) ([]model.ResumenTransacciones, error)
}

type transaccionService struct {
	repo      repository.TransaccionRepository
	productos stockclient.Client
	log       *zap.SugaredLogger
}

func NewTransaccionService(repo repository.TransaccionRepository, productos stockclient.Client, log *zap.Logger) TransaccionService {
	return &transaccionService{repo: repo, productos: productos, log: log.Sugar()}
}

func (s *transaccionService) List(filtro model.FiltroTransacciones, page, pageSize int) ([]model.Transaccion, int64, error) {
	return s.repo.List(filtro, page, pageSize)
}

func (s *transaccionService) Get(id uint) (*model.Transaccion, error) {
	transaccion, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Transacción no encontrada")
		}
		return nil, err
	}
	return transaccion, nil
}

func validarTransaccion(t *model.Transaccion) error {
	if t.Tipo == "" || strings.TrimSpace(t.Detalle) == "" {
		return apperr.Validation("Tipo y Detalle son campos requeridos")
	}
	if t.Cantidad <= 0 || t.PrecioUnitario <= 0 {
		return apperr.Validation("Cantidad y precio unitario deben ser mayores a cero")
	}
	for _, e := range validator.ValidateStruct(t) {
		if strings.HasSuffix(e.FailedField, ".Tipo") {
			return apperr.Validation("Tipo debe ser Compra o Venta")
		}
		// ProductoID en cero cae aquí; se resuelve más adelante contra el
		// servicio de productos, que no lo encontrará
	}
	return nil
}

// Create implementa el camino de alta: valida, comprueba el producto remoto y
// el stock disponible (fail-fast, nada mutado aún), persiste la transacción
// (punto de durabilidad) y por último empuja el stock nuevo (fail-open).
func (s *transaccionService) Create(ctx context.Context, t *model.Transaccion) error {
	if err := validarTransaccion(t); err != nil {
		return err
	}

	producto, err := s.productos.GetProducto(ctx, t.ProductoID)
	if err != nil {
		s.log.Infow("producto remoto no disponible al crear", "productoId", t.ProductoID, "error", err)
		return apperr.Validation("Producto no encontrado")
	}

	if t.Tipo == model.TipoVenta && producto.Stock < t.Cantidad {
		return apperr.Validation("Stock insuficiente. Stock disponible: %d", producto.Stock)
	}

	// el total siempre se recalcula en el servidor
	t.PrecioTotal = float64(t.Cantidad) * t.PrecioUnitario
	if t.Fecha.IsZero() {
		t.Fecha = time.Now()
	}

	if err := s.repo.Create(t); err != nil {
		return err
	}

	nuevoStock := producto.Stock + model.EfectoStock(t.Tipo, t.Cantidad)
	if err := s.productos.PatchStock(ctx, t.ProductoID, nuevoStock); err != nil {
		// la transacción ya es firme; el stock queda desfasado hasta una
		// reconciliación externa
		s.log.Warnw("stock push failed after create",
			"transaccionId", t.ID,
			"productoId", t.ProductoID,
			"stockIntentado", nuevoStock,
			"error", err,
		)
	}
	return nil
}

// Update revierte el efecto de la transacción almacenada y aplica el del
// nuevo contenido sobre el stock del producto *original*, aunque la edición
// cambie de producto; el parche final sí va al producto nuevo. Esa asimetría
// viene del sistema original y se conserva a propósito (ver DESIGN.md).
func (s *transaccionService) Update(ctx context.Context, id uint, t *model.Transaccion) error {
	existente, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Transacción no encontrada")
		}
		return err
	}

	if err := validarTransaccion(t); err != nil {
		return err
	}

	reconciliar := true
	nuevoStock := 0

	producto, err := s.productos.GetProducto(ctx, existente.ProductoID)
	if err != nil {
		// sin lectura de stock no hay reconciliación: se persiste la edición
		// igualmente, inconsistencia asumida
		s.log.Warnw("stock fetch failed on update, skipping reconciliation",
			"transaccionId", id,
			"productoId", existente.ProductoID,
			"error", err,
		)
		reconciliar = false
	} else {
		revertido := producto.Stock - model.EfectoStock(existente.Tipo, existente.Cantidad)
		nuevoStock = revertido + model.EfectoStock(t.Tipo, t.Cantidad)
		if nuevoStock < 0 {
			return apperr.Validation("La modificación resultaría en stock negativo")
		}
	}

	existente.Tipo = t.Tipo
	existente.ProductoID = t.ProductoID
	existente.Cantidad = t.Cantidad
	existente.PrecioUnitario = t.PrecioUnitario
	existente.PrecioTotal = float64(t.Cantidad) * t.PrecioUnitario
	existente.Detalle = t.Detalle

	if err := s.repo.Update(existente); err != nil {
		return err
	}

	if reconciliar {
		if err := s.productos.PatchStock(ctx, existente.ProductoID, nuevoStock); err != nil {
			s.log.Warnw("stock push failed after update",
				"transaccionId", id,
				"productoId", existente.ProductoID,
				"stockIntentado", nuevoStock,
				"error", err,
			)
		}
	}
	return nil
}

// Delete revierte el efecto del movimiento antes de borrarlo. Aquí no hay
// guarda de negativo: si el valor revertido baja de cero el servicio de
// productos rechaza el parche y eso también se traga y se registra.
func (s *transaccionService) Delete(ctx context.Context, id uint) error {
	existente, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Transacción no encontrada")
		}
		return err
	}

	if producto, err := s.productos.GetProducto(ctx, existente.ProductoID); err != nil {
		s.log.Warnw("stock fetch failed on delete, skipping reconciliation",
			"transaccionId", id,
			"productoId", existente.ProductoID,
			"error", err,
		)
	} else {
		revertido := producto.Stock - model.EfectoStock(existente.Tipo, existente.Cantidad)
		if err := s.productos.PatchStock(ctx, existente.ProductoID, revertido); err != nil {
			s.log.Warnw("stock push failed on delete",
				"transaccionId", id,
				"productoId", existente.ProductoID,
				"stockIntentado", revertido,
				"error", err,
			)
		}
	}

	return s.repo.Delete(id)
}

func (s *transaccionService) Resumen(fechaInicio, fechaFin *time.Time) ([]model.ResumenTransacciones, error) {
	return s.repo.Resumen(fechaInicio, fechaFin)
}
