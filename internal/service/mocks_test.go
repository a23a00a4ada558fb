package service

import (
	"context"
	"time"

	"go-inventario-services/internal/model"
	"go-inventario-services/internal/stockclient"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func errNotFound() error { return gorm.ErrRecordNotFound }

type MockProductoRepo struct {
	mock.Mock
}

func (m *MockProductoRepo) List(filtro model.FiltroProductos, page, pageSize int) ([]model.Producto, int64, error) {
	args := m.Called(filtro, page, pageSize)
	return args.Get(0).([]model.Producto), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductoRepo) FindByID(id uint) (*model.Producto, error) {
	args := m.Called(id)
	if p := args.Get(0); p != nil {
		return p.(*model.Producto), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductoRepo) FindByNombre(nombre string, excludeID uint) (*model.Producto, error) {
	args := m.Called(nombre, excludeID)
	if p := args.Get(0); p != nil {
		return p.(*model.Producto), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductoRepo) Create(p *model.Producto) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockProductoRepo) Update(p *model.Producto) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockProductoRepo) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductoRepo) UpdateStock(id uint, stock int) error {
	args := m.Called(id, stock)
	return args.Error(0)
}

func (m *MockProductoRepo) Categorias() ([]string, error) {
	args := m.Called()
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProductoRepo) Estadisticas() (*model.EstadisticasInventario, error) {
	args := m.Called()
	if s := args.Get(0); s != nil {
		return s.(*model.EstadisticasInventario), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockTransaccionRepo struct {
	mock.Mock
}

func (m *MockTransaccionRepo) List(filtro model.FiltroTransacciones, page, pageSize int) ([]model.Transaccion, int64, error) {
	args := m.Called(filtro, page, pageSize)
	return args.Get(0).([]model.Transaccion), args.Get(1).(int64), args.Error(2)
}

func (m *MockTransaccionRepo) FindByID(id uint) (*model.Transaccion, error) {
	args := m.Called(id)
	if t := args.Get(0); t != nil {
		return t.(*model.Transaccion), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransaccionRepo) Create(t *model.Transaccion) error {
	args := m.Called(t)
	return args.Error(0)
}

func (m *MockTransaccionRepo) Update(t *model.Transaccion) error {
	args := m.Called(t)
	return args.Error(0)
}

func (m *MockTransaccionRepo) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTransaccionRepo) Resumen(fechaInicio, fechaFin *time.Time) ([]model.ResumenTransacciones, error) {
	args := m.Called(fechaInicio, fechaFin)
	return args.Get(0).([]model.ResumenTransacciones), args.Error(1)
}

type MockStockClient struct {
	mock.Mock
}

func (m *MockStockClient) GetProducto(ctx context.Context, id uint) (*stockclient.ProductoRemoto, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*stockclient.ProductoRemoto), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStockClient) PatchStock(ctx context.Context, id uint, stock int) error {
	args := m.Called(ctx, id, stock)
	return args.Error(0)
}
