package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"go-inventario-services/internal/apperr"
	"go-inventario-services/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductoService struct {
	mock.Mock
}

func (m *MockProductoService) List(filtro model.FiltroProductos, page, pageSize int) ([]model.Producto, int64, error) {
	args := m.Called(filtro, page, pageSize)
	return args.Get(0).([]model.Producto), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductoService) Get(id uint) (*model.Producto, error) {
	args := m.Called(id)
	if p := args.Get(0); p != nil {
		return p.(*model.Producto), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductoService) Create(p *model.Producto) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockProductoService) Update(id uint, p *model.Producto) error {
	args := m.Called(id, p)
	return args.Error(0)
}

func (m *MockProductoService) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductoService) PatchStock(id uint, nuevoStock int) error {
	args := m.Called(id, nuevoStock)
	return args.Error(0)
}

func (m *MockProductoService) Categorias() ([]string, error) {
	args := m.Called()
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProductoService) Estadisticas() (*model.EstadisticasInventario, error) {
	args := m.Called()
	if s := args.Get(0); s != nil {
		return s.(*model.EstadisticasInventario), args.Error(1)
	}
	return nil, args.Error(1)
}

func newProductosApp(svc *MockProductoService) *fiber.App {
	app := fiber.New()
	NewProductoHandler(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func TestListarProductos_SobrePaginado(t *testing.T) {
	svc := new(MockProductoService)
	app := newProductosApp(svc)

	svc.On("List", mock.Anything, 2, 10).
		Return([]model.Producto{{ID: 11, Nombre: "Widget", Precio: 10, Stock: 5}}, int64(25), nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/productos?page=2&pageSize=10", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var envelope struct {
		Data       []model.Producto `json:"data"`
		Page       int              `json:"page"`
		PageSize   int              `json:"pageSize"`
		Total      int64            `json:"total"`
		TotalPages int              `json:"totalPages"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, 2, envelope.Page)
	assert.Equal(t, int64(25), envelope.Total)
	assert.Equal(t, 3, envelope.TotalPages) // ceil(25/10)
	assert.Len(t, envelope.Data, 1)
}

func TestListarProductos_PasaFiltros(t *testing.T) {
	svc := new(MockProductoService)
	app := newProductosApp(svc)

	svc.On("List", mock.MatchedBy(func(f model.FiltroProductos) bool {
		return f.Nombre == "wid" && f.StockBajo && f.PrecioMin != nil && *f.PrecioMin == 2.5
	}), 1, 10).Return([]model.Producto{}, int64(0), nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/productos?nombre=wid&stockBajo=true&precioMin=2.5", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	svc.AssertExpectations(t)
}

func TestObtenerProducto_NoEncontrado(t *testing.T) {
	svc := new(MockProductoService)
	app := newProductosApp(svc)

	svc.On("Get", uint(99)).Return(nil, apperr.NotFound("Producto no encontrado"))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/productos/99", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "Producto no encontrado", string(body))
}

func TestCrearProducto_201ConLocation(t *testing.T) {
	svc := new(MockProductoService)
	app := newProductosApp(svc)

	svc.On("Create", mock.AnythingOfType("*model.Producto")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*model.Producto).ID = 7
		}).Return(nil)

	req := httptest.NewRequest("POST", "/api/productos",
		strings.NewReader(`{"nombre":"Widget","precio":10,"stock":5}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
	assert.Equal(t, "/api/productos/7", resp.Header.Get("Location"))

	var creado model.Producto
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&creado))
	assert.Equal(t, uint(7), creado.ID)
}

func TestCrearProducto_ErrorDeValidacionEnTextoPlano(t *testing.T) {
	svc := new(MockProductoService)
	app := newProductosApp(svc)

	svc.On("Create", mock.Anything).Return(apperr.Validation("El precio debe ser mayor a cero"))

	req := httptest.NewRequest("POST", "/api/productos",
		strings.NewReader(`{"nombre":"Widget","precio":0}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "El precio debe ser mayor a cero", string(body))
}

func TestActualizarProducto_IDNoCoincide(t *testing.T) {
	svc := new(MockProductoService)
	app := newProductosApp(svc)

	req := httptest.NewRequest("PUT", "/api/productos/3",
		strings.NewReader(`{"id":4,"nombre":"Widget","precio":10}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "El ID no coincide", string(body))
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestActualizarProducto_204(t *testing.T) {
	svc := new(MockProductoService)
	app := newProductosApp(svc)

	svc.On("Update", uint(3), mock.AnythingOfType("*model.Producto")).Return(nil)

	req := httptest.NewRequest("PUT", "/api/productos/3",
		strings.NewReader(`{"id":3,"nombre":"Widget","precio":10,"stock":5}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
}

func TestPatchStock_CuerpoEnteroPlano(t *testing.T) {
	svc := new(MockProductoService)
	app := newProductosApp(svc)

	svc.On("PatchStock", uint(3), 12).Return(nil)

	req := httptest.NewRequest("PATCH", "/api/productos/3/stock", strings.NewReader("12"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
	svc.AssertExpectations(t)
}

func TestPatchStock_NegativoDevuelve400(t *testing.T) {
	svc := new(MockProductoService)
	app := newProductosApp(svc)

	svc.On("PatchStock", uint(3), -1).Return(apperr.Validation("El stock no puede ser negativo"))

	req := httptest.NewRequest("PATCH", "/api/productos/3/stock", strings.NewReader("-1"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "El stock no puede ser negativo", string(body))
}

func TestEliminarProducto_204(t *testing.T) {
	svc := new(MockProductoService)
	app := newProductosApp(svc)

	svc.On("Delete", uint(3)).Return(nil)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/productos/3", nil))
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
}

func TestCategorias(t *testing.T) {
	svc := new(MockProductoService)
	app := newProductosApp(svc)

	svc.On("Categorias").Return([]string{"Ferretería", "Oficina"}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/productos/categorias", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var categorias []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&categorias))
	assert.Equal(t, []string{"Ferretería", "Oficina"}, categorias)
}

func TestEstadisticas(t *testing.T) {
	svc := new(MockProductoService)
	app := newProductosApp(svc)

	svc.On("Estadisticas").Return(&model.EstadisticasInventario{
		TotalProductos:     3,
		StockTotal:         40,
		ValorInventario:    420.5,
		ProductosStockBajo: 1,
	}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/productos/estadisticas", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var stats model.EstadisticasInventario
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, int64(3), stats.TotalProductos)
	assert.Equal(t, 420.5, stats.ValorInventario)
}

func TestErrorInesperadoEs500Generico(t *testing.T) {
	svc := new(MockProductoService)
	app := newProductosApp(svc)

	svc.On("Categorias").Return([]string(nil), assert.AnError)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/productos/categorias", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "Error interno del servidor", string(body))
}
