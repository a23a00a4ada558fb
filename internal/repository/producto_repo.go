package repository

import (
	"strings"

	"go-inventario-services/internal/model"

	"gorm.io/gorm"
)

type ProductoRepository interface {
	List(filtro model.FiltroProductos, page, pageSize int) ([]model.Producto, int64, error)
	FindByID(id uint) (*model.Producto, error)
	// FindByNombre busca por nombre sin distinguir mayúsculas, excluyendo
	// opcionalmente un id (para la comprobación de unicidad en updates).
	FindByNombre(nombre string, excludeID uint) (*model.Producto, error)
	Create(p *model.Producto) error
	Update(p *model.Producto) error
	Delete(id uint) error
	UpdateStock(id uint, stock int) error
	Categorias() ([]string, error)
	Estadisticas() (*model.EstadisticasInventario, error)
}

type productoRepo struct {
	db *gorm.DB
}

func NewProductoRepo(db *gorm.DB) ProductoRepository {
	return &productoRepo{db}
}

func (r *productoRepo) List(filtro model.FiltroProductos, page, pageSize int) ([]model.Producto, int64, error) {
	query := r.db.Model(&model.Producto{})

	if filtro.Nombre != "" {
		query = query.Where("nombre ILIKE ?", "%"+filtro.Nombre+"%")
	}
	if filtro.Categoria != "" {
		query = query.Where("categoria ILIKE ?", "%"+filtro.Categoria+"%")
	}
	if filtro.PrecioMin != nil {
		query = query.Where("precio >= ?", *filtro.PrecioMin)
	}
	if filtro.PrecioMax != nil {
		query = query.Where("precio <= ?", *filtro.PrecioMax)
	}
	if filtro.StockBajo {
		query = query.Where("stock <= ?", model.UmbralStockBajo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var productos []model.Producto
	err := query.
		Order("nombre ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&productos).Error
	return productos, total, err
}

func (r *productoRepo) FindByID(id uint) (*model.Producto, error) {
	var producto model.Producto
	if err := r.db.First(&producto, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &producto, nil
}

func (r *productoRepo) FindByNombre(nombre string, excludeID uint) (*model.Producto, error) {
	var producto model.Producto
	query := r.db.Where("LOWER(nombre) = ?", strings.ToLower(nombre))
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.First(&producto).Error; err != nil {
		return nil, err
	}
	return &producto, nil
}

func (r *productoRepo) Create(p *model.Producto) error {
	return r.db.Create(p).Error
}

func (r *productoRepo) Update(p *model.Producto) error {
	return r.db.Save(p).Error
}

func (r *productoRepo) Delete(id uint) error {
	return r.db.Delete(&model.Producto{}, "id = ?", id).Error
}

// UpdateStock fija el stock a un valor absoluto; nunca aplica deltas.
func (r *productoRepo) UpdateStock(id uint, stock int) error {
	return r.db.Model(&model.Producto{}).
		Where("id = ?", id).
		Update("stock", stock).Error
}

func (r *productoRepo) Categorias() ([]string, error) {
	var categorias []string
	err := r.db.Model(&model.Producto{}).
		Where("categoria IS NOT NULL AND categoria <> ''").
		Distinct("categoria").
		Order("categoria ASC").
		Pluck("categoria", &categorias).Error
	return categorias, err
}

func (r *productoRepo) Estadisticas() (*model.EstadisticasInventario, error) {
	var stats model.EstadisticasInventario

	if err := r.db.Model(&model.Producto{}).Count(&stats.TotalProductos).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Producto{}).
		Select("COALESCE(SUM(stock), 0)").
		Scan(&stats.StockTotal).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Producto{}).
		Select("COALESCE(SUM(precio * stock), 0)").
		Scan(&stats.ValorInventario).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Producto{}).
		Where("stock <= ?", model.UmbralStockBajo).
		Count(&stats.ProductosStockBajo).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
