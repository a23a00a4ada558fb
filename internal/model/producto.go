package model

// Producto es el registro maestro de inventario. El nombre es único sin
// distinguir mayúsculas; la unicidad se valida en la capa de servicio.
type Producto struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Nombre      string  `gorm:"type:varchar(200);not null" json:"nombre"`
	Descripcion string  `gorm:"type:text" json:"descripcion"`
	Categoria   string  `gorm:"type:varchar(100)" json:"categoria"`
	Imagen      string  `gorm:"type:varchar(500)" json:"imagen"`
	Precio      float64 `gorm:"type:numeric(18,2);not null" json:"precio"`
	Stock       int     `gorm:"not null;default:0" json:"stock"`
}

func (Producto) TableName() string {
	return "productos"
}

// UmbralStockBajo: stock <= 10 se considera bajo en listados y estadísticas.
const UmbralStockBajo = 10

// FiltroProductos agrupa los filtros del listado paginado.
type FiltroProductos struct {
	Nombre    string
	Categoria string
	PrecioMin *float64
	PrecioMax *float64
	StockBajo bool
}

// EstadisticasInventario es la respuesta de /api/productos/estadisticas.
type EstadisticasInventario struct {
	TotalProductos     int64   `json:"totalProductos"`
	StockTotal         int64   `json:"stockTotal"`
	ValorInventario    float64 `json:"valorInventario"`
	ProductosStockBajo int64   `json:"productosStockBajo"`
}
