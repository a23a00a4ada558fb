package model

import "time"

type TipoTransaccion string

const (
	TipoCompra TipoTransaccion = "Compra"
	TipoVenta  TipoTransaccion = "Venta"
)

// Transaccion registra un movimiento de inventario. ProductoID es una
// referencia blanda: el producto vive en otro servicio y su existencia solo
// se comprueba por HTTP al crear la transacción.
type Transaccion struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	Fecha          time.Time       `gorm:"not null" json:"fecha"`
	Tipo           TipoTransaccion `gorm:"type:varchar(10);not null" json:"tipo" validate:"required,oneof=Compra Venta"`
	ProductoID     uint            `gorm:"not null" json:"productoId" validate:"required"`
	Cantidad       int             `gorm:"not null" json:"cantidad" validate:"required,gt=0"`
	PrecioUnitario float64         `gorm:"type:numeric(18,2);not null" json:"precioUnitario" validate:"required,gt=0"`
	PrecioTotal    float64         `gorm:"type:numeric(18,2);not null" json:"precioTotal"`
	Detalle        string          `gorm:"type:text;not null" json:"detalle" validate:"required"`
}

func (Transaccion) TableName() string {
	return "transacciones"
}

// EfectoStock devuelve el cambio neto que una transacción aplica al stock:
// positivo para compras, negativo para ventas.
func EfectoStock(tipo TipoTransaccion, cantidad int) int {
	if tipo == TipoCompra {
		return cantidad
	}
	return -cantidad
}

// FiltroTransacciones agrupa los filtros del listado paginado.
type FiltroTransacciones struct {
	Fecha      *time.Time // coincide por fecha de calendario
	Tipo       string
	ProductoID *uint
}

// ResumenTransacciones es una fila del agregado por tipo.
type ResumenTransacciones struct {
	Tipo       TipoTransaccion `json:"tipo"`
	Cantidad   int64           `json:"cantidad"`
	MontoTotal float64         `json:"montoTotal"`
}
