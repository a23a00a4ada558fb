package repository

import (
	"time"

	"go-inventario-services/internal/model"

	"gorm.io/gorm"
)

type TransaccionRepository interface {
	List(filtro model.FiltroTransacciones, page, pageSize int) ([]model.Transaccion, int64, error)
	FindByID(id uint) (*model.Transaccion, error)
	Create(t *model.Transaccion) error
	Update(t *model.Transaccion) error
	Delete(id uint) error
	Resumen(fechaInicio, fechaFin *time.Time) ([]model.ResumenTransacciones, error)
}

type transaccionRepo struct {
	db *gorm.DB
}

func NewTransaccionRepo(db *gorm.DB) TransaccionRepository {
	return &transaccionRepo{db}
}

func (r *transaccionRepo) List(filtro model.FiltroTransacciones, page, pageSize int) ([]model.Transaccion, int64, error) {
	query := r.db.Model(&model.Transaccion{})

	if filtro.Fecha != nil {
		// coincidencia por día de calendario, no por instante
		query = query.Where("DATE(fecha) = DATE(?)", *filtro.Fecha)
	}
	if filtro.Tipo != "" {
		query = query.Where("tipo = ?", filtro.Tipo)
	}
	if filtro.ProductoID != nil {
		query = query.Where("producto_id = ?", *filtro.ProductoID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transacciones []model.Transaccion
	err := query.
		Order("fecha DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&transacciones).Error
	return transacciones, total, err
}

func (r *transaccionRepo) FindByID(id uint) (*model.Transaccion, error) {
	var transaccion model.Transaccion
	if err := r.db.First(&transaccion, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &transaccion, nil
}

func (r *transaccionRepo) Create(t *model.Transaccion) error {
	return r.db.Create(t).Error
}

func (r *transaccionRepo) Update(t *model.Transaccion) error {
	return r.db.Save(t).Error
}

func (r *transaccionRepo) Delete(id uint) error {
	return r.db.Delete(&model.Transaccion{}, "id = ?", id).Error
}

func (r *transaccionRepo) Resumen(fechaInicio, fechaFin *time.Time) ([]model.ResumenTransacciones, error) {
	query := r.db.Model(&model.Transaccion{})

	if fechaInicio != nil {
		query = query.Where("DATE(fecha) >= DATE(?)", *fechaInicio)
	}
	if fechaFin != nil {
		query = query.Where("DATE(fecha) <= DATE(?)", *fechaFin)
	}

	var resumen []model.ResumenTransacciones
	err := query.
		Select("tipo, COUNT(*) as cantidad, COALESCE(SUM(precio_total), 0) as monto_total").
		Group("tipo").
		Find(&resumen).Error
	return resumen, err
}
