package domain

import "time"

type Maintenance struct {
	ID            int64           `json:"id" gorm:"primaryKey"`
	AssetID       int64           `json:"activo_id" gorm:"column:activo_id;not null"`
	Date          time.Time       `json:"fecha_mantenimiento" gorm:"column:fecha_mantenimiento;type:date;not null"`
	Type          MaintenanceType `json:"tipo_mantenimiento" gorm:"column:tipo_mantenimiento;size:50;not null"`
	Description   string          `json:"descripcion" gorm:"column:descripcion;type:text;not null"`
	Cost          float64         `json:"costo" gorm:"column:costo;type:decimal(10,2);default:0"`
	PerformedByID int64           `json:"realizado_por_id" gorm:"column:realizado_por_id;not null"`

	PerformedBy *User `json:"tecnico,omitempty" gorm:"foreignKey:PerformedByID"`
}

func (Maintenance) TableName() string { return "mantenimientos" }
