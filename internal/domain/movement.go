package domain

import "time"

// Movement is one row of the append-only field-change trail of an asset.
// The schema is provisioned but no handler writes rows automatically; they
// only appear when inserted explicitly (seed data, external tooling).
type Movement struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	AssetID      int64     `json:"activo_id" gorm:"column:activo_id;not null"`
	UserID       int64     `json:"usuario_id" gorm:"column:usuario_id;not null"`
	ChangedAt    time.Time `json:"fecha_cambio" gorm:"column:fecha_cambio;autoCreateTime"`
	FieldChanged string    `json:"campo_modificado" gorm:"column:campo_modificado;size:100"`
	OldValue     string    `json:"valor_anterior" gorm:"column:valor_anterior;type:text"`
	NewValue     string    `json:"valor_nuevo" gorm:"column:valor_nuevo;type:text"`
	Note         string    `json:"nota" gorm:"column:nota;type:text"`

	User *User `json:"usuario,omitempty" gorm:"foreignKey:UserID"`
}

func (Movement) TableName() string { return "historial_movimientos" }
