package domain

import "time"

// Audit is a physical-inventory verification pass over one location,
// distinct from the per-field Movement trail.
type Audit struct {
	ID         int64       `json:"id" gorm:"primaryKey"`
	LocationID int64       `json:"ubicacion_auditada_id" gorm:"column:ubicacion_auditada_id;not null"`
	AuditorID  int64       `json:"auditor_id" gorm:"column:auditor_id;not null"`
	StartedAt  time.Time   `json:"fecha_inicio" gorm:"column:fecha_inicio;autoCreateTime"`
	EndedAt    *time.Time  `json:"fecha_fin" gorm:"column:fecha_fin"`
	Status     AuditStatus `json:"status" gorm:"size:50;default:'En Progreso'"`
	Summary    string      `json:"resumen" gorm:"column:resumen;type:text"`

	Location *Location `json:"ubicacion_auditada,omitempty" gorm:"foreignKey:LocationID"`
	Auditor  *User     `json:"auditor,omitempty" gorm:"foreignKey:AuditorID"`

	Details []AuditDetail `json:"detalles,omitempty" gorm:"foreignKey:AuditID;constraint:OnDelete:CASCADE"`
}

func (Audit) TableName() string { return "auditorias" }

// AuditDetail records one asset's scan outcome within an audit. It
// references the asset without a cascade: deleting an asset leaves its
// audit rows behind.
type AuditDetail struct {
	ID        int64      `json:"id" gorm:"primaryKey"`
	AuditID   int64      `json:"auditoria_id" gorm:"column:auditoria_id;not null"`
	AssetID   int64      `json:"activo_id" gorm:"column:activo_id;not null"`
	Result    ScanResult `json:"resultado" gorm:"column:resultado;size:50;not null"`
	ScannedAt time.Time  `json:"timestamp_scan" gorm:"column:timestamp_scan;autoCreateTime"`
	Note      string     `json:"nota" gorm:"column:nota;type:text"`

	Asset *Asset `json:"activo,omitempty" gorm:"foreignKey:AssetID"`
}

func (AuditDetail) TableName() string { return "auditoria_detalles" }
