package domain

import "time"

// Asset is the central entity: one tracked physical item, identified by a
// unique code that doubles as the public/QR identifier.
//
// Maintenances and movement history cascade-delete with the asset; audit
// details reference the asset without a cascade. That asymmetry comes from
// the original schema and is kept on purpose.
type Asset struct {
	ID               int64       `json:"id" gorm:"primaryKey"`
	Code             string      `json:"codigo_activo" gorm:"column:codigo_activo;size:50;uniqueIndex;not null"`
	Name             string      `json:"nombre_activo" gorm:"column:nombre_activo;size:255;not null"`
	Description      string      `json:"descripcion" gorm:"column:descripcion;type:text"`
	Brand            string      `json:"marca" gorm:"column:marca;size:100"`
	Model            string      `json:"modelo" gorm:"column:modelo;size:100"`
	SerialNumber     *string     `json:"numero_serie" gorm:"column:numero_serie;size:100;uniqueIndex"`
	Status           AssetStatus `json:"status" gorm:"size:50;default:'En Bodega'"`
	AcquisitionDate  time.Time   `json:"fecha_adquisicion" gorm:"column:fecha_adquisicion;type:date;not null"`
	AcquisitionCost  float64     `json:"costo_adquisicion" gorm:"column:costo_adquisicion;type:decimal(10,2);not null"`
	UsefulLifeMonths int         `json:"vida_util_meses" gorm:"column:vida_util_meses;not null;default:36"`
	ResidualValue    float64     `json:"valor_residual" gorm:"column:valor_residual;type:decimal(10,2);not null;default:0"`
	QRURL            string      `json:"qr_url" gorm:"column:qr_url;size:500"`

	LocationID     *int64 `json:"ubicacion_id" gorm:"column:ubicacion_id"`
	AssignedUserID *int64 `json:"usuario_asignado_id" gorm:"column:usuario_asignado_id"`
	PurchaseID     *int64 `json:"compra_id" gorm:"column:compra_id"`
	LastAuditByID  *int64 `json:"ultima_auditoria_por_id" gorm:"column:ultima_auditoria_por_id"`

	LastAuditAt *time.Time `json:"ultima_auditoria_fecha" gorm:"column:ultima_auditoria_fecha"`
	CreatedAt   time.Time  `json:"created_at"`

	Location     *Location `json:"ubicacion,omitempty" gorm:"foreignKey:LocationID"`
	AssignedUser *User     `json:"usuario_asignado,omitempty" gorm:"foreignKey:AssignedUserID"`
	Purchase     *Purchase `json:"compra,omitempty" gorm:"foreignKey:PurchaseID"`
	LastAuditBy  *User     `json:"ultimo_auditor,omitempty" gorm:"foreignKey:LastAuditByID"`

	Maintenances []Maintenance `json:"-" gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE"`
	Movements    []Movement    `json:"-" gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE"`
}

func (Asset) TableName() string { return "activos" }
