package domain

import "time"

type Purchase struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	InvoiceNumber string    `json:"numero_factura" gorm:"column:numero_factura;size:100"`
	Supplier      string    `json:"proveedor" gorm:"column:proveedor;size:255"`
	PurchaseDate  time.Time `json:"fecha_compra" gorm:"column:fecha_compra;type:date;not null"`
	RequestedByID *int64    `json:"solicitado_por_id" gorm:"column:solicitado_por_id"`
	CreatedAt     time.Time `json:"created_at"`

	RequestedBy *User `json:"solicitante,omitempty" gorm:"foreignKey:RequestedByID"`
}

func (Purchase) TableName() string { return "compras" }
