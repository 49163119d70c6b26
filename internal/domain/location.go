package domain

// Location is a place where assets reside. Locations form a forest via
// ParentID; nothing prevents a cycle (inherited design gap, see DESIGN.md).
type Location struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	Name        string `json:"nombre" gorm:"column:nombre;size:255;uniqueIndex;not null"`
	Description string `json:"descripcion" gorm:"column:descripcion;type:text"`
	ParentID    *int64 `json:"parent_ubicacion_id" gorm:"column:parent_ubicacion_id"`

	Parent *Location `json:"parent_ubicacion,omitempty" gorm:"foreignKey:ParentID"`
}

func (Location) TableName() string { return "ubicaciones" }
