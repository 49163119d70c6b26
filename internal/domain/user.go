package domain

import "time"

type User struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	FullName  string    `json:"nombre_completo" gorm:"column:nombre_completo;size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Role      UserRole  `json:"rol" gorm:"column:rol;size:50;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string { return "usuarios" }
