package models

import "time"

// Barbeiro nunca é removido fisicamente: Ativo=false preserva o
// histórico de fila que referencia o registro.
type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome      string  `gorm:"size:100;not null" json:"nome"`
	Login     string  `gorm:"size:100;uniqueIndex;not null" json:"login"`
	SenhaHash string  `gorm:"size:255;not null" json:"-"`
	FotoURL   *string `gorm:"size:255" json:"foto_url"`

	Ativo      bool `gorm:"default:true" json:"ativo"`
	Disponivel bool `gorm:"default:true" json:"disponivel"`

	AdminID *uint  `json:"admin_id"`
	Admin   *Admin `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"admin,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
