package models

import "time"

// LogEntry é append-only; o core nunca lê de volta.
type LogEntry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Acao     string `gorm:"size:50;not null" json:"acao"`
	Detalhes string `gorm:"type:text" json:"detalhes"`

	UsuarioID   *uint  `json:"usuario_id"`
	UsuarioTipo string `gorm:"size:20" json:"usuario_tipo"`

	RequestID string `gorm:"size:36" json:"request_id"`

	CreatedAt time.Time `json:"created_at"`
}
