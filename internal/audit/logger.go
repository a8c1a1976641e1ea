package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	acao string,
	usuarioID *uint,
	usuarioTipo string,
	requestID string,
	detalhes any,
) error {

	var detalhesJSON string
	if detalhes != nil {
		if b, err := json.Marshal(detalhes); err == nil {
			detalhesJSON = string(b)
		}
	}

	entry := models.LogEntry{
		Acao:        acao,
		Detalhes:    detalhesJSON,
		UsuarioID:   usuarioID,
		UsuarioTipo: usuarioTipo,
		RequestID:   requestID,
	}

	return l.db.Create(&entry).Error
}
