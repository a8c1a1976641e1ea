package models

import "time"

type QueueEntry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClienteID uint   `gorm:"index" json:"cliente_id"`
	Cliente   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"cliente"`

	BarbeiroID uint   `gorm:"index" json:"barbeiro_id"`
	Barbeiro   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barbeiro"`

	// Posicao é atribuída na admissão como max(posicao ativa do barbeiro)+1
	// e nunca renumerada quando entradas anteriores saem da fila.
	Posicao int    `gorm:"index" json:"posicao"`
	Status  string `gorm:"size:20;default:'AGUARDANDO';index" json:"status"`

	HoraEntrada time.Time  `json:"hora_entrada"`
	HoraSaida   *time.Time `json:"hora_saida"`

	Servicos []QueueService `gorm:"foreignKey:QueueID;constraint:OnDelete:CASCADE;" json:"servicos"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
