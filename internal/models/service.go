package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome          string   `gorm:"size:100;not null" json:"nome"`
	Descricao     string   `gorm:"size:255" json:"descricao"`
	Preco         *float64 `json:"preco"`
	TempoEstimado *int     `json:"tempo_estimado"`
	Ativo         bool     `gorm:"default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
