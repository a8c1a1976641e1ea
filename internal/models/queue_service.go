package models

// QueueService congela preço e duração do serviço no momento da
// admissão; mudanças posteriores no catálogo não afetam estas colunas.
type QueueService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	QueueID uint `gorm:"index;not null" json:"queue_id"`

	ServiceID uint    `gorm:"index;not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	PrecoAplicado         *float64 `json:"preco_aplicado"`
	TempoEstimadoAplicado *int     `json:"tempo_estimado_aplicado"`
}
