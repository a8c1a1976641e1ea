package dto

import "time"

type BarberMetricsDTO struct {
	BarbeiroID uint    `json:"barbeiro_id"`
	Nome       string  `json:"nome"`
	Count      int     `json:"count"`
	Revenue    float64 `json:"revenue"`
}

type ServiceMetricsDTO struct {
	ServiceID uint    `json:"service_id"`
	Nome      string  `json:"nome"`
	Count     int     `json:"count"`
	Revenue   float64 `json:"revenue"`
}

type MetricsSummaryDTO struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	TotalClients    int     `json:"totalClients"`
	TotalServices   int     `json:"totalServices"`
	TotalRevenue    float64 `json:"totalRevenue"`
	AverageWaitTime int     `json:"averageWaitTime"`

	ServicesByBarber []BarberMetricsDTO  `json:"servicesByBarber"`
	PopularServices  []ServiceMetricsDTO `json:"popularServices"`
}
