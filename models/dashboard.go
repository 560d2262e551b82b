package models

type PeriodoRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ChartData is one aggregated slice of a dashboard chart.
type ChartData struct {
	Group string  `json:"group"`
	Value float64 `json:"value"`
}

// SeriePonto is one unaggregated point of the evolution chart.
type SeriePonto struct {
	Group string  `json:"group"`
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}
