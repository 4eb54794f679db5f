package dto

type CategoryReportRow struct {
	Category    string  `json:"category"`
	TotalAmount float64 `json:"total_amount"`
	Count       int64   `json:"count"`
	Percentage  float64 `json:"percentage"`
}

type MonthlyReportRow struct {
	Month       string  `json:"month"`
	TotalAmount float64 `json:"total_amount"`
	Count       int64   `json:"count"`
}

type SummaryReport struct {
	TotalAmount   float64             `json:"total_amount"`
	TotalCount    int64               `json:"total_count"`
	AverageAmount float64             `json:"average_amount"`
	Categories    []CategoryReportRow `json:"categories"`
}
