package readmodel

import "github.com/shopspring/decimal"

// StatisticsRM is the dashboard snapshot. Day is the calendar day RevenueToday covers.
type StatisticsRM struct {
	Total            int             `json:"total"`
	Free             int             `json:"free"`
	Occupied         int             `json:"occupied"`
	Maintenance      int             `json:"maintenance"`
	OccupancyPercent decimal.Decimal `json:"occupancy_percent"`
	RevenueToday     decimal.Decimal `json:"revenue_today"`
	Day              string          `json:"day"`
}
