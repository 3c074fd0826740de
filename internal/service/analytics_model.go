package service

import (
	"github.com/shopspring/decimal"
)

// MonthTotal is one month's summed amount for a single transaction type,
// keyed by a YYYY-MM month label.
type MonthTotal struct {
	Month string
	Total decimal.Decimal
}

// Summary aggregates the full ledger into all-time totals and per-month
// buckets. Months with no transactions of a given type are absent from that
// type's slice.
type Summary struct {
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	Savings          decimal.Decimal
	MonthlyIncome    []MonthTotal
	MonthlyExpenses  []MonthTotal
	TransactionCount int
}

const (
	BadgeLow    = "Low"
	BadgeMedium = "Medium"
	BadgeHigh   = "High"
)

// RiskAssessment is the heuristic 0-100 spending risk with the rules that
// fired, in rule order.
type RiskAssessment struct {
	Score   int
	Badge   string
	Color   string
	Reasons []string
}

// Forecast carries the three projected months for both series, the
// historical expense series the projection was fitted on, and the risk
// assessment derived from the same pass.
type Forecast struct {
	Labels             []string
	PredictedExpenses  []float64
	PredictedIncome    []float64
	HistoricalLabels   []string
	HistoricalExpenses []float64
	Risk               RiskAssessment
}
