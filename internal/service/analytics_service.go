package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finsight-server/internal/storage"
	"github.com/carson-networks/finsight-server/internal/storage/transaction"
)

const forecastMonths = 3

// AnalyticsService recomputes summaries and forecasts from the full ledger
// on every call. There is no cached or incremental state.
type AnalyticsService struct {
	storage *storage.Storage
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(store *storage.Storage) *AnalyticsService {
	return &AnalyticsService{storage: store}
}

// Summarize aggregates the ledger into all-time totals and per-month buckets.
func (s *AnalyticsService) Summarize(ctx context.Context) (Summary, error) {
	rows, err := s.storage.Transactions.List(ctx)
	if err != nil {
		return Summary{}, err
	}

	monthlyIncome := monthlyTotals(rows, transaction.TypeIncome)
	monthlyExpenses := monthlyTotals(rows, transaction.TypeExpense)

	totalIncome := sumTotals(monthlyIncome)
	totalExpenses := sumTotals(monthlyExpenses)

	return Summary{
		TotalIncome:      totalIncome,
		TotalExpenses:    totalExpenses,
		Savings:          totalIncome.Sub(totalExpenses),
		MonthlyIncome:    monthlyIncome,
		MonthlyExpenses:  monthlyExpenses,
		TransactionCount: len(rows),
	}, nil
}

// Forecast fits a least-squares line to the monthly expense and income
// series and projects the next three months, along with a risk assessment.
func (s *AnalyticsService) Forecast(ctx context.Context) (Forecast, error) {
	rows, err := s.storage.Transactions.List(ctx)
	if err != nil {
		return Forecast{}, err
	}

	monthlyIncome := monthlyTotals(rows, transaction.TypeIncome)
	monthlyExpenses := monthlyTotals(rows, transaction.TypeExpense)

	historicalLabels := make([]string, len(monthlyExpenses))
	historicalExpenses := make([]float64, len(monthlyExpenses))
	for i, bucket := range monthlyExpenses {
		historicalLabels[i] = bucket.Month
		historicalExpenses[i] = bucket.Total.InexactFloat64()
	}

	return Forecast{
		Labels:             nextMonthLabels(monthlyExpenses, forecastMonths),
		PredictedExpenses:  forecastSeries(totalValues(monthlyExpenses), forecastMonths),
		PredictedIncome:    forecastSeries(totalValues(monthlyIncome), forecastMonths),
		HistoricalLabels:   historicalLabels,
		HistoricalExpenses: historicalExpenses,
		Risk:               assessRisk(monthlyExpenses, sumTotals(monthlyIncome), sumTotals(monthlyExpenses)),
	}, nil
}

// monthlyTotals groups transactions of one type into chronologically ordered
// YYYY-MM buckets. Months without a matching transaction are absent.
func monthlyTotals(rows []*transaction.Transaction, txType transaction.TransactionType) []MonthTotal {
	byMonth := make(map[string]decimal.Decimal)
	for _, row := range rows {
		if row.Type != txType {
			continue
		}
		month := row.Date.Format("2006-01")
		byMonth[month] = byMonth[month].Add(row.Amount)
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	// YYYY-MM labels sort chronologically as strings.
	sort.Strings(months)

	totals := make([]MonthTotal, len(months))
	for i, month := range months {
		totals[i] = MonthTotal{Month: month, Total: byMonth[month]}
	}
	return totals
}

func sumTotals(totals []MonthTotal) decimal.Decimal {
	sum := decimal.Zero
	for _, bucket := range totals {
		sum = sum.Add(bucket.Total)
	}
	return sum
}

func totalValues(totals []MonthTotal) []float64 {
	values := make([]float64, len(totals))
	for i, bucket := range totals {
		values[i] = bucket.Total.InexactFloat64()
	}
	return values
}

// forecastSeries fits an ordinary least-squares line y = m*x + b over
// x = 0..n-1 and evaluates it at x = n..n+steps-1. Fewer than two points, or
// a zero denominator, yields an all-zero forecast rather than an error.
// Predictions are clamped at zero: a forecast never claims negative spending.
func forecastSeries(values []float64, steps int) []float64 {
	predictions := make([]float64, steps)

	n := len(values)
	if n < 2 {
		return predictions
	}

	var sumX, sumY, sumXY, sumX2 float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}

	denom := float64(n)*sumX2 - sumX*sumX
	if denom == 0 {
		return predictions
	}

	slope := (float64(n)*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / float64(n)

	for i := range predictions {
		predicted := slope*float64(n+i) + intercept
		if predicted < 0 {
			predicted = 0
		}
		predictions[i] = math.Round(predicted*100) / 100
	}
	return predictions
}

// nextMonthLabels produces the `steps` consecutive month labels following
// the last historical month. With no history the sequence starts from the
// current month.
func nextMonthLabels(months []MonthTotal, steps int) []string {
	now := time.Now().UTC()
	last := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if len(months) > 0 {
		if parsed, err := time.Parse("2006-01", months[len(months)-1].Month); err == nil {
			last = parsed
		}
	}

	labels := make([]string, steps)
	for i := range labels {
		last = last.AddDate(0, 1, 0)
		labels[i] = last.Format("2006-01")
	}
	return labels
}

// assessRisk applies the additive risk rules in order, then truncates and
// clamps the score to [0,100].
//
// Rule 1 looks at the last two monthly expense buckets, rules 2 and 3 at the
// all-time totals.
func assessRisk(monthlyExpenses []MonthTotal, totalIncome, totalExpenses decimal.Decimal) RiskAssessment {
	score := 0.0
	reasons := []string{}

	if n := len(monthlyExpenses); n >= 2 {
		last := monthlyExpenses[n-1].Total
		prior := monthlyExpenses[n-2].Total
		increase := last.Sub(prior)
		if increase.IsPositive() && prior.IsPositive() {
			points := 50 * increase.InexactFloat64() / prior.InexactFloat64()
			if points > 50 {
				points = 50
			}
			score += points
			reasons = append(reasons, fmt.Sprintf("Expenses rose %s last month", increase.StringFixed(0)))
		}
	}

	savings := totalIncome.Sub(totalExpenses)
	zeroIncomeSpending := totalIncome.IsZero() && totalExpenses.IsPositive()
	// savings/income < 0.20  <=>  savings*5 < income, kept in decimal so the
	// exact 20% boundary carries no penalty.
	lowSavingsRatio := totalIncome.IsPositive() && savings.Mul(decimal.NewFromInt(5)).LessThan(totalIncome)
	if zeroIncomeSpending || lowSavingsRatio {
		score += 25
		reasons = append(reasons, "Savings below 20% of income")
	}

	if totalExpenses.GreaterThan(totalIncome) {
		score += 50
		reasons = append(reasons, "Expenses exceed income")
	}

	finalScore := int(score)
	if finalScore > 100 {
		finalScore = 100
	}
	if finalScore < 0 {
		finalScore = 0
	}

	badge, color := badgeForScore(finalScore)
	return RiskAssessment{
		Score:   finalScore,
		Badge:   badge,
		Color:   color,
		Reasons: reasons,
	}
}

func badgeForScore(score int) (badge, color string) {
	switch {
	case score < 30:
		return BadgeLow, "green"
	case score < 65:
		return BadgeMedium, "yellow"
	default:
		return BadgeHigh, "red"
	}
}
