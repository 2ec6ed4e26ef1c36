package domain

import "time"

// Period é um recorte de datas nomeado usado nas consultas do dashboard.
type Period string

const (
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	PeriodWeek      Period = "week"
	PeriodMonth     Period = "month"
	PeriodAll       Period = "all"
)

func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodToday, PeriodYesterday, PeriodWeek, PeriodMonth:
		return Period(s)
	default:
		return PeriodAll
	}
}

// Bounds devolve o intervalo [start, end) do período relativo a now.
// Start é inclusivo e end exclusivo; para PeriodAll ambos são nil.
func (p Period) Bounds(now time.Time) (start, end *time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	switch p {
	case PeriodToday:
		return &today, &tomorrow
	case PeriodYesterday:
		yesterday := today.AddDate(0, 0, -1)
		return &yesterday, &today
	case PeriodWeek:
		// Últimos 7 dias corridos, incluindo hoje
		weekStart := today.AddDate(0, 0, -6)
		return &weekStart, &tomorrow
	case PeriodMonth:
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		nextMonth := monthStart.AddDate(0, 1, 0)
		return &monthStart, &nextMonth
	default:
		return nil, nil
	}
}
