package utils

import (
	"fmt"
	"time"
)

// MonthLayout é o formato dos períodos mensais (mm-yyyy)
const MonthLayout = "01-2006"

// ParseMonth converte "mm-yyyy" no primeiro dia do mês. Vazio retorna o mês corrente.
func ParseMonth(month string, now time.Time) (time.Time, error) {
	if month == "" {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	}

	t, err := time.Parse(MonthLayout, month)
	if err != nil {
		return time.Time{}, fmt.Errorf("mês inválido %q, esperado mm-yyyy: %w", month, err)
	}

	return t, nil
}

func FormatMonth(t time.Time) string {
	return t.Format(MonthLayout)
}

// DaysInMonth retorna a quantidade de dias do mês de t
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
