package utils

import "time"

// ParseDate interpreta uma data no formato YYYY-MM-DD.
// String vazia retorna nil, indicando que o valor não foi informado.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
