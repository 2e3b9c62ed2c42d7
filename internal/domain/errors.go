package domain

import "errors"

// Erros da carga e normalização da tabela de vendas
var (
	ErrFileNotFound      = errors.New("sales file not found")
	ErrDateParse         = errors.New("invalid date value")
	ErrMissingColumn     = errors.New("required column not found")
	ErrInvalidValue      = errors.New("invalid numeric value")
	ErrMalformedTable    = errors.New("malformed sales table")
	ErrSourceUnavailable = errors.New("sales source unavailable")
)
