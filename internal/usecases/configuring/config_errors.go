package configuring

import (
	"errors"
	"fmt"
)

var (
	ErrConfigNotFound = errors.New("nenhuma configuração de comissão encontrada")
	ErrInvalidConfig  = errors.New("configuração de comissão inválida")
	ErrFetchConfig    = errors.New("erro ao buscar configuração de comissão")
	ErrSaveConfig     = errors.New("erro ao gravar configuração de comissão")
)

// ConfigError é um erro com o código da API que o handler deve devolver
type ConfigError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details any    // Detalhes adicionais
}

func (e *ConfigError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func NewConfigError(err error, code string, details any) *ConfigError {
	return &ConfigError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
