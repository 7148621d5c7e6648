package kpi

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRows = errors.New("linhas de KPI inválidas")
	ErrKPINotFound = errors.New("lançamento de KPI não encontrado")
	ErrSaveKPI     = errors.New("erro ao gravar KPIs")
	ErrAuditNote   = errors.New("erro ao registrar nota de auditoria")
)

// KPIError é um erro com o código da API que o handler deve devolver
type KPIError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details any    // Detalhes adicionais
}

func (e *KPIError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *KPIError) Unwrap() error {
	return e.Err
}

func NewKPIError(err error, code string, details any) *KPIError {
	return &KPIError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
