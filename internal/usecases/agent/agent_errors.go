package agent

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAgent  = errors.New("dados do agente inválidos")
	ErrAgentNotFound = errors.New("agente não encontrado")
	ErrFetchAgents   = errors.New("erro ao buscar agentes")
	ErrSaveAgent     = errors.New("erro ao gravar agente")
)

// AgentError é um erro com contexto adicional para agentes
type AgentError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	AgentID int    // ID do agente envolvido (quando aplicável)
	Details any    // Detalhes adicionais
}

func (e *AgentError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AgentError) Unwrap() error {
	return e.Err
}

func NewAgentError(err error, code string, details any) *AgentError {
	return &AgentError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewAgentErrorWithID(err error, code string, agentID int, details any) *AgentError {
	return &AgentError{
		Err:     err,
		Code:    code,
		AgentID: agentID,
		Details: details,
	}
}
