package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de autenticação
	ErrInvalidCredentials     = "AUTH_001" // Credenciais inválidas
	ErrInvalidToken           = "AUTH_006" // Token inválido
	ErrSessionNotConfigured   = "AUTH_011" // Token de sessão administrativo não configurado
	ErrTooManyLoginAttempts   = "AUTH_012" // Muitas tentativas de login
	ErrInsufficientPrivilege  = "AUTH_008" // Privilégios insuficientes
	ErrAuthenticationRequired = "AUTH_013" // Área administrativa exige sessão

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de domínio
	ErrConfigNotFound = "CFG_001" // Nenhuma configuração de comissão
	ErrKPINotFound    = "KPI_001" // Lançamento de KPI inexistente
	ErrAgentNotFound  = "AGT_001" // Agente inexistente
	ErrJobNotFound    = "JOB_001" // Job agendado inexistente

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:     http.StatusUnauthorized,
	ErrInvalidToken:           http.StatusUnauthorized,
	ErrAuthenticationRequired: http.StatusUnauthorized,
	ErrSessionNotConfigured:   http.StatusInternalServerError,
	ErrTooManyLoginAttempts:   http.StatusTooManyRequests,
	ErrInsufficientPrivilege:  http.StatusForbidden,
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrMissingRequiredData:    http.StatusBadRequest,
	ErrInvalidFormat:          http.StatusBadRequest,
	ErrConfigNotFound:         http.StatusNotFound,
	ErrKPINotFound:            http.StatusNotFound,
	ErrAgentNotFound:          http.StatusNotFound,
	ErrJobNotFound:            http.StatusNotFound,
	ErrInternalServer:         http.StatusInternalServerError,
	ErrDatabaseOperation:      http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

func (e APIError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

// StatusFor retorna o status HTTP de um código; códigos desconhecidos viram 500
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
