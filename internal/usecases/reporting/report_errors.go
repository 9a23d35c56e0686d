package reporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/evaluating"
)

// Erros específicos para o contexto de relatórios
var (
	// Erros de validação
	ErrInvalidRange = errors.New("invalid date range")
	ErrInvalidGoal  = errors.New("invalid goal")

	// Erros de perfil
	ErrUnknownOwner      = errors.New("unknown dashboard owner")
	ErrFeatureDisabled   = errors.New("feature disabled for this owner")
	ErrNoGoalsConfigured = evaluating.ErrNoGoalsConfigured

	// Erros de serviços externos
	ErrDataFetch         = errors.New("error fetching data")
	ErrDatabaseOperation = errors.New("database operation error")
)

// ReportError é um erro com contexto adicional para relatórios
type ReportError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	PeopleID string // Cliente do painel (quando aplicável)
	Details  string // Detalhes adicionais
	cause    error
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap expõe o sentinel e a causa original
func (e *ReportError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.cause}
}

func NewReportError(err error, code string, peopleID string, details string) *ReportError {
	return &ReportError{
		Err:      err,
		Code:     code,
		PeopleID: peopleID,
		Details:  details,
	}
}

// WithCause guarda o erro do colaborador que originou a falha
func (e *ReportError) WithCause(cause error) *ReportError {
	e.cause = cause
	return e
}
