package auditing

import (
	"context"
	"errors"
	"fmt"

	"github.com/vfg2006/commission-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/commission-dashboard-api/internal/domain"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

var ErrFetchNotes = errors.New("erro ao buscar notas de auditoria")

type AuditService interface {
	ListNotes(ctx context.Context, limit int) ([]*domain.AuditNote, error)
}

type Service struct {
	auditRepo repository.AuditNoteRepository
}

func NewService(auditRepo repository.AuditNoteRepository) AuditService {
	return &Service{auditRepo: auditRepo}
}

// ListNotes retorna as notas mais recentes; limite fora de 1..200 usa o padrão ou o máximo
func (s *Service) ListNotes(ctx context.Context, limit int) ([]*domain.AuditNote, error) {
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	notes, err := s.auditRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchNotes, err)
	}

	return notes, nil
}
