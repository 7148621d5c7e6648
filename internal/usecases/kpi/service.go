package kpi

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vfg2006/commission-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/commission-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/commission-dashboard-api/internal/domain"
	"github.com/vfg2006/commission-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/commission-dashboard-api/pkg/log"
	"github.com/vfg2006/commission-dashboard-api/pkg/metrics"
	"github.com/vfg2006/commission-dashboard-api/pkg/utils"
)

type KPIService interface {
	// SaveRows grava a grade do painel numa única transação: linhas com kpiId atualizam
	// o lançamento existente, as demais criam um novo lançamento para o agente
	SaveRows(ctx context.Context, actor string, req *domain.SaveKPIRequest) (*SaveResult, error)
}

type SaveResult struct {
	Updated  int `json:"updated"`
	Inserted int `json:"inserted"`
}

type Service struct {
	transactor postgres.Transactor
	kpiRepo    repository.AgentKpiRepository
	auditRepo  repository.AuditNoteRepository
	metrics    *metrics.Metrics
}

func NewService(
	transactor postgres.Transactor,
	kpiRepo repository.AgentKpiRepository,
	auditRepo repository.AuditNoteRepository,
	m *metrics.Metrics,
) KPIService {
	return &Service{
		transactor: transactor,
		kpiRepo:    kpiRepo,
		auditRepo:  auditRepo,
		metrics:    m,
	}
}

func (s *Service) SaveRows(ctx context.Context, actor string, req *domain.SaveKPIRequest) (*SaveResult, error) {
	if req == nil {
		return nil, NewKPIError(ErrInvalidRows, apiErrors.ErrInvalidRequest, "payload vazio")
	}

	if details := utils.ValidateStruct(req); details != nil {
		return nil, NewKPIError(ErrInvalidRows, apiErrors.ErrInvalidFormat, details)
	}

	result := &SaveResult{}
	if len(req.Rows) == 0 {
		return result, nil
	}

	logger := log.ForContext(ctx)

	err := s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		kpiRepo := s.kpiRepo.WithTx(tx)

		for _, row := range req.Rows {
			kpi := row.ToAgentKpi()

			if kpi.ID > 0 {
				if err := kpiRepo.Update(ctx, kpi); err != nil {
					if errors.Is(err, repository.ErrKPINotFound) {
						return NewKPIError(ErrKPINotFound, apiErrors.ErrKPINotFound, map[string]int{"kpiId": kpi.ID})
					}
					return fmt.Errorf("atualizar KPI %d: %w", kpi.ID, err)
				}
				result.Updated++
				continue
			}

			if _, err := kpiRepo.Insert(ctx, kpi); err != nil {
				return fmt.Errorf("inserir KPI do agente %d: %w", kpi.AgentID, err)
			}
			result.Inserted++
		}

		note := &domain.AuditNote{
			Action: domain.AuditActionKPISaved,
			Actor:  actor,
			Note:   fmt.Sprintf("%d lançamentos atualizados, %d inseridos", result.Updated, result.Inserted),
		}
		if err := s.auditRepo.WithTx(tx).Create(ctx, note); err != nil {
			return fmt.Errorf("%w: %v", ErrAuditNote, err)
		}

		return nil
	})
	if err != nil {
		var kpiErr *KPIError
		if errors.As(err, &kpiErr) {
			logger.WithError(err).Warn("Gravação de KPIs rejeitada")
			return nil, kpiErr
		}

		logger.WithError(err).Error("Erro ao gravar KPIs")
		return nil, NewKPIError(fmt.Errorf("%w: %v", ErrSaveKPI, err), apiErrors.ErrDatabaseOperation, nil)
	}

	s.metrics.AddKPIRowsSaved(len(req.Rows))
	logger.WithFields(log.Fields{
		"rows":     len(req.Rows),
		"updated":  result.Updated,
		"inserted": result.Inserted,
	}).Info("KPIs gravados")

	return result, nil
}
