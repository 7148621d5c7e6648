package configuring

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/commission-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/commission-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/commission-dashboard-api/internal/domain"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/scoring"
	"github.com/vfg2006/commission-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/commission-dashboard-api/pkg/log"
	"github.com/vfg2006/commission-dashboard-api/pkg/utils"
)

type ConfigService interface {
	GetActive(ctx context.Context) (*domain.CommissionConfigResponse, error)
	// Create grava uma nova linha de configuração, que passa a ser a ativa
	Create(ctx context.Context, actor string, req *domain.CreateCommissionConfigRequest) (*domain.CommissionConfigResponse, error)
	// SyncPaceCalendar alinha dias decorridos e dias do mês da configuração ativa com a data informada
	SyncPaceCalendar(ctx context.Context, now time.Time) (*domain.CommissionConfig, bool, error)
}

type Service struct {
	transactor postgres.Transactor
	configRepo repository.CommissionConfigRepository
	auditRepo  repository.AuditNoteRepository
}

func NewService(
	transactor postgres.Transactor,
	configRepo repository.CommissionConfigRepository,
	auditRepo repository.AuditNoteRepository,
) ConfigService {
	return &Service{
		transactor: transactor,
		configRepo: configRepo,
		auditRepo:  auditRepo,
	}
}

func (s *Service) GetActive(ctx context.Context) (*domain.CommissionConfigResponse, error) {
	cfg, err := s.configRepo.GetActive(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar configuração ativa")
		return nil, NewConfigError(fmt.Errorf("%w: %v", ErrFetchConfig, err), apiErrors.ErrDatabaseOperation, nil)
	}

	if cfg == nil {
		return nil, NewConfigError(ErrConfigNotFound, apiErrors.ErrConfigNotFound, nil)
	}

	return &domain.CommissionConfigResponse{
		Config: cfg,
		Rules:  scoring.EffectiveRules(cfg),
	}, nil
}

func (s *Service) Create(ctx context.Context, actor string, req *domain.CreateCommissionConfigRequest) (*domain.CommissionConfigResponse, error) {
	if req == nil {
		return nil, NewConfigError(ErrInvalidConfig, apiErrors.ErrInvalidRequest, "payload vazio")
	}

	if details := validate(req); details != nil {
		return nil, NewConfigError(ErrInvalidConfig, apiErrors.ErrInvalidFormat, details)
	}

	var created *domain.CommissionConfig
	err := s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		created, err = s.configRepo.WithTx(tx).Create(ctx, req.ToConfig())
		if err != nil {
			return err
		}

		return s.auditRepo.WithTx(tx).Create(ctx, &domain.AuditNote{
			Action: domain.AuditActionConfigCreated,
			Actor:  actor,
			Note: fmt.Sprintf("configuração %d: meta %s, base %s, faixas [%s] / [%s]",
				created.ID,
				utils.FormatCurrency(created.TargetNd),
				created.ApplyBase,
				created.BandsYour,
				created.BandsOpt,
			),
		})
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao gravar configuração de comissão")
		return nil, NewConfigError(fmt.Errorf("%w: %v", ErrSaveConfig, err), apiErrors.ErrDatabaseOperation, nil)
	}

	log.ForContext(ctx).WithField("config_id", created.ID).Info("Nova configuração de comissão ativa")

	return &domain.CommissionConfigResponse{
		Config: created,
		Rules:  scoring.EffectiveRules(created),
	}, nil
}

// validate aplica as tags do payload e rejeita faixas e pesos que o cálculo descartaria em silêncio
func validate(req *domain.CreateCommissionConfigRequest) map[string]string {
	details := utils.ValidateStruct(req)
	if details == nil {
		details = make(map[string]string)
	}

	if strings.TrimSpace(req.BandsYour) != "" && len(scoring.ParseBands(req.BandsYour)) == 0 {
		details["bandsYour"] = "bands"
	}
	if strings.TrimSpace(req.BandsOpt) != "" && len(scoring.ParseBands(req.BandsOpt)) == 0 {
		details["bandsOpt"] = "bands"
	}
	if strings.TrimSpace(req.CompositeWeights) != "" {
		if _, defaulted := scoring.ParseWeights(req.CompositeWeights); defaulted {
			details["compositeWeights"] = "weights"
		}
	}

	if len(details) == 0 {
		return nil
	}
	return details
}

func (s *Service) SyncPaceCalendar(ctx context.Context, now time.Time) (*domain.CommissionConfig, bool, error) {
	cfg, err := s.configRepo.GetActive(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrFetchConfig, err)
	}

	if cfg == nil {
		return nil, false, ErrConfigNotFound
	}

	daysElapsed := now.Day()
	daysInMonth := utils.DaysInMonth(now)

	if cfg.DaysElapsed == daysElapsed && cfg.DaysInMonth == daysInMonth {
		return cfg, false, nil
	}

	if err := s.configRepo.UpdatePaceCalendar(ctx, cfg.ID, daysElapsed, daysInMonth); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrSaveConfig, err)
	}

	cfg.DaysElapsed = daysElapsed
	cfg.DaysInMonth = daysInMonth

	return cfg, true, nil
}
