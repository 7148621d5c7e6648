package agent

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/commission-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/commission-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/commission-dashboard-api/internal/domain"
	"github.com/vfg2006/commission-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/commission-dashboard-api/pkg/log"
	"github.com/vfg2006/commission-dashboard-api/pkg/utils"
)

type AgentService interface {
	ListAgents(ctx context.Context) ([]*domain.Agent, error)
	CreateAgent(ctx context.Context, actor string, req *domain.CreateAgentRequest) (*domain.Agent, error)
	UpdateAgent(ctx context.Context, actor string, req *domain.UpdateAgentRequest) (*domain.Agent, error)
}

type Service struct {
	transactor postgres.Transactor
	agentRepo  repository.AgentRepository
	auditRepo  repository.AuditNoteRepository
}

func NewService(
	transactor postgres.Transactor,
	agentRepo repository.AgentRepository,
	auditRepo repository.AuditNoteRepository,
) AgentService {
	return &Service{
		transactor: transactor,
		agentRepo:  agentRepo,
		auditRepo:  auditRepo,
	}
}

func (s *Service) ListAgents(ctx context.Context) ([]*domain.Agent, error) {
	agents, err := s.agentRepo.ListAll(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar agentes")
		return nil, NewAgentError(fmt.Errorf("%w: %v", ErrFetchAgents, err), apiErrors.ErrDatabaseOperation, nil)
	}

	return agents, nil
}

func (s *Service) CreateAgent(ctx context.Context, actor string, req *domain.CreateAgentRequest) (*domain.Agent, error) {
	if req == nil {
		return nil, NewAgentError(ErrInvalidAgent, apiErrors.ErrInvalidRequest, "payload vazio")
	}

	req.Name = strings.TrimSpace(req.Name)
	if details := utils.ValidateStruct(req); details != nil {
		return nil, NewAgentError(ErrInvalidAgent, apiErrors.ErrInvalidFormat, details)
	}

	agent := &domain.Agent{
		Name:     req.Name,
		IsLeader: req.IsLeader,
		Active:   true,
	}
	if req.Active != nil {
		agent.Active = *req.Active
	}

	var created *domain.Agent
	err := s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		created, err = s.agentRepo.WithTx(tx).Create(ctx, agent)
		if err != nil {
			return err
		}

		return s.auditRepo.WithTx(tx).Create(ctx, &domain.AuditNote{
			Action: domain.AuditActionAgentCreated,
			Actor:  actor,
			Note:   fmt.Sprintf("agente %d (%s) criado, líder=%t, ativo=%t", created.ID, created.Name, created.IsLeader, created.Active),
		})
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao criar agente")
		return nil, NewAgentError(fmt.Errorf("%w: %v", ErrSaveAgent, err), apiErrors.ErrDatabaseOperation, nil)
	}

	return created, nil
}

// UpdateAgent aplica apenas os campos informados
func (s *Service) UpdateAgent(ctx context.Context, actor string, req *domain.UpdateAgentRequest) (*domain.Agent, error) {
	if req == nil || req.ID <= 0 {
		return nil, NewAgentError(ErrInvalidAgent, apiErrors.ErrInvalidRequest, "ID do agente é obrigatório")
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}
	if details := utils.ValidateStruct(req); details != nil {
		return nil, NewAgentErrorWithID(ErrInvalidAgent, apiErrors.ErrInvalidFormat, req.ID, details)
	}

	var updated *domain.Agent
	err := s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		agentRepo := s.agentRepo.WithTx(tx)

		agent, err := agentRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		if agent == nil {
			return NewAgentErrorWithID(ErrAgentNotFound, apiErrors.ErrAgentNotFound, req.ID, nil)
		}

		changes := make([]string, 0, 3)
		if req.Name != nil && *req.Name != agent.Name {
			changes = append(changes, fmt.Sprintf("nome %q -> %q", agent.Name, *req.Name))
			agent.Name = *req.Name
		}
		if req.IsLeader != nil && *req.IsLeader != agent.IsLeader {
			changes = append(changes, fmt.Sprintf("líder %t -> %t", agent.IsLeader, *req.IsLeader))
			agent.IsLeader = *req.IsLeader
		}
		if req.Active != nil && *req.Active != agent.Active {
			changes = append(changes, fmt.Sprintf("ativo %t -> %t", agent.Active, *req.Active))
			agent.Active = *req.Active
		}

		updated = agent
		if len(changes) == 0 {
			return nil
		}

		if err := agentRepo.Update(ctx, agent); err != nil {
			return err
		}

		return s.auditRepo.WithTx(tx).Create(ctx, &domain.AuditNote{
			Action: domain.AuditActionAgentUpdated,
			Actor:  actor,
			Note:   fmt.Sprintf("agente %d: %s", agent.ID, strings.Join(changes, ", ")),
		})
	})
	if err != nil {
		var agentErr *AgentError
		if errors.As(err, &agentErr) {
			return nil, agentErr
		}

		log.ForContext(ctx).WithError(err).WithField("agent_id", req.ID).Error("Erro ao atualizar agente")
		return nil, NewAgentErrorWithID(fmt.Errorf("%w: %v", ErrSaveAgent, err), apiErrors.ErrDatabaseOperation, req.ID, nil)
	}

	return updated, nil
}
