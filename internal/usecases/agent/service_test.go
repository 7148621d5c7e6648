package agent

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgmocks "github.com/vfg2006/commission-dashboard-api/infrastructure/database/postgres/mocks"
	"github.com/vfg2006/commission-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/commission-dashboard-api/internal/domain"
	"github.com/vfg2006/commission-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func boolPtr(v bool) *bool {
	return &v
}

func stringPtr(v string) *string {
	return &v
}

func inlineTx(tx *pgmocks.MockTransactor) {
	tx.EXPECT().RunInTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(*sql.Tx) error) error { return fn(nil) })
}

func TestService_ListAgents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	agentRepo := mocks.NewMockAgentRepository(ctrl)
	agentRepo.EXPECT().ListAll(gomock.Any()).Return([]*domain.Agent{{ID: 1, Name: "Lena"}, {ID: 2, Name: "Lida", Active: false}}, nil)

	service := NewService(pgmocks.NewMockTransactor(ctrl), agentRepo, mocks.NewMockAuditNoteRepository(ctrl))
	agents, err := service.ListAgents(context.Background())

	require.NoError(t, err)
	assert.Len(t, agents, 2)

	agentRepo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("falhou"))
	_, err = service.ListAgents(context.Background())
	assert.ErrorIs(t, err, ErrFetchAgents)
}

func TestService_CreateAgent(t *testing.T) {
	tests := []struct {
		name         string
		req          *domain.CreateAgentRequest
		setupMocks   func(tx *pgmocks.MockTransactor, agentRepo *mocks.MockAgentRepository, auditRepo *mocks.MockAuditNoteRepository)
		expectedErr  error
		expectedCode string
		validate     func(t *testing.T, agent *domain.Agent)
	}{
		{
			name: "Cria agente ativo por padrão",
			req:  &domain.CreateAgentRequest{Name: "  Pegah ", IsLeader: false},
			setupMocks: func(tx *pgmocks.MockTransactor, agentRepo *mocks.MockAgentRepository, auditRepo *mocks.MockAuditNoteRepository) {
				inlineTx(tx)
				agentRepo.EXPECT().WithTx(gomock.Any()).Return(agentRepo)
				agentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, agent *domain.Agent) (*domain.Agent, error) {
						agent.ID = 8
						return agent, nil
					})
				auditRepo.EXPECT().WithTx(gomock.Any()).Return(auditRepo)
				auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, note *domain.AuditNote) error {
						assert.Equal(t, domain.AuditActionAgentCreated, note.Action)
						assert.Contains(t, note.Note, "Pegah")
						return nil
					})
			},
			validate: func(t *testing.T, agent *domain.Agent) {
				assert.Equal(t, 8, agent.ID)
				assert.Equal(t, "Pegah", agent.Name)
				assert.True(t, agent.Active)
			},
		},
		{
			name:         "Nome em branco",
			req:          &domain.CreateAgentRequest{Name: "   "},
			setupMocks:   func(*pgmocks.MockTransactor, *mocks.MockAgentRepository, *mocks.MockAuditNoteRepository) {},
			expectedErr:  ErrInvalidAgent,
			expectedCode: apiErrors.ErrInvalidFormat,
		},
		{
			name: "Erro ao gravar",
			req:  &domain.CreateAgentRequest{Name: "Radin", Active: boolPtr(false)},
			setupMocks: func(tx *pgmocks.MockTransactor, agentRepo *mocks.MockAgentRepository, auditRepo *mocks.MockAuditNoteRepository) {
				inlineTx(tx)
				agentRepo.EXPECT().WithTx(gomock.Any()).Return(agentRepo)
				agentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("duplicado"))
			},
			expectedErr:  ErrSaveAgent,
			expectedCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tx := pgmocks.NewMockTransactor(ctrl)
			agentRepo := mocks.NewMockAgentRepository(ctrl)
			auditRepo := mocks.NewMockAuditNoteRepository(ctrl)
			tt.setupMocks(tx, agentRepo, auditRepo)

			service := NewService(tx, agentRepo, auditRepo)
			agent, err := service.CreateAgent(context.Background(), "admin", tt.req)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				var agentErr *AgentError
				require.ErrorAs(t, err, &agentErr)
				assert.Equal(t, tt.expectedCode, agentErr.Code)
				return
			}

			require.NoError(t, err)
			tt.validate(t, agent)
		})
	}
}

func TestService_UpdateAgent(t *testing.T) {
	existing := func() *domain.Agent {
		return &domain.Agent{ID: 5, Name: "Sophia", IsLeader: true, Active: true}
	}

	tests := []struct {
		name         string
		req          *domain.UpdateAgentRequest
		setupMocks   func(tx *pgmocks.MockTransactor, agentRepo *mocks.MockAgentRepository, auditRepo *mocks.MockAuditNoteRepository)
		expectedErr  error
		expectedCode string
		validate     func(t *testing.T, agent *domain.Agent)
	}{
		{
			name: "Desativa o agente",
			req:  &domain.UpdateAgentRequest{ID: 5, Active: boolPtr(false)},
			setupMocks: func(tx *pgmocks.MockTransactor, agentRepo *mocks.MockAgentRepository, auditRepo *mocks.MockAuditNoteRepository) {
				inlineTx(tx)
				agentRepo.EXPECT().WithTx(gomock.Any()).Return(agentRepo)
				agentRepo.EXPECT().GetByID(gomock.Any(), 5).Return(existing(), nil)
				agentRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, agent *domain.Agent) error {
						assert.False(t, agent.Active)
						assert.True(t, agent.IsLeader)
						return nil
					})
				auditRepo.EXPECT().WithTx(gomock.Any()).Return(auditRepo)
				auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, note *domain.AuditNote) error {
						assert.Equal(t, "agente 5: ativo true -> false", note.Note)
						return nil
					})
			},
			validate: func(t *testing.T, agent *domain.Agent) {
				assert.False(t, agent.Active)
			},
		},
		{
			name: "Sem alterações não grava",
			req:  &domain.UpdateAgentRequest{ID: 5, Name: stringPtr("Sophia"), IsLeader: boolPtr(true)},
			setupMocks: func(tx *pgmocks.MockTransactor, agentRepo *mocks.MockAgentRepository, auditRepo *mocks.MockAuditNoteRepository) {
				inlineTx(tx)
				agentRepo.EXPECT().WithTx(gomock.Any()).Return(agentRepo)
				agentRepo.EXPECT().GetByID(gomock.Any(), 5).Return(existing(), nil)
			},
			validate: func(t *testing.T, agent *domain.Agent) {
				assert.Equal(t, "Sophia", agent.Name)
			},
		},
		{
			name: "Agente inexistente",
			req:  &domain.UpdateAgentRequest{ID: 77, IsLeader: boolPtr(true)},
			setupMocks: func(tx *pgmocks.MockTransactor, agentRepo *mocks.MockAgentRepository, auditRepo *mocks.MockAuditNoteRepository) {
				inlineTx(tx)
				agentRepo.EXPECT().WithTx(gomock.Any()).Return(agentRepo)
				agentRepo.EXPECT().GetByID(gomock.Any(), 77).Return(nil, nil)
			},
			expectedErr:  ErrAgentNotFound,
			expectedCode: apiErrors.ErrAgentNotFound,
		},
		{
			name:         "Nome vazio",
			req:          &domain.UpdateAgentRequest{ID: 5, Name: stringPtr(" ")},
			setupMocks:   func(*pgmocks.MockTransactor, *mocks.MockAgentRepository, *mocks.MockAuditNoteRepository) {},
			expectedErr:  ErrInvalidAgent,
			expectedCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:         "ID ausente",
			req:          &domain.UpdateAgentRequest{},
			setupMocks:   func(*pgmocks.MockTransactor, *mocks.MockAgentRepository, *mocks.MockAuditNoteRepository) {},
			expectedErr:  ErrInvalidAgent,
			expectedCode: apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tx := pgmocks.NewMockTransactor(ctrl)
			agentRepo := mocks.NewMockAgentRepository(ctrl)
			auditRepo := mocks.NewMockAuditNoteRepository(ctrl)
			tt.setupMocks(tx, agentRepo, auditRepo)

			service := NewService(tx, agentRepo, auditRepo)
			agent, err := service.UpdateAgent(context.Background(), "admin", tt.req)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				var agentErr *AgentError
				require.ErrorAs(t, err, &agentErr)
				assert.Equal(t, tt.expectedCode, agentErr.Code)
				return
			}

			require.NoError(t, err)
			tt.validate(t, agent)
		})
	}
}
