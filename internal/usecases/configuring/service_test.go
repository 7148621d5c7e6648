package configuring

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgmocks "github.com/vfg2006/commission-dashboard-api/infrastructure/database/postgres/mocks"
	"github.com/vfg2006/commission-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/commission-dashboard-api/internal/domain"
	"github.com/vfg2006/commission-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func validRequest() *domain.CreateCommissionConfigRequest {
	return &domain.CreateCommissionConfigRequest{
		TargetNd:         300000,
		WorkingDays:      22,
		BmNetDeposit:     300000,
		BmFtdCount:       30,
		BmFtdAmount:      60000,
		BmNetRedeposit:   100000,
		BmRedepClients:   20,
		BmCallsPerDay:    40,
		ApplyBase:        "composite",
		BandsYour:        "60:0.01, 80:0.015, 95:0.02",
		BandsOpt:         "70:0.01,90:0.02",
		CompositeAnchor:  300000,
		CompositeWeights: "30,20,20,20,10",
		DaysElapsed:      10,
		DaysInMonth:      30,
	}
}

func TestService_GetActive(t *testing.T) {
	tests := []struct {
		name         string
		setupMocks   func(cfgRepo *mocks.MockCommissionConfigRepository)
		expectedErr  error
		expectedCode string
	}{
		{
			name: "Retorna configuração e regras efetivas",
			setupMocks: func(cfgRepo *mocks.MockCommissionConfigRepository) {
				cfgRepo.EXPECT().GetActive(gomock.Any()).Return(&domain.CommissionConfig{
					ID:        1,
					BandsYour: "95:0.02,60:0.01",
				}, nil)
			},
		},
		{
			name: "Sem configuração",
			setupMocks: func(cfgRepo *mocks.MockCommissionConfigRepository) {
				cfgRepo.EXPECT().GetActive(gomock.Any()).Return(nil, nil)
			},
			expectedErr:  ErrConfigNotFound,
			expectedCode: apiErrors.ErrConfigNotFound,
		},
		{
			name: "Erro no banco",
			setupMocks: func(cfgRepo *mocks.MockCommissionConfigRepository) {
				cfgRepo.EXPECT().GetActive(gomock.Any()).Return(nil, errors.New("timeout"))
			},
			expectedErr:  ErrFetchConfig,
			expectedCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cfgRepo := mocks.NewMockCommissionConfigRepository(ctrl)
			tt.setupMocks(cfgRepo)

			service := NewService(pgmocks.NewMockTransactor(ctrl), cfgRepo, mocks.NewMockAuditNoteRepository(ctrl))
			resp, err := service.GetActive(context.Background())

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				var cfgErr *ConfigError
				require.ErrorAs(t, err, &cfgErr)
				assert.Equal(t, tt.expectedCode, cfgErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 1, resp.Config.ID)
			require.Len(t, resp.Rules.BandsYour, 2)
			assert.Equal(t, 60.0, resp.Rules.BandsYour[0].Threshold)
			assert.Equal(t, 22, resp.Rules.WorkingDays)
			assert.True(t, resp.Rules.WeightsDefaulted)
		})
	}
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name           string
		req            func() *domain.CreateCommissionConfigRequest
		setupMocks     func(tx *pgmocks.MockTransactor, cfgRepo *mocks.MockCommissionConfigRepository, auditRepo *mocks.MockAuditNoteRepository)
		expectedErr    error
		expectedCode   string
		expectedFields []string
	}{
		{
			name: "Grava a nova configuração e a nota de auditoria",
			req:  validRequest,
			setupMocks: func(tx *pgmocks.MockTransactor, cfgRepo *mocks.MockCommissionConfigRepository, auditRepo *mocks.MockAuditNoteRepository) {
				tx.EXPECT().RunInTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(*sql.Tx) error) error { return fn(nil) })
				cfgRepo.EXPECT().WithTx(gomock.Any()).Return(cfgRepo)
				cfgRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, cfg *domain.CommissionConfig) (*domain.CommissionConfig, error) {
						assert.Equal(t, domain.ApplyBaseComposite, cfg.ApplyBase)
						cfg.ID = 9
						return cfg, nil
					})
				auditRepo.EXPECT().WithTx(gomock.Any()).Return(auditRepo)
				auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, note *domain.AuditNote) error {
						assert.Equal(t, domain.AuditActionConfigCreated, note.Action)
						assert.Contains(t, note.Note, "configuração 9")
						assert.Contains(t, note.Note, "300,000")
						return nil
					})
			},
		},
		{
			name: "Base desconhecida",
			req: func() *domain.CreateCommissionConfigRequest {
				req := validRequest()
				req.ApplyBase = "grossDeposit"
				return req
			},
			setupMocks:     func(*pgmocks.MockTransactor, *mocks.MockCommissionConfigRepository, *mocks.MockAuditNoteRepository) {},
			expectedErr:    ErrInvalidConfig,
			expectedCode:   apiErrors.ErrInvalidFormat,
			expectedFields: []string{"applyBase"},
		},
		{
			name: "Dias decorridos maiores que os dias do mês",
			req: func() *domain.CreateCommissionConfigRequest {
				req := validRequest()
				req.DaysElapsed = 31
				req.DaysInMonth = 30
				return req
			},
			setupMocks:     func(*pgmocks.MockTransactor, *mocks.MockCommissionConfigRepository, *mocks.MockAuditNoteRepository) {},
			expectedErr:    ErrInvalidConfig,
			expectedCode:   apiErrors.ErrInvalidFormat,
			expectedFields: []string{"daysInMonth"},
		},
		{
			name: "Faixas e pesos que seriam descartados",
			req: func() *domain.CreateCommissionConfigRequest {
				req := validRequest()
				req.BandsOpt = "abc:def"
				req.CompositeWeights = "1,2,3"
				return req
			},
			setupMocks:     func(*pgmocks.MockTransactor, *mocks.MockCommissionConfigRepository, *mocks.MockAuditNoteRepository) {},
			expectedErr:    ErrInvalidConfig,
			expectedCode:   apiErrors.ErrInvalidFormat,
			expectedFields: []string{"bandsOpt", "compositeWeights"},
		},
		{
			name: "Falha ao gravar",
			req:  validRequest,
			setupMocks: func(tx *pgmocks.MockTransactor, cfgRepo *mocks.MockCommissionConfigRepository, auditRepo *mocks.MockAuditNoteRepository) {
				tx.EXPECT().RunInTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(*sql.Tx) error) error { return fn(nil) })
				cfgRepo.EXPECT().WithTx(gomock.Any()).Return(cfgRepo)
				cfgRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("violação de constraint"))
			},
			expectedErr:  ErrSaveConfig,
			expectedCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tx := pgmocks.NewMockTransactor(ctrl)
			cfgRepo := mocks.NewMockCommissionConfigRepository(ctrl)
			auditRepo := mocks.NewMockAuditNoteRepository(ctrl)
			tt.setupMocks(tx, cfgRepo, auditRepo)

			service := NewService(tx, cfgRepo, auditRepo)
			resp, err := service.Create(context.Background(), "admin", tt.req())

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				var cfgErr *ConfigError
				require.ErrorAs(t, err, &cfgErr)
				assert.Equal(t, tt.expectedCode, cfgErr.Code)

				if len(tt.expectedFields) > 0 {
					details, ok := cfgErr.Details.(map[string]string)
					require.True(t, ok)
					for _, field := range tt.expectedFields {
						assert.Contains(t, details, field)
					}
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 9, resp.Config.ID)
			assert.Equal(t, []float64{30, 20, 20, 20, 10}, resp.Rules.CompositeWeights)
			assert.False(t, resp.Rules.WeightsDefaulted)
		})
	}
}

func TestService_SyncPaceCalendar(t *testing.T) {
	now := time.Date(2025, time.February, 12, 1, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		setupMocks      func(cfgRepo *mocks.MockCommissionConfigRepository)
		expectedChanged bool
		expectedErr     error
	}{
		{
			name: "Atualiza o calendário",
			setupMocks: func(cfgRepo *mocks.MockCommissionConfigRepository) {
				cfgRepo.EXPECT().GetActive(gomock.Any()).Return(&domain.CommissionConfig{ID: 4, DaysElapsed: 11, DaysInMonth: 28}, nil)
				cfgRepo.EXPECT().UpdatePaceCalendar(gomock.Any(), 4, 12, 28).Return(nil)
			},
			expectedChanged: true,
		},
		{
			name: "Calendário já alinhado",
			setupMocks: func(cfgRepo *mocks.MockCommissionConfigRepository) {
				cfgRepo.EXPECT().GetActive(gomock.Any()).Return(&domain.CommissionConfig{ID: 4, DaysElapsed: 12, DaysInMonth: 28}, nil)
			},
			expectedChanged: false,
		},
		{
			name: "Sem configuração",
			setupMocks: func(cfgRepo *mocks.MockCommissionConfigRepository) {
				cfgRepo.EXPECT().GetActive(gomock.Any()).Return(nil, nil)
			},
			expectedErr: ErrConfigNotFound,
		},
		{
			name: "Erro ao atualizar",
			setupMocks: func(cfgRepo *mocks.MockCommissionConfigRepository) {
				cfgRepo.EXPECT().GetActive(gomock.Any()).Return(&domain.CommissionConfig{ID: 4}, nil)
				cfgRepo.EXPECT().UpdatePaceCalendar(gomock.Any(), 4, 12, 28).Return(errors.New("deadlock"))
			},
			expectedErr: ErrSaveConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cfgRepo := mocks.NewMockCommissionConfigRepository(ctrl)
			tt.setupMocks(cfgRepo)

			service := NewService(pgmocks.NewMockTransactor(ctrl), cfgRepo, mocks.NewMockAuditNoteRepository(ctrl))
			cfg, changed, err := service.SyncPaceCalendar(context.Background(), now)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedChanged, changed)
			assert.Equal(t, 12, cfg.DaysElapsed)
			assert.Equal(t, 28, cfg.DaysInMonth)
		})
	}
}
