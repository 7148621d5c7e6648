package handler

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/commission-dashboard-api/pkg/apiErrors"
)

// callLog registra a ordem em que os jobs rodaram
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (c *callLog) add(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, name)
}

func (c *callLog) snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

type fakeJob struct {
	name      string
	calls     *callLog
	triggered int
	delay     time.Duration
}

func (f *fakeJob) Start(context.Context) error { return nil }
func (f *fakeJob) TriggerManualSync()          { f.triggered++ }
func (f *fakeJob) GetStatus() map[string]any   { return map[string]any{"triggered": f.triggered} }

func (f *fakeJob) RunNow(context.Context) {
	time.Sleep(f.delay)
	if f.calls != nil {
		f.calls.add(f.name)
	}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name             string
		cronType         string
		expectedStatus   int
		expectedSnapshot int
		expectedPace     int
	}{
		{name: "Fotografia", cronType: CronJobTypeSnapshot, expectedStatus: http.StatusAccepted, expectedSnapshot: 1},
		{name: "Calendário", cronType: CronJobTypePace, expectedStatus: http.StatusAccepted, expectedPace: 1},
		{name: "Tipo desconhecido", cronType: "meta", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot, pace := &fakeJob{}, &fakeJob{}
			services := CronJobServices{CommissionSnapshotService: snapshot, PaceCalendarService: pace}

			rec := serve(CronJobs(services), http.MethodPost, "/v1/admin/cron/"+tt.cronType+"/run", "")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedSnapshot, snapshot.triggered)
			assert.Equal(t, tt.expectedPace, pace.triggered)
			if tt.expectedStatus == http.StatusNotFound {
				assert.Equal(t, apiErrors.ErrJobNotFound, decodeAPIError(t, rec).Code)
			}
		})
	}
}

func TestRunCronJob_TodasRodaCalendarioAntesDaFotografia(t *testing.T) {
	calls := &callLog{}
	// o calendário demora mais; ainda assim a fotografia só começa depois dele
	pace := &fakeJob{name: "pace", calls: calls, delay: 30 * time.Millisecond}
	snapshot := &fakeJob{name: "snapshot", calls: calls}
	services := CronJobServices{CommissionSnapshotService: snapshot, PaceCalendarService: pace}

	rec := serve(CronJobs(services), http.MethodPost, "/v1/admin/cron/all/run", "")

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Eventually(t, func() bool { return len(calls.snapshot()) == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"pace", "snapshot"}, calls.snapshot())
	assert.Zero(t, pace.triggered)
	assert.Zero(t, snapshot.triggered)
}

func TestRunCronJob_TodasSemCalendario(t *testing.T) {
	calls := &callLog{}
	services := CronJobServices{CommissionSnapshotService: &fakeJob{name: "snapshot", calls: calls}}

	rec := serve(CronJobs(services), http.MethodPost, "/v1/admin/cron/all/run", "")

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Eventually(t, func() bool { return len(calls.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"snapshot"}, calls.snapshot())
}

func TestRunCronJob_ServicoIndisponivel(t *testing.T) {
	rec := serve(CronJobs(CronJobServices{}), http.MethodPost, "/v1/admin/cron/snapshot/run", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetCronStatus(t *testing.T) {
	services := CronJobServices{CommissionSnapshotService: &fakeJob{triggered: 2}}

	rec := serve(CronJobs(services), http.MethodGet, "/v1/admin/cron/status", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"snapshot":{"triggered":2}}`, rec.Body.String())
}
