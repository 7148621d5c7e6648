// Package scheduler agenda os jobs periódicos com gocron
package scheduler

import (
	"context"
)

// Nomes dos jobs, usados nos logs, nas métricas e na rota de execução manual
const (
	JobCommissionSnapshot = "commission_snapshot"
	JobPaceCalendar       = "pace_calendar"
)

// Job é um serviço agendado que também pode ser disparado manualmente
type Job interface {
	Start(ctx context.Context) error
	// RunNow executa uma rodada e só retorna ao final dela
	RunNow(ctx context.Context)
	TriggerManualSync()
	GetStatus() map[string]any
}

// RunInOrder executa os jobs um após o outro, ignorando os nulos
func RunInOrder(ctx context.Context, jobs ...Job) {
	for _, job := range jobs {
		if job == nil {
			continue
		}
		job.RunNow(ctx)
	}
}
