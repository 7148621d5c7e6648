package domain

import "time"

type AuditAction string

const (
	AuditActionKPISaved      AuditAction = "kpi_saved"
	AuditActionConfigCreated AuditAction = "config_created"
	AuditActionAgentCreated  AuditAction = "agent_created"
	AuditActionAgentUpdated  AuditAction = "agent_updated"
	AuditActionSnapshotRun   AuditAction = "snapshot_run"
)

type AuditNote struct {
	ID        int         `json:"id"`
	Action    AuditAction `json:"action"`
	Actor     string      `json:"actor"`
	Note      string      `json:"note"`
	CreatedAt time.Time   `json:"createdAt"`
}
