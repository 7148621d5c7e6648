package repository

//go:generate mockgen -source=audit_note.go -destination=mocks/audit_note.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/commission-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/commission-dashboard-api/internal/domain"
)

const (
	auditNotesTable = "audit_notes"
)

type AuditNoteRepository interface {
	Create(ctx context.Context, note *domain.AuditNote) error
	List(ctx context.Context, limit int) ([]*domain.AuditNote, error)
	WithTx(tx *sql.Tx) AuditNoteRepository
}

type auditNoteRepository struct {
	db postgres.Queryer
}

func NewAuditNoteRepository(conn *postgres.Connection) AuditNoteRepository {
	return &auditNoteRepository{
		db: conn,
	}
}

func (r *auditNoteRepository) WithTx(tx *sql.Tx) AuditNoteRepository {
	return &auditNoteRepository{db: tx}
}

func (r *auditNoteRepository) Create(ctx context.Context, note *domain.AuditNote) error {
	query, args, err := squirrel.
		Insert(auditNotesTable).
		Columns("action", "actor", "note").
		Values(string(note.Action), note.Actor, note.Note).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&note.ID, &note.CreatedAt); err != nil {
		return fmt.Errorf("erro ao inserir nota de auditoria: %w", err)
	}

	return nil
}

func (r *auditNoteRepository) List(ctx context.Context, limit int) ([]*domain.AuditNote, error) {
	query, args, err := squirrel.
		Select("id", "action", "actor", "note", "created_at").
		From(auditNotesTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	notes := make([]*domain.AuditNote, 0)
	for rows.Next() {
		var note domain.AuditNote
		var action string
		if err := rows.Scan(&note.ID, &action, &note.Actor, &note.Note, &note.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear nota de auditoria: %w", err)
		}
		note.Action = domain.AuditAction(action)
		notes = append(notes, &note)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return notes, nil
}
