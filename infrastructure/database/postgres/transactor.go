package postgres

//go:generate mockgen -source=transactor.go -destination=mocks/transactor.go -package=mocks

import (
	"context"
	"database/sql"
)

// Transactor executa fn dentro de uma transação: commit se fn retornar nil, rollback caso contrário
type Transactor interface {
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}
