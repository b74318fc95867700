package user

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TimeSlotService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TimeSlotService/pkg/psqlbuilder"
)

const tableName = "users"

// Repository репозиторий пользователей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Exists проверяет, что пользователь с указанным ID существует
func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	subQuery := psqlbuilder.Select("1").
		From(tableName).
		Where(squirrel.Eq{"id": id})

	query, args, err := psqlbuilder.Select().
		Column(squirrel.Expr("EXISTS (?)", subQuery)).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: Exists - execute query: %w", ErrExecQuery, err)
	}

	return exists, nil
}
