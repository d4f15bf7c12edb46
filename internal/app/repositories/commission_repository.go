package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/karmachari/portal/internal/app/models"
	"github.com/karmachari/portal/internal/pkg/apperrors"
)

var commissionColumns = []string{"id", "name", "phone_no", "email", "created_at", "updated_at"}

var commissionUniqueFields = map[string]string{
	"commissions_email_key": "email",
}

// CommissionRepository handles database operations for commission members
type CommissionRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewCommissionRepository creates a new commission repository
func NewCommissionRepository(db DBTX) *CommissionRepository {
	return &CommissionRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanCommission(row scanner) (*models.Commission, error) {
	var c models.Commission
	if err := row.Scan(&c.ID, &c.Name, &c.PhoneNo, &c.Email, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a commission member
func (r *CommissionRepository) Create(ctx context.Context, commission *models.Commission) error {
	sql, args, err := r.sb.Insert("commissions").
		Columns("name", "phone_no", "email").
		Values(commission.Name, commission.PhoneNo, commission.Email).
		Suffix("RETURNING " + joinColumns(commissionColumns)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create commission query: %w", err)
	}

	created, err := scanCommission(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return translateError(err, "error creating commission", nil, commissionUniqueFields)
	}

	*commission = *created
	return nil
}

// List returns every commission member ordered by id
func (r *CommissionRepository) List(ctx context.Context) ([]*models.Commission, error) {
	sb := r.sb.Select(commissionColumns...).From("commissions").OrderBy("id")
	return queryList(ctx, r.db, sb, "error listing commissions", scanCommission)
}

// Update applies column changes and bumps updated_at
func (r *CommissionRepository) Update(ctx context.Context, id int64, changes map[string]interface{}) (*models.Commission, error) {
	sql, args, err := r.sb.Update("commissions").
		SetMap(changes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(commissionColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update commission query: %w", err)
	}

	commission, err := scanCommission(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err, "error updating commission", apperrors.ErrCommissionNotFound, commissionUniqueFields)
	}
	return commission, nil
}
