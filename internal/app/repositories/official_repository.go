package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/karmachari/portal/internal/app/models"
	"github.com/karmachari/portal/internal/pkg/apperrors"
)

var officialColumns = []string{"id", "full_name", "email", "phone", "role", "password_hash", "created_at"}

var officialUniqueFields = map[string]string{
	"officials_email_key": "email",
}

// OfficialRepository handles database operations for officials
type OfficialRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewOfficialRepository creates a new official repository
func NewOfficialRepository(db DBTX) *OfficialRepository {
	return &OfficialRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanOfficial(row scanner) (*models.Official, error) {
	var o models.Official
	if err := row.Scan(&o.ID, &o.FullName, &o.Email, &o.Phone, &o.Role, &o.PasswordHash, &o.CreatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserts an official
func (r *OfficialRepository) Create(ctx context.Context, official *models.Official) error {
	sql, args, err := r.sb.Insert("officials").
		Columns("full_name", "email", "phone", "role", "password_hash").
		Values(official.FullName, official.Email, official.Phone, official.Role, official.PasswordHash).
		Suffix("RETURNING " + joinColumns(officialColumns)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create official query: %w", err)
	}

	created, err := scanOfficial(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return translateError(err, "error creating official", nil, officialUniqueFields)
	}

	*official = *created
	return nil
}

// List returns every official ordered by id
func (r *OfficialRepository) List(ctx context.Context) ([]*models.Official, error) {
	sb := r.sb.Select(officialColumns...).From("officials").OrderBy("id")
	return queryList(ctx, r.db, sb, "error listing officials", scanOfficial)
}

// GetByEmail retrieves an official by email
func (r *OfficialRepository) GetByEmail(ctx context.Context, email string) (*models.Official, error) {
	sql, args, err := r.sb.Select(officialColumns...).From("officials").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get official query: %w", err)
	}

	official, err := scanOfficial(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err, "error retrieving official", apperrors.ErrOfficialNotFound, nil)
	}
	return official, nil
}
