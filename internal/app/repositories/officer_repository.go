package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/karmachari/portal/internal/app/models"
)

var officerColumns = []string{"id", "name", "phone_no", "email", "district", "created_at"}

// OfficerRepository handles one of the ALO or DLO registration tables
type OfficerRepository struct {
	db           DBTX
	sb           squirrel.StatementBuilderType
	table        string
	uniqueFields map[string]string
}

// NewOfficerRepository creates a repository over the registration table of kind
func NewOfficerRepository(db DBTX, kind models.OfficerKind) *OfficerRepository {
	table := string(kind) + "_registrations"
	return &OfficerRepository{
		db:    db,
		sb:    newStatementBuilder(),
		table: table,
		uniqueFields: map[string]string{
			table + "_phone_no_key": "phone_no",
			table + "_email_key":    "email",
		},
	}
}

func scanOfficer(row scanner) (*models.Officer, error) {
	var o models.Officer
	if err := row.Scan(&o.ID, &o.Name, &o.PhoneNo, &o.Email, &o.District, &o.CreatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserts an officer registration
func (r *OfficerRepository) Create(ctx context.Context, officer *models.Officer) error {
	sql, args, err := r.sb.Insert(r.table).
		Columns("name", "phone_no", "email", "district").
		Values(officer.Name, officer.PhoneNo, officer.Email, officer.District).
		Suffix("RETURNING " + joinColumns(officerColumns)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create officer query: %w", err)
	}

	created, err := scanOfficer(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return translateError(err, "error creating officer", nil, r.uniqueFields)
	}

	*officer = *created
	return nil
}

// List returns every registration in the table ordered by id
func (r *OfficerRepository) List(ctx context.Context) ([]*models.Officer, error) {
	sb := r.sb.Select(officerColumns...).From(r.table).OrderBy("id")
	return queryList(ctx, r.db, sb, "error listing officers", scanOfficer)
}
