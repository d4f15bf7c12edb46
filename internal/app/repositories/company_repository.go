package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/karmachari/portal/internal/app/models"
)

var companyColumns = []string{
	"id", "name", "phone", "gst_number", "email", "lrn", "category", "district", "address", "description",
	"eoi_letter", "registration_certificate", "created_at",
}

var companyUniqueFields = map[string]string{
	"companies_gst_number_key": "gst_number",
	"companies_email_key":      "email",
	"companies_lrn_key":        "lrn",
}

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db DBTX) *CompanyRepository {
	return &CompanyRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanCompany(row scanner) (*models.Company, error) {
	var c models.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Phone, &c.GSTNumber, &c.Email, &c.LRN, &c.Category, &c.District, &c.Address,
		&c.Description, &c.EOILetter, &c.RegistrationCertificate, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a company
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	sql, args, err := r.sb.Insert("companies").
		Columns("name", "phone", "gst_number", "email", "lrn", "category", "district", "address", "description",
			"eoi_letter", "registration_certificate").
		Values(company.Name, company.Phone, company.GSTNumber, company.Email, company.LRN, company.Category,
			company.District, company.Address, company.Description, company.EOILetter, company.RegistrationCertificate).
		Suffix("RETURNING " + joinColumns(companyColumns)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create company query: %w", err)
	}

	created, err := scanCompany(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return translateError(err, "error creating company", nil, companyUniqueFields)
	}

	*company = *created
	return nil
}

// List returns every company ordered by id
func (r *CompanyRepository) List(ctx context.Context) ([]*models.Company, error) {
	sb := r.sb.Select(companyColumns...).From("companies").OrderBy("id")
	return queryList(ctx, r.db, sb, "error listing companies", scanCompany)
}
