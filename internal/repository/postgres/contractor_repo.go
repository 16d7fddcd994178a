package postgres

import (
	"context"

	"go-marketplace-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const contractorColumns = `id, user_id, company_name, company_type, years_in_business, license_number, insurance_provider, website`

type contractorRepo struct {
	db *pgxpool.Pool
}

func NewContractorRepository(db *pgxpool.Pool) domain.ContractorRepository {
	return &contractorRepo{db: db}
}

func scanContractor(row pgx.Row) (*domain.Contractor, error) {
	var c domain.Contractor
	err := row.Scan(
		&c.ID, &c.UserID, &c.CompanyName, &c.CompanyType, &c.YearsInBusiness,
		&c.LicenseNumber, &c.InsuranceProvider, &c.Website,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

func (r *contractorRepo) Create(ctx context.Context, c *domain.Contractor) error {
	query := `
		INSERT INTO contractors (user_id, company_name, company_type, years_in_business, license_number, insurance_provider, website)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		c.UserID, c.CompanyName, c.CompanyType, c.YearsInBusiness,
		c.LicenseNumber, c.InsuranceProvider, c.Website,
	).Scan(&c.ID)
	return mapError(err)
}

func (r *contractorRepo) GetByID(ctx context.Context, id int64) (*domain.Contractor, error) {
	return scanContractor(r.db.QueryRow(ctx, `SELECT `+contractorColumns+` FROM contractors WHERE id = $1`, id))
}

func (r *contractorRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Contractor, error) {
	return scanContractor(r.db.QueryRow(ctx, `SELECT `+contractorColumns+` FROM contractors WHERE user_id = $1`, userID))
}

func (r *contractorRepo) List(ctx context.Context) ([]domain.Contractor, error) {
	rows, err := r.db.Query(ctx, `SELECT `+contractorColumns+` FROM contractors ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contractors := []domain.Contractor{}
	for rows.Next() {
		c, err := scanContractor(rows)
		if err != nil {
			return nil, err
		}
		contractors = append(contractors, *c)
	}
	return contractors, rows.Err()
}

func (r *contractorRepo) Update(ctx context.Context, c *domain.Contractor) error {
	return expectOne(r.db.Exec(ctx, updateContractorQuery, contractorUpdateArgs(c)...))
}

func (r *contractorRepo) Delete(ctx context.Context, id int64) error {
	return expectOne(r.db.Exec(ctx, `DELETE FROM contractors WHERE id = $1`, id))
}

const updateContractorQuery = `
	UPDATE contractors
	SET user_id = $2, company_name = $3, company_type = $4, years_in_business = $5,
	    license_number = $6, insurance_provider = $7, website = $8
	WHERE id = $1`

func contractorUpdateArgs(c *domain.Contractor) []any {
	return []any{c.ID, c.UserID, c.CompanyName, c.CompanyType, c.YearsInBusiness, c.LicenseNumber, c.InsuranceProvider, c.Website}
}
