package postgres

import (
	"context"
	"time"

	"go-marketplace-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepo struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a repository that writes a user and its role
// record in one transaction.
func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) SaveWorkerProfile(ctx context.Context, user *domain.User, worker *domain.Worker) error {
	return r.inTx(ctx, user, func(tx pgx.Tx) error {
		worker.UserID = user.ID
		query := `
			INSERT INTO workers (user_id, skills, experience, hourly_rate, availability, certifications)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (user_id) DO UPDATE SET
				skills = EXCLUDED.skills,
				experience = EXCLUDED.experience,
				hourly_rate = EXCLUDED.hourly_rate,
				availability = EXCLUDED.availability,
				certifications = EXCLUDED.certifications
			RETURNING id`
		return tx.QueryRow(ctx, query,
			worker.UserID, pq.Array(nonNil(worker.Skills)), worker.Experience,
			worker.HourlyRate, worker.Availability, pq.Array(nonNil(worker.Certifications)),
		).Scan(&worker.ID)
	})
}

func (r *profileRepo) SaveContractorProfile(ctx context.Context, user *domain.User, contractor *domain.Contractor) error {
	return r.inTx(ctx, user, func(tx pgx.Tx) error {
		userID := user.ID
		contractor.UserID = &userID
		query := `
			INSERT INTO contractors (user_id, company_name, company_type, years_in_business, license_number, insurance_provider, website)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (user_id) DO UPDATE SET
				company_name = EXCLUDED.company_name,
				company_type = EXCLUDED.company_type,
				years_in_business = EXCLUDED.years_in_business,
				license_number = EXCLUDED.license_number,
				insurance_provider = EXCLUDED.insurance_provider,
				website = EXCLUDED.website
			RETURNING id`
		return tx.QueryRow(ctx, query,
			contractor.UserID, contractor.CompanyName, contractor.CompanyType, contractor.YearsInBusiness,
			contractor.LicenseNumber, contractor.InsuranceProvider, contractor.Website,
		).Scan(&contractor.ID)
	})
}

// inTx updates the user row then runs saveRole in the same transaction.
func (r *profileRepo) inTx(ctx context.Context, user *domain.User, saveRole func(pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	user.UpdatedAt = time.Now()
	if err := expectOne(tx.Exec(ctx, updateUserQuery, userUpdateArgs(user)...)); err != nil {
		return err
	}

	if err := saveRole(tx); err != nil {
		return mapError(err)
	}

	return tx.Commit(ctx)
}
