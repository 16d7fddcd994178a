package postgres

import (
	"errors"
	"fmt"
	"testing"

	"go-marketplace-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestBuildJobQuery(t *testing.T) {
	t.Run("no filter", func(t *testing.T) {
		query, args := buildJobQuery(domain.JobFilter{})
		assert.NotContains(t, query, "WHERE")
		assert.Empty(t, args)
	})

	t.Run("all filters numbered in order", func(t *testing.T) {
		contractorID := int64(9)
		query, args := buildJobQuery(domain.JobFilter{
			Status:       "OPEN",
			Location:     "Austin",
			Query:        "plumber",
			Skill:        "pex",
			ContractorID: &contractorID,
		})
		assert.Contains(t, query, "status = $1 AND location ILIKE $2 AND title ILIKE $3 AND skills_required ILIKE $4 AND contractor_id = $5")
		assert.Equal(t, []any{"OPEN", "%Austin%", "%plumber%", "%pex%", int64(9)}, args)
	})
}

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil))
	assert.ErrorIs(t, mapError(pgx.ErrNoRows), domain.ErrNotFound)
	assert.ErrorIs(t, mapError(fmt.Errorf("scan: %w", pgx.ErrNoRows)), domain.ErrNotFound)
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: pgUniqueViolation}), domain.ErrDuplicate)
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: pgForeignKeyViolation}), domain.ErrNotFound)

	other := errors.New("boom")
	assert.Equal(t, other, mapError(other))
}

func TestExpectOne(t *testing.T) {
	assert.ErrorIs(t, expectOne(pgconn.NewCommandTag("DELETE 0"), nil), domain.ErrNotFound)
	assert.NoError(t, expectOne(pgconn.NewCommandTag("DELETE 1"), nil))
	assert.ErrorIs(t, expectOne(pgconn.CommandTag{}, pgx.ErrNoRows), domain.ErrNotFound)
}
