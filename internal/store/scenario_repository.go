package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fedplan/tsp-simulator/internal/domain"
)

// ScenarioRepository provides data access for saved projection
// scenarios. The comparator fetches scenarios by ID through it.
type ScenarioRepository struct {
	db *sql.DB
}

// NewScenarioRepository creates a repository over the given connection.
func NewScenarioRepository(db *sql.DB) *ScenarioRepository {
	return &ScenarioRepository{db: db}
}

// Insert stores a scenario, generating an ID when the caller left it
// empty, and returns the stored ID.
func (r *ScenarioRepository) Insert(ctx context.Context, s *domain.Scenario) (string, error) {
	id := s.ID
	if id == "" {
		id = uuid.New().String()
	}

	query := `
        INSERT INTO scenario (
            id, profile_id, name, current_balance, as_of_date,
            contribution_percent, annual_base_pay, annual_pay_growth_percent,
            alloc_g, alloc_f, alloc_c, alloc_s, alloc_i, alloc_lifecycle,
            lifecycle_target_year, return_mode, fixed_annual_percent,
            retirement_age, birth_year
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `

	_, err := r.db.ExecContext(ctx, query,
		id,
		s.ProfileID,
		s.Name,
		s.CurrentBalance.String(),
		s.AsOfDate.Format(dateLayout),
		s.ContributionPercent.String(),
		s.AnnualBasePay.String(),
		s.AnnualPayGrowthPercent.String(),
		s.Allocation.GFund.String(),
		s.Allocation.FFund.String(),
		s.Allocation.CFund.String(),
		s.Allocation.SFund.String(),
		s.Allocation.IFund.String(),
		s.Allocation.Lifecycle.String(),
		nullableInt(s.Allocation.LifecycleTargetYear),
		string(s.Returns.Mode),
		s.Returns.FixedAnnualPercent.String(),
		nullableIntPtr(s.RetirementAge),
		nullableIntPtr(s.BirthYear),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert scenario %q: %w", s.Name, err)
	}

	return id, nil
}

// Get retrieves a scenario by ID. Returns nil, nil when no scenario
// exists with that ID.
func (r *ScenarioRepository) Get(ctx context.Context, id string) (*domain.Scenario, error) {
	query := `
        SELECT id, profile_id, name, current_balance, as_of_date,
               contribution_percent, annual_base_pay, annual_pay_growth_percent,
               alloc_g, alloc_f, alloc_c, alloc_s, alloc_i, alloc_lifecycle,
               lifecycle_target_year, return_mode, fixed_annual_percent,
               retirement_age, birth_year
        FROM scenario
        WHERE id = ?
    `
	s, err := scanScenario(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scenario %s: %w", id, err)
	}
	return s, nil
}

// ListByProfile retrieves all scenarios belonging to a profile, ordered
// by name.
func (r *ScenarioRepository) ListByProfile(ctx context.Context, profileID string) ([]domain.Scenario, error) {
	query := `
        SELECT id, profile_id, name, current_balance, as_of_date,
               contribution_percent, annual_base_pay, annual_pay_growth_percent,
               alloc_g, alloc_f, alloc_c, alloc_s, alloc_i, alloc_lifecycle,
               lifecycle_target_year, return_mode, fixed_annual_percent,
               retirement_age, birth_year
        FROM scenario
        WHERE profile_id = ?
        ORDER BY name ASC
    `
	rows, err := r.db.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query scenario table: %w", err)
	}
	defer rows.Close()

	scenarios := []domain.Scenario{}
	for rows.Next() {
		s, err := scanScenario(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scenario row: %w", err)
		}
		scenarios = append(scenarios, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scenario rows: %w", err)
	}

	return scenarios, nil
}

// Delete removes a scenario by ID. Returns sql.ErrNoRows when nothing
// was deleted.
func (r *ScenarioRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM scenario WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete scenario %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScenario(row rowScanner) (*domain.Scenario, error) {
	var (
		s                                    domain.Scenario
		asOfStr, modeStr                     string
		balance, contribPct, basePay, payGro string
		g, f, c, sf, i, lc, fixedPct         string
		targetYear, retAge, birthYear        sql.NullInt64
	)

	err := row.Scan(
		&s.ID, &s.ProfileID, &s.Name, &balance, &asOfStr,
		&contribPct, &basePay, &payGro,
		&g, &f, &c, &sf, &i, &lc,
		&targetYear, &modeStr, &fixedPct,
		&retAge, &birthYear,
	)
	if err != nil {
		return nil, err
	}

	if s.AsOfDate, err = time.Parse(dateLayout, asOfStr); err != nil {
		return nil, fmt.Errorf("failed to parse as_of_date %q: %w", asOfStr, err)
	}

	fields := []struct {
		dst *decimal.Decimal
		src string
	}{
		{&s.CurrentBalance, balance},
		{&s.ContributionPercent, contribPct},
		{&s.AnnualBasePay, basePay},
		{&s.AnnualPayGrowthPercent, payGro},
		{&s.Allocation.GFund, g},
		{&s.Allocation.FFund, f},
		{&s.Allocation.CFund, c},
		{&s.Allocation.SFund, sf},
		{&s.Allocation.IFund, i},
		{&s.Allocation.Lifecycle, lc},
		{&s.Returns.FixedAnnualPercent, fixedPct},
	}
	for _, field := range fields {
		if *field.dst, err = decimal.NewFromString(field.src); err != nil {
			return nil, fmt.Errorf("failed to parse decimal %q: %w", field.src, err)
		}
	}

	s.Returns.Mode = domain.ReturnMode(modeStr)
	if targetYear.Valid {
		s.Allocation.LifecycleTargetYear = int(targetYear.Int64)
	}
	if retAge.Valid {
		v := int(retAge.Int64)
		s.RetirementAge = &v
	}
	if birthYear.Valid {
		v := int(birthYear.Int64)
		s.BirthYear = &v
	}

	return &s, nil
}

func nullableInt(v int) any {
	if v == 0 {
		return nil
	}
	return v
}

func nullableIntPtr(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
