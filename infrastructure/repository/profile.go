// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	profilesTable = "profiles"
	goalsTable    = "kpi_goals"
)

//go:generate mockgen -source=profile.go -destination=mocks/profile.go -package=mocks

type ProfileRepository interface {
	// GetProfile retorna nil quando o cliente não existe
	GetProfile(ctx context.Context, peopleID string) (*domain.Profile, error)
	ListKPIProfiles(ctx context.Context) ([]string, error)
	SaveGoal(ctx context.Context, goal *domain.Goal) error
}

type profileRepository struct {
	conn postgres.Queryer
}

func NewProfileRepository(conn postgres.Queryer) ProfileRepository {
	return &profileRepository{
		conn: conn,
	}
}

func selectProfileQuery(peopleID string) (string, []any, error) {
	return squirrel.
		Select("people_id", "kpi_control", "dashboard_order_control", "created_at", "updated_at").
		From(profilesTable).
		Where(squirrel.Eq{"people_id": peopleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func selectGoalsQuery(peopleID string) (string, []any, error) {
	return squirrel.
		Select("metric", "period", "target").
		From(goalsTable).
		Where(squirrel.Eq{"people_id": peopleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func upsertGoalQuery(goal *domain.Goal) (string, []any, error) {
	return squirrel.
		Insert(goalsTable).
		Columns("id", "people_id", "metric", "period", "target").
		Values(goal.ID, goal.PeopleID, string(goal.Metric), goal.Month.String(), goal.Target).
		Suffix("ON CONFLICT (people_id, metric, period) DO UPDATE SET target = EXCLUDED.target, updated_at = NOW() RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *profileRepository) GetProfile(ctx context.Context, peopleID string) (*domain.Profile, error) {
	query, args, err := selectProfileQuery(peopleID)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	profile := &domain.Profile{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&profile.PeopleID,
		&profile.KPIEnabled,
		&profile.OrderManagementEnabled,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDatabaseError(err)
	}

	profile.GMVGoals, profile.TPVGoals, err = r.getGoals(ctx, peopleID)
	if err != nil {
		return nil, err
	}

	return profile, nil
}

func (r *profileRepository) getGoals(ctx context.Context, peopleID string) (domain.GoalTable, domain.GoalTable, error) {
	query, args, err := selectGoalsQuery(peopleID)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, wrapDatabaseError(err)
	}
	defer rows.Close()

	gmv := domain.GoalTable{}
	tpv := domain.GoalTable{}

	for rows.Next() {
		var metric, period, target string
		if err := rows.Scan(&metric, &period, &target); err != nil {
			return nil, nil, fmt.Errorf("erro ao escanear meta: %w", err)
		}

		month, err := domain.ParseMonthKey(period)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"people_id": peopleID,
				"period":    period,
			}).Warn("Meta com período inválido ignorada")
			continue
		}

		value, err := decimal.NewFromString(target)
		if err != nil {
			value = decimal.Zero
		}

		switch domain.GoalMetric(metric) {
		case domain.GoalMetricGMV:
			gmv[month] = value
		case domain.GoalMetricTPV:
			tpv[month] = value
		}
	}

	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return gmv, tpv, nil
}

func (r *profileRepository) ListKPIProfiles(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("people_id").
		From(profilesTable).
		Where(squirrel.Eq{"kpi_control": true}).
		OrderBy("people_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDatabaseError(err)
	}
	defer rows.Close()

	peopleIDs := make([]string, 0)
	for rows.Next() {
		var peopleID string
		if err := rows.Scan(&peopleID); err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		peopleIDs = append(peopleIDs, peopleID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return peopleIDs, nil
}

// SaveGoal insere ou atualiza a meta do mês. O ID só é gerado para metas novas.
func (r *profileRepository) SaveGoal(ctx context.Context, goal *domain.Goal) error {
	if goal.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id da meta: %w", err)
		}
		goal.ID = id
	}

	query, args, err := upsertGoalQuery(goal)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&goal.ID); err != nil {
		return wrapDatabaseError(err)
	}

	return nil
}

func wrapDatabaseError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}
