package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Hayzedd-A/appointment-booking/internal/domain"
	"github.com/Hayzedd-A/appointment-booking/pkg/psqlbuilder"
	"github.com/Hayzedd-A/appointment-booking/pkg/txmanager"
)

// Repository репозиторий для работы с настройками расписания
// В таблице хранится единственная строка; Get возвращает её,
// Create/Update поддерживают singleton-семантику
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает настройки расписания
// Возвращает ErrSettingsNotFound, если настройки ещё не созданы
func (r *Repository) Get(ctx context.Context) (*domain.ScheduleSettings, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"working_days",
		"start_time",
		"end_time",
		"session_duration_minutes",
		"created_at",
		"updated_at",
	).
		From("schedule_settings").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.ScheduleSettings
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		pq.Array(&s.WorkingDays),
		&s.StartTime,
		&s.EndTime,
		&s.SessionDurationMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Create создает строку настроек
// Используется только когда настроек ещё нет (первое чтение с дефолтами)
func (r *Repository) Create(ctx context.Context, s *domain.ScheduleSettings) (*domain.ScheduleSettings, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_settings").
		Columns(
			"working_days",
			"start_time",
			"end_time",
			"session_duration_minutes",
		).
		Values(
			pq.Array(s.WorkingDays),
			s.StartTime,
			s.EndTime,
			s.SessionDurationMinutes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// Update заменяет настройки целиком
// Возвращает ErrSettingsNotFound, если строка с указанным id не существует
func (r *Repository) Update(ctx context.Context, s *domain.ScheduleSettings) (*domain.ScheduleSettings, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedule_settings").
		Set("working_days", pq.Array(s.WorkingDays)).
		Set("start_time", s.StartTime).
		Set("end_time", s.EndTime).
		Set("session_duration_minutes", s.SessionDurationMinutes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}
