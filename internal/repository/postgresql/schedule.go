package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/schedule"
	"github.com/worklane-hq/hrm-backend-go/internal/pkg/database"
)

type workScheduleRepositoryImpl struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepositoryImpl{db: db}
}

func scanWorkSchedule(row pgx.Row) (schedule.WorkSchedule, error) {
	var ws schedule.WorkSchedule
	err := row.Scan(
		&ws.ID,
		&ws.Name,
		&ws.WorkStart,
		&ws.WorkEnd,
		&ws.GracePeriodMinutes,
		&ws.CreatedAt,
		&ws.UpdatedAt,
	)
	return ws, err
}

func (r *workScheduleRepositoryImpl) Create(ctx context.Context, sched schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_schedules (id, name, work_start, work_end, grace_period_minutes, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		sched.Name,
		sched.WorkStart,
		sched.WorkEnd,
		sched.GracePeriodMinutes,
	).Scan(&sched.ID, &sched.CreatedAt, &sched.UpdatedAt)
	if err != nil {
		return schedule.WorkSchedule{}, err
	}
	return sched, nil
}

func (r *workScheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, work_start, work_end, grace_period_minutes, created_at, updated_at
		FROM work_schedules
		WHERE id = $1
	`

	ws, err := scanWorkSchedule(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.WorkSchedule{}, err
	}
	return ws, nil
}

func (r *workScheduleRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ws.id, ws.name, ws.work_start, ws.work_end, ws.grace_period_minutes, ws.created_at, ws.updated_at
		FROM work_schedules ws
		INNER JOIN employees e ON e.work_schedule_id = ws.id
		WHERE e.id = $1
	`

	ws, err := scanWorkSchedule(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.WorkSchedule{}, err
	}
	return ws, nil
}

func (r *workScheduleRepositoryImpl) List(ctx context.Context) ([]schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, work_start, work_end, grace_period_minutes, created_at, updated_at
		FROM work_schedules
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []schedule.WorkSchedule
	for rows.Next() {
		ws, err := scanWorkSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, ws)
	}
	return schedules, rows.Err()
}

func (r *workScheduleRepositoryImpl) Update(ctx context.Context, sched schedule.WorkSchedule) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_schedules
		SET name = $2, work_start = $3, work_end = $4, grace_period_minutes = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		sched.ID,
		sched.Name,
		sched.WorkStart,
		sched.WorkEnd,
		sched.GracePeriodMinutes,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}
	return nil
}

func (r *workScheduleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM work_schedules
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}
	return nil
}
