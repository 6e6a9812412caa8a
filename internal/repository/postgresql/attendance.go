package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/attendance"
	"github.com/worklane-hq/hrm-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.clock_in, a.clock_out, a.work_start, a.work_end,
	a.expected_hours, a.worked_hours, a.break_hours, a.status, a.created_at, a.updated_at,
	e.full_name
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.EmployeeID,
		&a.Date,
		&a.ClockIn,
		&a.ClockOut,
		&a.WorkStart,
		&a.WorkEnd,
		&a.ExpectedHours,
		&a.WorkedHours,
		&a.BreakHours,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.EmployeeName,
	)
	return a, err
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, date, clock_in, work_start, work_end,
			expected_hours, status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		att.Date,
		att.ClockIn,
		att.WorkStart,
		att.WorkEnd,
		att.ExpectedHours,
		att.Status,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, err
	}
	return att, nil
}

func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		INNER JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	a, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}
	return a, nil
}

func (r *attendanceRepositoryImpl) GetOpenByEmployee(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		INNER JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.status = 'open'
		ORDER BY a.clock_in DESC
		LIMIT 1
	`

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNotClockedIn
		}
		return attendance.Attendance{}, err
	}
	return a, nil
}

func (r *attendanceRepositoryImpl) HasClockedIn(ctx context.Context, employeeID string, dateLocal string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM attendances WHERE employee_id = $1 AND date = $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, dateLocal).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET clock_out = $2, worked_hours = $3, break_hours = $4, status = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		att.ID,
		att.ClockOut,
		att.WorkedHours,
		att.BreakHours,
		att.Status,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

func (r *attendanceRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string, from, to string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		INNER JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
		  AND ($2 = '' OR a.date >= $2)
		  AND ($3 = '' OR a.date <= $3)
		ORDER BY a.date DESC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

func (r *attendanceRepositoryImpl) ListByMonth(ctx context.Context, month, year int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	// date is stored as a YYYY-MM-DD string, so prefix matching selects the month.
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		INNER JOIN employees e ON e.id = a.employee_id
		WHERE a.date LIKE to_char(make_date($2, $1, 1), 'YYYY-MM') || '%'
		ORDER BY e.full_name ASC, a.date ASC
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

func (r *attendanceRepositoryImpl) CreateBreak(ctx context.Context, brk attendance.AttendanceBreak) (attendance.AttendanceBreak, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_breaks (id, attendance_id, pause_time, pause_location, created_at)
		VALUES (uuidv7(), $1, $2, $3, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		brk.AttendanceID,
		brk.PauseTime,
		brk.PauseLocation,
	).Scan(&brk.ID, &brk.CreatedAt)
	if err != nil {
		return attendance.AttendanceBreak{}, err
	}
	return brk, nil
}

func (r *attendanceRepositoryImpl) GetActiveBreak(ctx context.Context, attendanceID string) (attendance.AttendanceBreak, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, attendance_id, pause_time, resume_time, pause_location, resume_location, created_at
		FROM attendance_breaks
		WHERE attendance_id = $1 AND resume_time IS NULL
		LIMIT 1
	`

	var brk attendance.AttendanceBreak
	err := q.QueryRow(ctx, query, attendanceID).Scan(
		&brk.ID,
		&brk.AttendanceID,
		&brk.PauseTime,
		&brk.ResumeTime,
		&brk.PauseLocation,
		&brk.ResumeLocation,
		&brk.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceBreak{}, attendance.ErrNoActiveBreak
		}
		return attendance.AttendanceBreak{}, err
	}
	return brk, nil
}

func (r *attendanceRepositoryImpl) CloseBreak(ctx context.Context, brk attendance.AttendanceBreak) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_breaks
		SET resume_time = $2, resume_location = $3
		WHERE id = $1 AND resume_time IS NULL
	`

	tag, err := q.Exec(ctx, query, brk.ID, brk.ResumeTime, brk.ResumeLocation)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrNoActiveBreak
	}
	return nil
}

func (r *attendanceRepositoryImpl) GetBreaks(ctx context.Context, attendanceID string) ([]attendance.AttendanceBreak, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, attendance_id, pause_time, resume_time, pause_location, resume_location, created_at
		FROM attendance_breaks
		WHERE attendance_id = $1
		ORDER BY pause_time ASC
	`

	rows, err := q.Query(ctx, query, attendanceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var breaks []attendance.AttendanceBreak
	for rows.Next() {
		var brk attendance.AttendanceBreak
		err := rows.Scan(
			&brk.ID,
			&brk.AttendanceID,
			&brk.PauseTime,
			&brk.ResumeTime,
			&brk.PauseLocation,
			&brk.ResumeLocation,
			&brk.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		breaks = append(breaks, brk)
	}
	return breaks, rows.Err()
}
