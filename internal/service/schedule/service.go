package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/worklane-hq/hrm-backend-go/internal/domain/employee"
	"github.com/worklane-hq/hrm-backend-go/internal/domain/schedule"
	"github.com/worklane-hq/hrm-backend-go/internal/pkg/database"
)

type ScheduleServiceImpl struct {
	db *database.DB
	schedule.WorkScheduleRepository
	employee.EmployeeRepository
}

func NewScheduleService(db *database.DB, workScheduleRepository schedule.WorkScheduleRepository, employeeRepository employee.EmployeeRepository) *ScheduleServiceImpl {
	return &ScheduleServiceImpl{
		db:                     db,
		WorkScheduleRepository: workScheduleRepository,
		EmployeeRepository:     employeeRepository,
	}
}

func (s *ScheduleServiceImpl) Create(ctx context.Context, req schedule.CreateWorkScheduleRequest) (schedule.WorkSchedule, error) {
	if err := req.Validate(); err != nil {
		return schedule.WorkSchedule{}, err
	}

	created, err := s.WorkScheduleRepository.Create(ctx, schedule.WorkSchedule{
		Name:               req.Name,
		WorkStart:          req.WorkStart,
		WorkEnd:            req.WorkEnd,
		GracePeriodMinutes: req.GracePeriodMinutes,
	})
	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to create work schedule: %w", err)
	}
	return created, nil
}

func (s *ScheduleServiceImpl) List(ctx context.Context) ([]schedule.WorkSchedule, error) {
	schedules, err := s.WorkScheduleRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedules: %w", err)
	}
	return schedules, nil
}

func (s *ScheduleServiceImpl) GetByID(ctx context.Context, id string) (schedule.WorkSchedule, error) {
	sched, err := s.WorkScheduleRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return schedule.WorkSchedule{}, err
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule: %w", err)
	}
	return sched, nil
}

func (s *ScheduleServiceImpl) Assign(ctx context.Context, req schedule.AssignScheduleRequest) error {
	if _, err := s.GetByID(ctx, req.WorkScheduleID); err != nil {
		return err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return err
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if err := s.EmployeeRepository.AssignSchedule(ctx, req.EmployeeID, req.WorkScheduleID); err != nil {
		return fmt.Errorf("failed to assign work schedule: %w", err)
	}
	return nil
}
