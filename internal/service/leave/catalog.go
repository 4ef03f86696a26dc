package leave

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/origin8hq/lms-backend-go/internal/domain/leave"
)

func (s *Service) ListTypes(ctx context.Context) ([]leave.LeaveTypeResponse, error) {
	types, err := s.types.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}

	responses := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, t := range types {
		responses = append(responses, leave.ToLeaveTypeResponse(t))
	}
	return responses, nil
}

func (s *Service) CreateType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveType, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveType{}, err
	}

	leaveType := leave.LeaveType{
		ID:            uuid.NewString(),
		Name:          req.Name,
		AllowsFullDay: req.AllowsFullDay,
		AllowsHalfDay: req.AllowsHalfDay,
		AllowsHourly:  req.AllowsHourly,
	}

	created, err := s.types.Create(ctx, leaveType)
	if err != nil {
		return leave.LeaveType{}, fmt.Errorf("failed to create leave type: %w", err)
	}
	return created, nil
}

func (s *Service) UpdateType(ctx context.Context, req leave.UpdateLeaveTypeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	leaveType, err := s.types.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveTypeNotFound
		}
		return fmt.Errorf("failed to get leave type: %w", err)
	}

	if req.Name != nil {
		leaveType.Name = *req.Name
	}
	if req.AllowsFullDay != nil {
		leaveType.AllowsFullDay = *req.AllowsFullDay
	}
	if req.AllowsHalfDay != nil {
		leaveType.AllowsHalfDay = *req.AllowsHalfDay
	}
	if req.AllowsHourly != nil {
		leaveType.AllowsHourly = *req.AllowsHourly
	}

	if err := s.types.Update(ctx, leaveType); err != nil {
		return fmt.Errorf("failed to update leave type: %w", err)
	}
	return nil
}

func (s *Service) DeleteType(ctx context.Context, id string) error {
	if err := s.types.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveTypeNotFound
		}
		return fmt.Errorf("failed to delete leave type: %w", err)
	}
	return nil
}
