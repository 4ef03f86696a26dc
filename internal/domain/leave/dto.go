package leave

import (
	"time"

	"github.com/origin8hq/lms-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	LeaveTypeID  string       `json:"leave_type_id"`
	StartDate    string       `json:"start_date"`
	EndDate      string       `json:"end_date,omitempty"`
	DurationType DurationType `json:"duration_type"`
	Hours        *float64     `json:"hours,omitempty"`
	Reason       string       `json:"reason"`
	Contact      string       `json:"contact,omitempty"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if !validator.IsEmpty(r.EndDate) {
		if _, ok := validator.IsValidDate(r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if !ValidDurationType(r.DurationType) {
		errs = append(errs, validator.ValidationError{
			Field:   "duration_type",
			Message: "duration_type must be one of full_day, half_day, hourly",
		})
	}
	if r.DurationType == DurationHourly && r.Hours == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours is required for hourly leave",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateLeaveTypeRequest struct {
	Name          string `json:"name"`
	AllowsFullDay bool   `json:"allows_full_day"`
	AllowsHalfDay bool   `json:"allows_half_day"`
	AllowsHourly  bool   `json:"allows_hourly"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}
	if !r.AllowsFullDay && !r.AllowsHalfDay && !r.AllowsHourly {
		errs = append(errs, validator.ValidationError{
			Field:   "allows_full_day",
			Message: "at least one duration mode must be allowed",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateLeaveTypeRequest struct {
	ID            string  `json:"-"`
	Name          *string `json:"name,omitempty"`
	AllowsFullDay *bool   `json:"allows_full_day,omitempty"`
	AllowsHalfDay *bool   `json:"allows_half_day,omitempty"`
	AllowsHourly  *bool   `json:"allows_hourly,omitempty"`
}

func (r *UpdateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "leave type id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveTypeResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AllowsFullDay bool   `json:"allows_full_day"`
	AllowsHalfDay bool   `json:"allows_half_day"`
	AllowsHourly  bool   `json:"allows_hourly"`
}

func ToLeaveTypeResponse(t LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:            t.ID,
		Name:          t.Name,
		AllowsFullDay: t.AllowsFullDay,
		AllowsHalfDay: t.AllowsHalfDay,
		AllowsHourly:  t.AllowsHourly,
	}
}

type LeaveRequestResponse struct {
	ID             string        `json:"id"`
	RequesterID    string        `json:"requester_id"`
	RequesterName  *string       `json:"requester_name,omitempty"`
	RequesterEmail *string       `json:"requester_email,omitempty"`
	LeaveTypeID    string        `json:"leave_type_id"`
	LeaveTypeName  *string       `json:"leave_type_name,omitempty"`
	DepartmentName *string       `json:"department_name,omitempty"`
	StartDate      string        `json:"start_date"`
	EndDate        string        `json:"end_date"`
	DurationType   DurationType  `json:"duration_type"`
	Hours          *float64      `json:"hours,omitempty"`
	TotalDays      float64       `json:"total_days"`
	Reason         string        `json:"reason"`
	Contact        string        `json:"contact,omitempty"`
	Status         RequestStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
}

func ToLeaveRequestResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:             r.ID,
		RequesterID:    r.RequesterID,
		RequesterName:  r.RequesterName,
		RequesterEmail: r.RequesterEmail,
		LeaveTypeID:    r.LeaveTypeID,
		LeaveTypeName:  r.LeaveTypeName,
		DepartmentName: r.DepartmentName,
		StartDate:      r.StartDate.Format("2006-01-02"),
		EndDate:        r.EndDate.Format("2006-01-02"),
		DurationType:   r.DurationType,
		Hours:          r.Hours,
		TotalDays:      r.TotalDays,
		Reason:         r.Reason,
		Contact:        r.Contact,
		Status:         r.Status,
		CreatedAt:      r.CreatedAt,
	}
}

func ToLeaveRequestResponses(requests []LeaveRequest) []LeaveRequestResponse {
	responses := make([]LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, ToLeaveRequestResponse(r))
	}
	return responses
}

// ReviewResponse reports the explicit outcome of an approve/reject action.
type ReviewResponse struct {
	RequestID string            `json:"request_id"`
	Outcome   TransitionOutcome `json:"outcome"`
}
