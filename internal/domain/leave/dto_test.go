package leave

import (
	"testing"

	"github.com/origin8hq/lms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmit() SubmitLeaveRequest {
	return SubmitLeaveRequest{
		LeaveTypeID:  "b2c5e1a0-0000-0000-0000-000000000001",
		StartDate:    "2024-03-04",
		EndDate:      "2024-03-08",
		DurationType: DurationFullDay,
		Reason:       "family event",
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	return errs.ToMap()
}

func TestSubmitLeaveRequestValidate(t *testing.T) {
	req := validSubmit()
	assert.NoError(t, req.Validate())
}

func TestSubmitLeaveRequestValidateFailures(t *testing.T) {
	t.Run("missing leave type", func(t *testing.T) {
		req := validSubmit()
		req.LeaveTypeID = ""
		fields := fieldsOf(t, req.Validate())
		assert.Contains(t, fields, "leave_type_id")
	})

	t.Run("bad start date", func(t *testing.T) {
		req := validSubmit()
		req.StartDate = "04-03-2024"
		fields := fieldsOf(t, req.Validate())
		assert.Contains(t, fields, "start_date")
	})

	t.Run("bad duration type", func(t *testing.T) {
		req := validSubmit()
		req.DurationType = "weekly"
		fields := fieldsOf(t, req.Validate())
		assert.Contains(t, fields, "duration_type")
	})

	t.Run("missing reason", func(t *testing.T) {
		req := validSubmit()
		req.Reason = "   "
		fields := fieldsOf(t, req.Validate())
		assert.Contains(t, fields, "reason")
	})
}

func TestCreateLeaveTypeRequestValidate(t *testing.T) {
	req := CreateLeaveTypeRequest{Name: "Annual Leave", AllowsFullDay: true}
	assert.NoError(t, req.Validate())

	req = CreateLeaveTypeRequest{AllowsFullDay: true}
	fields := fieldsOf(t, req.Validate())
	assert.Contains(t, fields, "name")

	// Every mode disabled makes the type unusable.
	req = CreateLeaveTypeRequest{Name: "Annual Leave"}
	assert.Error(t, req.Validate())
}

func TestUpdateLeaveTypeRequestValidate(t *testing.T) {
	req := UpdateLeaveTypeRequest{ID: "some-id"}
	assert.NoError(t, req.Validate())

	req = UpdateLeaveTypeRequest{}
	fields := fieldsOf(t, req.Validate())
	assert.Contains(t, fields, "id")

	empty := ""
	req = UpdateLeaveTypeRequest{ID: "some-id", Name: &empty}
	fields = fieldsOf(t, req.Validate())
	assert.Contains(t, fields, "name")
}
