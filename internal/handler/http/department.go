package http

import (
	"net/http"

	"github.com/origin8hq/lms-backend-go/internal/domain/department"
	"github.com/origin8hq/lms-backend-go/internal/handler/http/response"
)

type DepartmentHandler interface {
	ListDepartments(w http.ResponseWriter, r *http.Request)
}

type DepartmentHandlerImpl struct {
	departments department.DepartmentRepository
}

func NewDepartmentHandler(departments department.DepartmentRepository) DepartmentHandler {
	return &DepartmentHandlerImpl{departments: departments}
}

// ListDepartments implements DepartmentHandler. Used by the account creation
// form to populate its department picker.
func (d *DepartmentHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := d.departments.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, departments)
}
