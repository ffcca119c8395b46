package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/staffdesk/internal/common"
	"github.com/dmitrijs2005/staffdesk/internal/server/employees"
)

type employeeRequest struct {
	FirstName   string    `json:"firstName" binding:"required"`
	LastName    string    `json:"lastName" binding:"required"`
	JobPosition string    `json:"job_position" binding:"required"`
	Birthdate   time.Time `json:"birthdate" binding:"required" time_format:"2006-01-02"`
}

type employeeResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	JobPosition string    `json:"job_position"`
	Birthdate   time.Time `json:"birthdate"`
}

func toEmployeeResponse(e *employees.Employee) employeeResponse {
	return employeeResponse{
		ID:          e.ID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		JobPosition: e.JobPosition,
		Birthdate:   e.Birthdate,
	}
}

// createEmployee handles POST /api/employees.
func (s *Server) createEmployee(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	employee, err := s.employees.Create(c.Request.Context(), &employees.Employee{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		JobPosition: req.JobPosition,
		Birthdate:   req.Birthdate,
	})
	if err != nil {
		if errors.Is(err, common.ErrorEmployeeExists) {
			respondError(c, http.StatusConflict, common.ErrorEmployeeExists.Error())
			return
		}
		s.logger.Error(c.Request.Context(), "error creating employee", "error", err)
		respondError(c, http.StatusInternalServerError, "error creating employee")
		return
	}

	respond(c, http.StatusCreated, toEmployeeResponse(employee))
}

// listEmployees handles GET /api/employees.
func (s *Server) listEmployees(c *gin.Context) {
	all, err := s.employees.GetAll(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "error listing employees", "error", err)
		respondError(c, http.StatusInternalServerError, "error listing employees")
		return
	}

	result := make([]employeeResponse, 0, len(all))
	for _, e := range all {
		result = append(result, toEmployeeResponse(e))
	}

	respond(c, http.StatusOK, result)
}

// getEmployee handles GET /api/employees/:id.
func (s *Server) getEmployee(c *gin.Context) {
	employee, err := s.employees.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(c, http.StatusNotFound, "employee not found")
			return
		}
		s.logger.Error(c.Request.Context(), "error getting employee", "error", err)
		respondError(c, http.StatusInternalServerError, "error getting employee")
		return
	}

	respond(c, http.StatusOK, toEmployeeResponse(employee))
}

// updateEmployee handles PUT /api/employees/:id.
func (s *Server) updateEmployee(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	employee, err := s.employees.Update(c.Request.Context(), &employees.Employee{
		ID:          c.Param("id"),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		JobPosition: req.JobPosition,
		Birthdate:   req.Birthdate,
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(c, http.StatusNotFound, "employee not found")
			return
		}
		s.logger.Error(c.Request.Context(), "error updating employee", "error", err)
		respondError(c, http.StatusInternalServerError, "error updating employee")
		return
	}

	respond(c, http.StatusOK, toEmployeeResponse(employee))
}

// deleteEmployee handles DELETE /api/employees/:id.
func (s *Server) deleteEmployee(c *gin.Context) {
	err := s.employees.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(c, http.StatusNotFound, "employee not found")
			return
		}
		s.logger.Error(c.Request.Context(), "error deleting employee", "error", err)
		respondError(c, http.StatusInternalServerError, "error deleting employee")
		return
	}

	respond(c, http.StatusOK, gin.H{"message": "employee deleted"})
}

// listPositions handles GET /api/employees/positions, proxying the external
// positions listing service.
func (s *Server) listPositions(c *gin.Context) {
	body, err := s.positions.List(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "error fetching positions", "error", err)
		respondError(c, http.StatusInternalServerError, "there was an error trying to get positions")
		return
	}

	respond(c, http.StatusOK, body)
}
