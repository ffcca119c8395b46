package httpapi

import (
	"github.com/gin-gonic/gin"
)

// setupRouter declares the route table. Everything under /api/employees and
// logout require a valid bearer token; register and login are public.
func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", s.register)
		authGroup.POST("/login", s.login)
		authGroup.POST("/logout", s.authRequired(), s.logout)
	}

	employeeGroup := r.Group("/api/employees", s.authRequired())
	{
		employeeGroup.GET("/positions", s.listPositions)
		employeeGroup.POST("", s.createEmployee)
		employeeGroup.GET("", s.listEmployees)
		employeeGroup.GET("/:id", s.getEmployee)
		employeeGroup.PUT("/:id", s.updateEmployee)
		employeeGroup.DELETE("/:id", s.deleteEmployee)
	}

	return r
}
