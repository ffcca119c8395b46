package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/staffdesk/internal/common"
)

type registerRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// register handles POST /api/auth/register.
func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	_, token, err := s.users.Register(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, common.ErrorEmailTaken) {
			respondError(c, http.StatusConflict, common.ErrorEmailTaken.Error())
			return
		}
		s.logger.Error(c.Request.Context(), "error registering user", "error", err)
		respondError(c, http.StatusInternalServerError, "error registering user")
		return
	}

	respond(c, http.StatusOK, tokenResponse{Token: token})
}

// login handles POST /api/auth/login.
func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	_, token, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, common.ErrorInvalidCredentials.Error())
			return
		}
		s.logger.Error(c.Request.Context(), "error logging in", "error", err)
		respondError(c, http.StatusInternalServerError, "error logging in")
		return
	}

	respond(c, http.StatusOK, tokenResponse{Token: token})
}

// logout handles POST /api/auth/logout. It reports success even when no
// token was supplied, so clients can always call it safely.
func (s *Server) logout(c *gin.Context) {
	err := s.users.Logout(c.Request.Context(), c.GetHeader("Authorization"))
	if err != nil {
		s.logger.Error(c.Request.Context(), "error logging out", "error", err)
		respondError(c, http.StatusInternalServerError, "error logging out")
		return
	}

	respond(c, http.StatusOK, gin.H{"message": "successful logout"})
}
