package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cliffordwilliam/ifabula-library/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(s service.AuthService) *AuthHandler { return &AuthHandler{svc: s} }

// Credentials arrive form-encoded. Missing fields come through as empty
// strings and fail validation the same way malformed ones do.
type creds struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in creds
	_ = c.ShouldBind(&in)
	if err := h.svc.Register(in.Email, in.Password); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"msg": "User registered successfully"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in creds
	_ = c.ShouldBind(&in)
	u, tok, err := h.svc.Login(in.Email, in.Password)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"msg": "Login successful",
		"user": gin.H{
			"email":  u.Email,
			"book":   u.Book,
			"status": u.Status,
		},
		"token": tok,
	})
}
