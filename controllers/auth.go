package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"NavidentClinic/models"
	"NavidentClinic/services"
	"NavidentClinic/utils"
)

type AuthController struct {
	svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{svc: svc}
}

// RegisterPublic mounts the unauthenticated endpoints.
func (ac *AuthController) RegisterPublic(r gin.IRouter) {
	auth := r.Group("/auth")
	auth.POST("/signin", ac.signIn)
	auth.POST("/signup", ac.signUp)
}

// RegisterProtected mounts refresh, which needs a valid token.
func (ac *AuthController) RegisterProtected(r gin.IRouter) {
	r.POST("/auth/refresh", ac.refresh)
}

func (ac *AuthController) signIn(c *gin.Context) {
	var req models.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.WriteError(c, utils.InvalidArgument("Malformed request body"))
		return
	}
	resp, err := ac.svc.SignIn(c.Request.Context(), &req)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ac *AuthController) signUp(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		utils.WriteError(c, utils.InvalidArgument("Malformed request body"))
		return
	}
	resp, err := ac.svc.SignUp(c.Request.Context(), &user)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (ac *AuthController) refresh(c *gin.Context) {
	resp, err := ac.svc.Refresh(c.Request.Context(), c.GetString("username"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
