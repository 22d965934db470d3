package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"NavidentClinic/middlewares"
	"NavidentClinic/models"
	"NavidentClinic/role"
	"NavidentClinic/services"
	"NavidentClinic/utils"
)

type UserController struct {
	svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{svc: svc}
}

// Register mounts user administration, restricted to administrators.
func (uc *UserController) Register(r gin.IRouter) {
	users := r.Group("/users", middlewares.RequireRoles(role.AdminOnly...))
	users.GET("", uc.list)
	users.GET("/search", uc.search)
	users.GET("/:id", uc.get)
	users.POST("", uc.create)
	users.PUT("/:id", uc.update)
	users.PUT("/:id/toggle-active", uc.toggleActive)
	users.PUT("/:id/change-password", uc.changePassword)
	users.DELETE("/:id", uc.remove)
}

func (uc *UserController) create(c *gin.Context) {
	var in models.User
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.WriteError(c, utils.InvalidArgument("Malformed request body"))
		return
	}
	created, err := uc.svc.Create(c.Request.Context(), &in)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (uc *UserController) get(c *gin.Context) {
	u, err := uc.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (uc *UserController) list(c *gin.Context) {
	page, size, sortBy, sortDir, err := pageParams(c, "createdAt")
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	resp, err := uc.svc.GetPage(c.Request.Context(), page, size, sortBy, sortDir)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (uc *UserController) search(c *gin.Context) {
	query, err := requiredQuery(c, "query")
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	users, err := uc.svc.Search(c.Request.Context(), query)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (uc *UserController) update(c *gin.Context) {
	var in models.User
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.WriteError(c, utils.InvalidArgument("Malformed request body"))
		return
	}
	updated, err := uc.svc.Update(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (uc *UserController) toggleActive(c *gin.Context) {
	updated, err := uc.svc.ToggleActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (uc *UserController) changePassword(c *gin.Context) {
	var body struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.WriteError(c, utils.InvalidArgument("Malformed request body"))
		return
	}
	if err := uc.svc.SetPassword(c.Request.Context(), c.Param("id"), body.Password); err != nil {
		utils.WriteError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (uc *UserController) remove(c *gin.Context) {
	if err := uc.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
