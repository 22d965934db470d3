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

type TreatmentController struct {
	svc *services.TreatmentService
}

func NewTreatmentController(svc *services.TreatmentService) *TreatmentController {
	return &TreatmentController{svc: svc}
}

// Register mounts the treatment catalogue routes, management only.
func (tc *TreatmentController) Register(r gin.IRouter) {
	treatments := r.Group("/treatments", middlewares.RequireRoles(role.Management...))
	treatments.GET("", tc.list)
	treatments.GET("/:id", tc.get)
	treatments.GET("/search", tc.search)
	treatments.GET("/active", tc.available)
	treatments.GET("/category/:category", tc.byCategory)
	treatments.POST("", tc.create)
	treatments.PUT("/:id", tc.update)
	treatments.DELETE("/:id", tc.remove)
}

func (tc *TreatmentController) create(c *gin.Context) {
	var in models.Treatment
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.WriteError(c, utils.InvalidArgument("Malformed request body"))
		return
	}
	created, err := tc.svc.Create(c.Request.Context(), &in)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (tc *TreatmentController) get(c *gin.Context) {
	t, err := tc.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (tc *TreatmentController) list(c *gin.Context) {
	treatments, err := tc.svc.GetAll(c.Request.Context())
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, treatments)
}

func (tc *TreatmentController) search(c *gin.Context) {
	query, err := requiredQuery(c, "query")
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	treatments, err := tc.svc.Search(c.Request.Context(), query)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, treatments)
}

func (tc *TreatmentController) available(c *gin.Context) {
	treatments, err := tc.svc.GetAvailable(c.Request.Context())
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, treatments)
}

func (tc *TreatmentController) byCategory(c *gin.Context) {
	treatments, err := tc.svc.GetByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, treatments)
}

func (tc *TreatmentController) update(c *gin.Context) {
	var in models.Treatment
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.WriteError(c, utils.InvalidArgument("Malformed request body"))
		return
	}
	updated, err := tc.svc.Update(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (tc *TreatmentController) remove(c *gin.Context) {
	if err := tc.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
