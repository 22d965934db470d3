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

type DentistController struct {
	svc *services.DentistService
}

func NewDentistController(svc *services.DentistService) *DentistController {
	return &DentistController{svc: svc}
}

func (dc *DentistController) Register(r gin.IRouter) {
	dentists := r.Group("/dentists")
	dentists.GET("", dc.list)
	dentists.GET("/:id", dc.get)
	dentists.GET("/search", dc.search)
	dentists.GET("/active", dc.active)
	dentists.GET("/chief", dc.chief)
	dentists.GET("/specialization/:specialization", dc.bySpecialization)
	dentists.GET("/:id/pdf", dc.exportPdf)
	dentists.GET("/export/excel", dc.exportExcel)
	dentists.POST("", middlewares.RequireRoles(role.Management...), dc.create)
	dentists.PUT("/:id", middlewares.RequireRoles(role.Management...), dc.update)
	dentists.DELETE("/:id", middlewares.RequireRoles(role.Management...), dc.remove)
}

func (dc *DentistController) create(c *gin.Context) {
	var in models.Dentist
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.WriteError(c, utils.InvalidArgument("Malformed request body"))
		return
	}
	created, err := dc.svc.Create(c.Request.Context(), &in)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (dc *DentistController) get(c *gin.Context) {
	d, err := dc.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (dc *DentistController) list(c *gin.Context) {
	page, size, sortBy, sortDir, err := pageParams(c, "createdAt")
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	resp, err := dc.svc.GetPage(c.Request.Context(), page, size, sortBy, sortDir)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (dc *DentistController) search(c *gin.Context) {
	query, err := requiredQuery(c, "query")
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	dentists, err := dc.svc.Search(c.Request.Context(), query)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dentists)
}

func (dc *DentistController) active(c *gin.Context) {
	dentists, err := dc.svc.GetActive(c.Request.Context())
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dentists)
}

func (dc *DentistController) chief(c *gin.Context) {
	chief, err := dc.svc.GetChief(c.Request.Context())
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, chief)
}

func (dc *DentistController) bySpecialization(c *gin.Context) {
	dentists, err := dc.svc.GetBySpecialization(c.Request.Context(), c.Param("specialization"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dentists)
}

func (dc *DentistController) update(c *gin.Context) {
	var in models.Dentist
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.WriteError(c, utils.InvalidArgument("Malformed request body"))
		return
	}
	updated, err := dc.svc.Update(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (dc *DentistController) remove(c *gin.Context) {
	if err := dc.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (dc *DentistController) exportPdf(c *gin.Context) {
	data, err := dc.svc.ExportPdf(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	writePdf(c, "dentist.pdf", data)
}

func (dc *DentistController) exportExcel(c *gin.Context) {
	data, err := dc.svc.ExportExcel(c.Request.Context())
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	writeExcel(c, "dentists.xlsx", data)
}
