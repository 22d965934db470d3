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

type PatientController struct {
	svc *services.PatientService
}

func NewPatientController(svc *services.PatientService) *PatientController {
	return &PatientController{svc: svc}
}

func (pc *PatientController) Register(r gin.IRouter) {
	patients := r.Group("/patients")
	patients.GET("", pc.list)
	patients.GET("/:id", pc.get)
	patients.GET("/search", pc.search)
	patients.GET("/city/:city", pc.byCity)
	patients.GET("/mobile/:mobileNumber", pc.byMobile)
	patients.GET("/:id/pdf", pc.exportPdf)
	patients.GET("/export/excel", pc.exportExcel)
	patients.POST("", middlewares.RequireRoles(role.ClinicalWrite...), pc.create)
	patients.PUT("/:id", middlewares.RequireRoles(role.ClinicalWrite...), pc.update)
	patients.DELETE("/:id", middlewares.RequireRoles(role.Management...), pc.remove)
}

func (pc *PatientController) create(c *gin.Context) {
	var in models.Patient
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.WriteError(c, utils.InvalidArgument("Malformed request body"))
		return
	}
	created, err := pc.svc.Create(c.Request.Context(), &in)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (pc *PatientController) get(c *gin.Context) {
	p, err := pc.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (pc *PatientController) list(c *gin.Context) {
	page, size, sortBy, sortDir, err := pageParams(c, "createdAt")
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	resp, err := pc.svc.GetPage(c.Request.Context(), page, size, sortBy, sortDir)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (pc *PatientController) search(c *gin.Context) {
	query, err := requiredQuery(c, "query")
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	patients, err := pc.svc.Search(c.Request.Context(), query)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (pc *PatientController) byCity(c *gin.Context) {
	patients, err := pc.svc.GetByCity(c.Request.Context(), c.Param("city"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (pc *PatientController) byMobile(c *gin.Context) {
	p, err := pc.svc.GetByMobile(c.Request.Context(), c.Param("mobileNumber"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (pc *PatientController) update(c *gin.Context) {
	var in models.Patient
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.WriteError(c, utils.InvalidArgument("Malformed request body"))
		return
	}
	updated, err := pc.svc.Update(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (pc *PatientController) remove(c *gin.Context) {
	if err := pc.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (pc *PatientController) exportPdf(c *gin.Context) {
	data, err := pc.svc.ExportPdf(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	writePdf(c, "patient.pdf", data)
}

func (pc *PatientController) exportExcel(c *gin.Context) {
	data, err := pc.svc.ExportExcel(c.Request.Context())
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	writeExcel(c, "patients.xlsx", data)
}
