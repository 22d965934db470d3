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

type PrescriptionController struct {
	svc *services.PrescriptionService
}

func NewPrescriptionController(svc *services.PrescriptionService) *PrescriptionController {
	return &PrescriptionController{svc: svc}
}

func (pc *PrescriptionController) Register(r gin.IRouter) {
	prescriptions := r.Group("/prescriptions")
	prescriptions.GET("", pc.list)
	prescriptions.GET("/:id", pc.get)
	prescriptions.GET("/search", pc.search)
	prescriptions.GET("/active", pc.active)
	prescriptions.GET("/follow-up", pc.followUp)
	prescriptions.GET("/patient/:patientId", pc.byPatient)
	prescriptions.GET("/dentist/:dentistId", pc.byDentist)
	prescriptions.GET("/:id/pdf", pc.exportPdf)
	prescriptions.GET("/export/excel", pc.exportExcelRange)
	prescriptions.GET("/patient/:patientId/export/excel", pc.exportExcel)
	prescriptions.POST("", middlewares.RequireRoles(role.Management...), pc.create)
	prescriptions.PUT("/:id", middlewares.RequireRoles(role.Management...), pc.update)
	prescriptions.PUT("/:id/status", middlewares.RequireRoles(role.Management...), pc.updateStatus)
	prescriptions.DELETE("/:id", middlewares.RequireRoles(role.Management...), pc.remove)
}

func (pc *PrescriptionController) create(c *gin.Context) {
	var in models.Prescription
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

func (pc *PrescriptionController) get(c *gin.Context) {
	p, err := pc.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (pc *PrescriptionController) list(c *gin.Context) {
	page, size, sortBy, sortDir, err := pageParams(c, "prescriptionDate")
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

func (pc *PrescriptionController) search(c *gin.Context) {
	query, err := requiredQuery(c, "query")
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	prescriptions, err := pc.svc.Search(c.Request.Context(), query)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, prescriptions)
}

func (pc *PrescriptionController) active(c *gin.Context) {
	prescriptions, err := pc.svc.GetActive(c.Request.Context())
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, prescriptions)
}

func (pc *PrescriptionController) followUp(c *gin.Context) {
	prescriptions, err := pc.svc.GetRequiringFollowUp(c.Request.Context())
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, prescriptions)
}

func (pc *PrescriptionController) byPatient(c *gin.Context) {
	prescriptions, err := pc.svc.GetByPatient(c.Request.Context(), c.Param("patientId"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, prescriptions)
}

func (pc *PrescriptionController) byDentist(c *gin.Context) {
	prescriptions, err := pc.svc.GetByDentist(c.Request.Context(), c.Param("dentistId"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, prescriptions)
}

func (pc *PrescriptionController) update(c *gin.Context) {
	var in models.Prescription
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

func (pc *PrescriptionController) updateStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.WriteError(c, utils.InvalidArgument("Malformed request body"))
		return
	}
	updated, err := pc.svc.UpdateStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (pc *PrescriptionController) remove(c *gin.Context) {
	if err := pc.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (pc *PrescriptionController) exportPdf(c *gin.Context) {
	data, err := pc.svc.ExportPdf(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	writePdf(c, "prescription.pdf", data)
}

func (pc *PrescriptionController) exportExcelRange(c *gin.Context) {
	start, err := requiredQuery(c, "start")
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	end, err := requiredQuery(c, "end")
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	data, err := pc.svc.ExportExcelRange(c.Request.Context(), start, end)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	writeExcel(c, "prescriptions.xlsx", data)
}

func (pc *PrescriptionController) exportExcel(c *gin.Context) {
	data, err := pc.svc.ExportExcel(c.Request.Context(), c.Param("patientId"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	writeExcel(c, "prescriptions.xlsx", data)
}
