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

type AppointmentController struct {
	svc *services.AppointmentService
}

func NewAppointmentController(svc *services.AppointmentService) *AppointmentController {
	return &AppointmentController{svc: svc}
}

func (ac *AppointmentController) Register(r gin.IRouter) {
	appointments := r.Group("/appointments")
	appointments.GET("", ac.list)
	appointments.GET("/:id", ac.get)
	appointments.GET("/search", ac.search)
	appointments.GET("/date/:date", ac.byDate)
	appointments.GET("/today", ac.today)
	appointments.GET("/upcoming", ac.upcoming)
	appointments.GET("/status/:status", ac.byStatus)
	appointments.GET("/patient/:patientId", ac.byPatient)
	appointments.GET("/dentist/:dentistId", ac.byDentist)
	appointments.GET("/export/excel", ac.exportExcel)
	appointments.POST("", middlewares.RequireRoles(role.ClinicalWrite...), ac.create)
	appointments.PUT("/:id", middlewares.RequireRoles(role.ClinicalWrite...), ac.update)
	appointments.PUT("/:id/status", middlewares.RequireRoles(role.ClinicalWrite...), ac.updateStatus)
	appointments.DELETE("/:id", middlewares.RequireRoles(role.Management...), ac.remove)
}

func (ac *AppointmentController) create(c *gin.Context) {
	var in models.Appointment
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.WriteError(c, utils.InvalidArgument("Malformed request body"))
		return
	}
	created, err := ac.svc.Create(c.Request.Context(), &in)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ac *AppointmentController) get(c *gin.Context) {
	a, err := ac.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (ac *AppointmentController) list(c *gin.Context) {
	page, size, sortBy, sortDir, err := pageParams(c, "appointmentDate")
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	resp, err := ac.svc.GetPage(c.Request.Context(), page, size, sortBy, sortDir)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ac *AppointmentController) search(c *gin.Context) {
	query, err := requiredQuery(c, "query")
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	appointments, err := ac.svc.Search(c.Request.Context(), query)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (ac *AppointmentController) byDate(c *gin.Context) {
	date := c.Param("date")
	appointments, err := ac.svc.GetByDateRange(c.Request.Context(), date, date)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (ac *AppointmentController) today(c *gin.Context) {
	today := utils.Today()
	appointments, err := ac.svc.GetByDateRange(c.Request.Context(), today, today)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (ac *AppointmentController) upcoming(c *gin.Context) {
	appointments, err := ac.svc.GetUpcoming(c.Request.Context())
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (ac *AppointmentController) byStatus(c *gin.Context) {
	appointments, err := ac.svc.GetByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (ac *AppointmentController) byPatient(c *gin.Context) {
	appointments, err := ac.svc.GetByPatient(c.Request.Context(), c.Param("patientId"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (ac *AppointmentController) byDentist(c *gin.Context) {
	appointments, err := ac.svc.GetByDentist(c.Request.Context(), c.Param("dentistId"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (ac *AppointmentController) update(c *gin.Context) {
	var in models.Appointment
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.WriteError(c, utils.InvalidArgument("Malformed request body"))
		return
	}
	updated, err := ac.svc.Update(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (ac *AppointmentController) updateStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.WriteError(c, utils.InvalidArgument("Malformed request body"))
		return
	}
	updated, err := ac.svc.UpdateStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (ac *AppointmentController) remove(c *gin.Context) {
	if err := ac.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ac *AppointmentController) exportExcel(c *gin.Context) {
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
	data, err := ac.svc.ExportExcel(c.Request.Context(), start, end)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	writeExcel(c, "appointments.xlsx", data)
}
