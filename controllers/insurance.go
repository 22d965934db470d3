package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"NavidentClinic/middlewares"
	"NavidentClinic/models"
	"NavidentClinic/role"
	"NavidentClinic/services"
	"NavidentClinic/utils"
)

type InsuranceController struct {
	svc *services.InsuranceService
}

func NewInsuranceController(svc *services.InsuranceService) *InsuranceController {
	return &InsuranceController{svc: svc}
}

// Register mounts the insurance routes. Reads are open to the clinical
// roles; policy and claim writes stay with management.
func (ic *InsuranceController) Register(r gin.IRouter) {
	insurance := r.Group("/insurance", middlewares.RequireRoles(role.ClinicalWrite...))
	insurance.GET("", ic.list)
	insurance.GET("/:id", ic.get)
	insurance.GET("/search", ic.search)
	insurance.GET("/active", ic.active)
	insurance.GET("/expiring-soon", ic.expiringSoon)
	insurance.GET("/patient/:patientId", ic.byPatient)
	insurance.GET("/patient/:patientId/export/excel", ic.exportExcel)
	insurance.POST("", middlewares.RequireRoles(role.Management...), ic.create)
	insurance.PUT("/:id", middlewares.RequireRoles(role.Management...), ic.update)
	insurance.PUT("/:id/status", middlewares.RequireRoles(role.Management...), ic.updateStatus)
	insurance.PUT("/:id/submit-claim", middlewares.RequireRoles(role.Management...), ic.submitClaim)
	insurance.PUT("/:id/approve-claim", middlewares.RequireRoles(role.Management...), ic.approveClaim)
	insurance.DELETE("/:id", middlewares.RequireRoles(role.Management...), ic.remove)
}

func (ic *InsuranceController) create(c *gin.Context) {
	var in models.Insurance
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.WriteError(c, utils.InvalidArgument("Malformed request body"))
		return
	}
	created, err := ic.svc.Create(c.Request.Context(), &in)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ic *InsuranceController) get(c *gin.Context) {
	ins, err := ic.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, ins)
}

func (ic *InsuranceController) list(c *gin.Context) {
	page, size, sortBy, sortDir, err := pageParams(c, "createdAt")
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	resp, err := ic.svc.GetPage(c.Request.Context(), page, size, sortBy, sortDir)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ic *InsuranceController) search(c *gin.Context) {
	query, err := requiredQuery(c, "query")
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	insurances, err := ic.svc.Search(c.Request.Context(), query)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, insurances)
}

func (ic *InsuranceController) active(c *gin.Context) {
	insurances, err := ic.svc.GetActive(c.Request.Context())
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, insurances)
}

func (ic *InsuranceController) expiringSoon(c *gin.Context) {
	insurances, err := ic.svc.GetExpiringSoon(c.Request.Context())
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, insurances)
}

func (ic *InsuranceController) byPatient(c *gin.Context) {
	insurances, err := ic.svc.GetByPatient(c.Request.Context(), c.Param("patientId"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, insurances)
}

func (ic *InsuranceController) update(c *gin.Context) {
	var in models.Insurance
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.WriteError(c, utils.InvalidArgument("Malformed request body"))
		return
	}
	updated, err := ic.svc.Update(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (ic *InsuranceController) updateStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.WriteError(c, utils.InvalidArgument("Malformed request body"))
		return
	}
	updated, err := ic.svc.UpdateStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (ic *InsuranceController) submitClaim(c *gin.Context) {
	var body struct {
		ClaimAmount          decimal.Decimal `json:"claimAmount"`
		TreatmentDescription string          `json:"treatmentDescription"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.WriteError(c, utils.InvalidArgument("Malformed request body"))
		return
	}
	updated, err := ic.svc.SubmitClaim(c.Request.Context(), c.Param("id"), body.ClaimAmount, body.TreatmentDescription)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (ic *InsuranceController) approveClaim(c *gin.Context) {
	var body struct {
		ApprovedClaimAmount decimal.Decimal `json:"approvedClaimAmount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.WriteError(c, utils.InvalidArgument("Malformed request body"))
		return
	}
	updated, err := ic.svc.ApproveClaim(c.Request.Context(), c.Param("id"), body.ApprovedClaimAmount)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (ic *InsuranceController) remove(c *gin.Context) {
	if err := ic.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ic *InsuranceController) exportExcel(c *gin.Context) {
	data, err := ic.svc.ExportExcel(c.Request.Context(), c.Param("patientId"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	writeExcel(c, "insurance.xlsx", data)
}
