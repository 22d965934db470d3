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

type BillController struct {
	svc *services.BillService
}

func NewBillController(svc *services.BillService) *BillController {
	return &BillController{svc: svc}
}

func (bc *BillController) Register(r gin.IRouter) {
	bills := r.Group("/bills")
	bills.GET("", bc.list)
	bills.GET("/:id", bc.get)
	bills.GET("/search", bc.search)
	bills.GET("/status/:status", bc.byStatus)
	bills.GET("/pending", bc.pending)
	bills.GET("/overdue", bc.overdue)
	bills.GET("/patient/:patientId", bc.byPatient)
	bills.GET("/dentist/:dentistId", bc.byDentist)
	bills.GET("/:id/pdf", bc.exportPdf)
	bills.GET("/patient/:patientId/export/excel", bc.exportExcel)
	bills.POST("", middlewares.RequireRoles(role.ClinicalWrite...), bc.create)
	bills.PUT("/:id", middlewares.RequireRoles(role.ClinicalWrite...), bc.update)
	bills.DELETE("/:id", middlewares.RequireRoles(role.Management...), bc.remove)
}

func (bc *BillController) create(c *gin.Context) {
	var in models.Bill
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.WriteError(c, utils.InvalidArgument("Malformed request body"))
		return
	}
	created, err := bc.svc.Create(c.Request.Context(), &in)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (bc *BillController) get(c *gin.Context) {
	b, err := bc.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (bc *BillController) list(c *gin.Context) {
	page, size, sortBy, sortDir, err := pageParams(c, "billDate")
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	resp, err := bc.svc.GetPage(c.Request.Context(), page, size, sortBy, sortDir)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (bc *BillController) search(c *gin.Context) {
	query, err := requiredQuery(c, "query")
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	bills, err := bc.svc.Search(c.Request.Context(), query)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, bills)
}

func (bc *BillController) byStatus(c *gin.Context) {
	bills, err := bc.svc.GetByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, bills)
}

func (bc *BillController) pending(c *gin.Context) {
	bills, err := bc.svc.GetPending(c.Request.Context())
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, bills)
}

func (bc *BillController) overdue(c *gin.Context) {
	bills, err := bc.svc.GetOverdue(c.Request.Context())
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, bills)
}

func (bc *BillController) byPatient(c *gin.Context) {
	bills, err := bc.svc.GetByPatient(c.Request.Context(), c.Param("patientId"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, bills)
}

func (bc *BillController) byDentist(c *gin.Context) {
	bills, err := bc.svc.GetByDentist(c.Request.Context(), c.Param("dentistId"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, bills)
}

func (bc *BillController) update(c *gin.Context) {
	var in models.Bill
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.WriteError(c, utils.InvalidArgument("Malformed request body"))
		return
	}
	updated, err := bc.svc.Update(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (bc *BillController) remove(c *gin.Context) {
	if err := bc.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (bc *BillController) exportPdf(c *gin.Context) {
	data, err := bc.svc.ExportPdf(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	writePdf(c, "bill.pdf", data)
}

func (bc *BillController) exportExcel(c *gin.Context) {
	data, err := bc.svc.ExportExcel(c.Request.Context(), c.Param("patientId"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	writeExcel(c, "bills.xlsx", data)
}
