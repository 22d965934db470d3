package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"NavidentClinic/middlewares"
	"NavidentClinic/models"
	"NavidentClinic/role"
	"NavidentClinic/services"
	"NavidentClinic/utils"
)

type FinanceController struct {
	svc *services.FinanceService
}

func NewFinanceController(svc *services.FinanceService) *FinanceController {
	return &FinanceController{svc: svc}
}

// Register mounts the finance routes. The whole surface is management only.
func (fc *FinanceController) Register(r gin.IRouter) {
	finance := r.Group("/finance", middlewares.RequireRoles(role.Management...))
	finance.GET("", fc.list)
	finance.GET("/:id", fc.get)
	finance.GET("/search", fc.search)
	finance.GET("/date-range", fc.byDateRange)
	finance.GET("/summary", fc.summary)
	finance.GET("/summary/monthly", fc.monthlySummary)
	finance.GET("/summary/yearly", fc.yearlySummary)
	finance.GET("/expenses/by-type", fc.expensesByType)
	finance.GET("/categories", fc.categories)
	finance.GET("/types", fc.types)
	finance.GET("/vendors", fc.vendors)
	finance.GET("/export/excel", fc.exportExcel)
	finance.POST("", fc.create)
	finance.POST("/bulk", fc.createBulk)
	finance.PUT("/:id", fc.update)
	finance.PUT("/:id/status", fc.updateStatus)
	finance.DELETE("/:id", fc.remove)
}

func (fc *FinanceController) create(c *gin.Context) {
	var in models.ClinicFinance
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.WriteError(c, utils.InvalidArgument("Malformed request body"))
		return
	}
	created, err := fc.svc.Create(c.Request.Context(), &in)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (fc *FinanceController) createBulk(c *gin.Context) {
	var txns []models.ClinicFinance
	if err := c.ShouldBindJSON(&txns); err != nil {
		utils.WriteError(c, utils.InvalidArgument("Malformed request body"))
		return
	}
	created, err := fc.svc.CreateBulk(c.Request.Context(), txns)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (fc *FinanceController) get(c *gin.Context) {
	t, err := fc.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (fc *FinanceController) list(c *gin.Context) {
	page, size, sortBy, sortDir, err := pageParams(c, "transactionDate")
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	resp, err := fc.svc.GetPage(c.Request.Context(), c.Query("category"), c.Query("type"), page, size, sortBy, sortDir)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (fc *FinanceController) search(c *gin.Context) {
	query, err := requiredQuery(c, "query")
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	txns, err := fc.svc.Search(c.Request.Context(), query)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, txns)
}

func dateRangeParams(c *gin.Context) (string, string, error) {
	start, err := requiredQuery(c, "start")
	if err != nil {
		return "", "", err
	}
	end, err := requiredQuery(c, "end")
	if err != nil {
		return "", "", err
	}
	return start, end, nil
}

func (fc *FinanceController) byDateRange(c *gin.Context) {
	start, end, err := dateRangeParams(c)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	txns, err := fc.svc.GetByDateRange(c.Request.Context(), start, end)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, txns)
}

func (fc *FinanceController) summary(c *gin.Context) {
	start, end, err := dateRangeParams(c)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	summary, err := fc.svc.Summary(c.Request.Context(), start, end)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (fc *FinanceController) monthlySummary(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		utils.WriteError(c, utils.InvalidArgument("Year must be an integer"))
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		utils.WriteError(c, utils.InvalidArgument("Month must be an integer"))
		return
	}
	summary, err := fc.svc.MonthlySummary(c.Request.Context(), year, month)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (fc *FinanceController) yearlySummary(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		utils.WriteError(c, utils.InvalidArgument("Year must be an integer"))
		return
	}
	summary, err := fc.svc.YearlySummary(c.Request.Context(), year)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (fc *FinanceController) expensesByType(c *gin.Context) {
	start, end, err := dateRangeParams(c)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	buckets, err := fc.svc.ExpensesByType(c.Request.Context(), start, end)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, buckets)
}

func (fc *FinanceController) categories(c *gin.Context) {
	values, err := fc.svc.Categories(c.Request.Context())
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, values)
}

func (fc *FinanceController) types(c *gin.Context) {
	values, err := fc.svc.Types(c.Request.Context())
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, values)
}

func (fc *FinanceController) vendors(c *gin.Context) {
	values, err := fc.svc.Vendors(c.Request.Context())
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, values)
}

func (fc *FinanceController) update(c *gin.Context) {
	var in models.ClinicFinance
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.WriteError(c, utils.InvalidArgument("Malformed request body"))
		return
	}
	updated, err := fc.svc.Update(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (fc *FinanceController) updateStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.WriteError(c, utils.InvalidArgument("Malformed request body"))
		return
	}
	updated, err := fc.svc.UpdateStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (fc *FinanceController) remove(c *gin.Context) {
	if err := fc.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (fc *FinanceController) exportExcel(c *gin.Context) {
	start, end, err := dateRangeParams(c)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	data, err := fc.svc.ExportExcel(c.Request.Context(), start, end)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	writeExcel(c, "finance.xlsx", data)
}
