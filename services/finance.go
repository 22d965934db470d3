package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"NavidentClinic/models"
	"NavidentClinic/utils"
)

type FinanceStore interface {
	FindByID(ctx context.Context, id string) (*models.ClinicFinance, error)
	Insert(ctx context.Context, t *models.ClinicFinance) error
	InsertMany(ctx context.Context, txns []models.ClinicFinance) error
	Replace(ctx context.Context, t *models.ClinicFinance) error
	DeleteByID(ctx context.Context, id string) (bool, error)
	FindPage(ctx context.Context, category, txnType string, page, size int64, sortBy, sortDir string) ([]models.ClinicFinance, int64, error)
	FindByDateRange(ctx context.Context, start, end string) ([]models.ClinicFinance, error)
	FindByCategory(ctx context.Context, category string) ([]models.ClinicFinance, error)
	FindByType(ctx context.Context, txnType string) ([]models.ClinicFinance, error)
	Search(ctx context.Context, query string) ([]models.ClinicFinance, error)
	Distinct(ctx context.Context, field string) ([]string, error)
}

type FinanceService struct {
	finances FinanceStore
}

func NewFinanceService(finances FinanceStore) *FinanceService {
	return &FinanceService{finances: finances}
}

func (s *FinanceService) Create(ctx context.Context, in *models.ClinicFinance) (*models.ClinicFinance, error) {
	if err := in.Validate(); err != nil {
		return nil, utils.ValidationFailed(err)
	}
	in.ID = primitive.ObjectID{}
	in.CreatedAt = time.Now()
	in.UpdatedAt = time.Now()
	if err := s.finances.Insert(ctx, in); err != nil {
		return nil, err
	}
	log.Println("Finance transaction recorded:", in.Category, in.Amount.String())
	return in, nil
}

// CreateBulk validates and inserts a batch of transactions in one call.
// The batch is all or nothing: one invalid entry rejects the whole request.
func (s *FinanceService) CreateBulk(ctx context.Context, txns []models.ClinicFinance) ([]models.ClinicFinance, error) {
	if len(txns) == 0 {
		return nil, utils.InvalidArgument("Transaction list must not be empty")
	}
	now := time.Now()
	for i := range txns {
		if err := txns[i].Validate(); err != nil {
			return nil, utils.ValidationFailed(err)
		}
		txns[i].ID = primitive.ObjectID{}
		txns[i].CreatedAt = now
		txns[i].UpdatedAt = now
	}
	if err := s.finances.InsertMany(ctx, txns); err != nil {
		return nil, err
	}
	log.Println("Bulk finance insert of", len(txns), "transactions")
	return txns, nil
}

func (s *FinanceService) GetByID(ctx context.Context, id string) (*models.ClinicFinance, error) {
	t, err := s.finances.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, utils.NotFound("Finance", "id", id)
	}
	return t, nil
}

func (s *FinanceService) Update(ctx context.Context, id string, in *models.ClinicFinance) (*models.ClinicFinance, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Amount.IsNegative() {
		return nil, utils.InvalidArgument("Amount must not be negative")
	}

	existing.Amount = in.Amount
	existing.Description = in.Description
	existing.VendorName = in.VendorName
	existing.UpdatedAt = time.Now()

	if err := s.finances.Replace(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *FinanceService) UpdateStatus(ctx context.Context, id, status string) (*models.ClinicFinance, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Status = status
	existing.UpdatedAt = time.Now()
	if err := s.finances.Replace(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *FinanceService) Delete(ctx context.Context, id string) error {
	deleted, err := s.finances.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.NotFound("Finance", "id", id)
	}
	log.Println("Finance transaction deleted:", id)
	return nil
}

func (s *FinanceService) GetPage(ctx context.Context, category, txnType string, page, size int64, sortBy, sortDir string) (*models.PageResponse, error) {
	txns, total, err := s.finances.FindPage(ctx, category, txnType, page, size, sortBy, sortDir)
	if err != nil {
		return nil, err
	}
	if txns == nil {
		txns = []models.ClinicFinance{}
	}
	resp := models.NewPageResponse(txns, page, size, total)
	return &resp, nil
}

func (s *FinanceService) GetByDateRange(ctx context.Context, start, end string) ([]models.ClinicFinance, error) {
	return s.finances.FindByDateRange(ctx, start, end)
}

func (s *FinanceService) GetByCategory(ctx context.Context, category string) ([]models.ClinicFinance, error) {
	return s.finances.FindByCategory(ctx, category)
}

func (s *FinanceService) GetByType(ctx context.Context, txnType string) ([]models.ClinicFinance, error) {
	return s.finances.FindByType(ctx, txnType)
}

/*
* Summary sums revenue and expense over a date range with exact decimal
* arithmetic. Profit is revenue minus expense and may be negative.
 */
func (s *FinanceService) Summary(ctx context.Context, start, end string) (*models.FinanceSummary, error) {
	txns, err := s.finances.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	revenue := decimal.Zero
	expense := decimal.Zero
	for _, t := range txns {
		switch t.Category {
		case models.FinanceRevenue:
			revenue = revenue.Add(t.Amount)
		case models.FinanceExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return &models.FinanceSummary{
		TotalRevenue: revenue,
		TotalExpense: expense,
		Profit:       revenue.Sub(expense),
	}, nil
}

func (s *FinanceService) MonthlySummary(ctx context.Context, year, month int) (*models.FinanceSummary, error) {
	if month < 1 || month > 12 {
		return nil, utils.InvalidArgument(fmt.Sprintf("Month out of range: %d", month))
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return s.Summary(ctx, start.Format(utils.DateLayout), end.Format(utils.DateLayout))
}

func (s *FinanceService) YearlySummary(ctx context.Context, year int) (*models.FinanceSummary, error) {
	start := fmt.Sprintf("%04d-01-01", year)
	end := fmt.Sprintf("%04d-12-31", year)
	return s.Summary(ctx, start, end)
}

// ExpensesByCategory groups expense transactions by their type and sums each
// bucket.
func (s *FinanceService) ExpensesByType(ctx context.Context, start, end string) (map[string]decimal.Decimal, error) {
	txns, err := s.finances.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	buckets := map[string]decimal.Decimal{}
	for _, t := range txns {
		if t.Category != models.FinanceExpense {
			continue
		}
		buckets[t.Type] = buckets[t.Type].Add(t.Amount)
	}
	return buckets, nil
}

func (s *FinanceService) Categories(ctx context.Context) ([]string, error) {
	return s.finances.Distinct(ctx, "category")
}

func (s *FinanceService) Types(ctx context.Context) ([]string, error) {
	return s.finances.Distinct(ctx, "type")
}

func (s *FinanceService) Vendors(ctx context.Context) ([]string, error) {
	return s.finances.Distinct(ctx, "vendorName")
}

func (s *FinanceService) Search(ctx context.Context, query string) ([]models.ClinicFinance, error) {
	return s.finances.Search(ctx, query)
}

func (s *FinanceService) ExportExcel(ctx context.Context, start, end string) ([]byte, error) {
	txns, err := s.finances.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return utils.FinanceToExcel(txns)
}
