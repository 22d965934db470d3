package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NavidentClinic/models"
	"NavidentClinic/utils"
)

func insuranceFixture(t *testing.T) (*InsuranceService, *models.Insurance) {
	t.Helper()
	patient := &models.Patient{FirstName: "Jane", LastName: "Doe"}
	svc := NewInsuranceService(newFakeInsuranceStore(), newFakePatientLookup(patient))

	created, err := svc.Create(context.Background(), &models.Insurance{
		PatientID:    patient.ID.Hex(),
		AgencyName:   "Delta Dental",
		PolicyNumber: "POL-1001",
	})
	require.NoError(t, err)
	return svc, created
}

func TestCreateInsuranceResetsClaimFlags(t *testing.T) {
	_, created := insuranceFixture(t)

	assert.Equal(t, models.InsuranceActive, created.Status)
	assert.True(t, created.Active)
	assert.False(t, created.ClaimSubmitted)
	assert.False(t, created.ClaimApproved)
}

func TestSubmitClaimOnFreshPolicy(t *testing.T) {
	svc, created := insuranceFixture(t)
	ctx := context.Background()

	updated, err := svc.SubmitClaim(ctx, created.ID.Hex(), decimal.RequireFromString("350.00"), "Root canal")
	require.NoError(t, err)
	assert.Equal(t, models.InsuranceClaimed, updated.Status)
	assert.True(t, updated.ClaimSubmitted)
	assert.False(t, updated.ClaimApproved)
	assert.True(t, updated.ClaimAmount.Equal(decimal.RequireFromString("350.00")))
	assert.Equal(t, "Root canal", updated.TreatmentDescription)
}

func TestSubmitClaimTwiceIsRejected(t *testing.T) {
	svc, created := insuranceFixture(t)
	ctx := context.Background()

	_, err := svc.SubmitClaim(ctx, created.ID.Hex(), decimal.NewFromInt(100), "Filling")
	require.NoError(t, err)

	_, err = svc.SubmitClaim(ctx, created.ID.Hex(), decimal.NewFromInt(200), "Crown")
	assert.Equal(t, utils.KindInvalidState, errKind(err))
}

func TestSubmitClaimRejectsNonPositiveAmount(t *testing.T) {
	svc, created := insuranceFixture(t)
	ctx := context.Background()

	_, err := svc.SubmitClaim(ctx, created.ID.Hex(), decimal.Zero, "Filling")
	assert.Equal(t, utils.KindInvalidArgument, errKind(err))

	_, err = svc.SubmitClaim(ctx, created.ID.Hex(), decimal.NewFromInt(-50), "Filling")
	assert.Equal(t, utils.KindInvalidArgument, errKind(err))
}

func TestApproveClaimRequiresSubmittedClaim(t *testing.T) {
	svc, created := insuranceFixture(t)

	_, err := svc.ApproveClaim(context.Background(), created.ID.Hex(), decimal.NewFromInt(100))
	assert.Equal(t, utils.KindInvalidState, errKind(err))
}

func TestApproveClaimAfterSubmission(t *testing.T) {
	svc, created := insuranceFixture(t)
	ctx := context.Background()

	_, err := svc.SubmitClaim(ctx, created.ID.Hex(), decimal.RequireFromString("350.00"), "Root canal")
	require.NoError(t, err)

	approved, err := svc.ApproveClaim(ctx, created.ID.Hex(), decimal.RequireFromString("300.00"))
	require.NoError(t, err)
	assert.Equal(t, models.InsuranceApproved, approved.Status)
	assert.True(t, approved.ClaimApproved)
	assert.True(t, approved.ApprovedClaimAmount.Equal(decimal.RequireFromString("300.00")))
	assert.True(t, approved.ClaimAmount.Equal(decimal.RequireFromString("350.00")))
}

func TestApproveClaimTwiceIsRejected(t *testing.T) {
	svc, created := insuranceFixture(t)
	ctx := context.Background()

	_, err := svc.SubmitClaim(ctx, created.ID.Hex(), decimal.NewFromInt(100), "Filling")
	require.NoError(t, err)
	_, err = svc.ApproveClaim(ctx, created.ID.Hex(), decimal.NewFromInt(100))
	require.NoError(t, err)

	_, err = svc.ApproveClaim(ctx, created.ID.Hex(), decimal.NewFromInt(100))
	assert.Equal(t, utils.KindInvalidState, errKind(err))
}

func TestUpdateStatusKeepsActiveFlagInStep(t *testing.T) {
	svc, created := insuranceFixture(t)
	ctx := context.Background()

	updated, err := svc.UpdateStatus(ctx, created.ID.Hex(), models.InsuranceExpired)
	require.NoError(t, err)
	assert.Equal(t, models.InsuranceExpired, updated.Status)
	assert.False(t, updated.Active)

	updated, err = svc.UpdateStatus(ctx, created.ID.Hex(), models.InsuranceActive)
	require.NoError(t, err)
	assert.True(t, updated.Active)

	_, err = svc.UpdateStatus(ctx, created.ID.Hex(), "SUSPENDED")
	assert.Equal(t, utils.KindInvalidArgument, errKind(err))
}

func TestGetExpiringSoonUsesThirtyDayWindow(t *testing.T) {
	patient := &models.Patient{FirstName: "Jane", LastName: "Doe"}
	svc := NewInsuranceService(newFakeInsuranceStore(), newFakePatientLookup(patient))
	ctx := context.Background()

	mk := func(policy, endDate string) {
		_, err := svc.Create(ctx, &models.Insurance{
			PatientID:     patient.ID.Hex(),
			AgencyName:    "Delta Dental",
			PolicyNumber:  policy,
			PolicyEndDate: endDate,
		})
		require.NoError(t, err)
	}

	inWindow := time.Now().AddDate(0, 0, 10).Format(utils.DateLayout)
	pastWindow := time.Now().AddDate(0, 0, 45).Format(utils.DateLayout)
	alreadyEnded := time.Now().AddDate(0, 0, -5).Format(utils.DateLayout)

	mk("POL-1", inWindow)
	mk("POL-2", pastWindow)
	mk("POL-3", alreadyEnded)

	expiring, err := svc.GetExpiringSoon(ctx)
	require.NoError(t, err)
	require.Len(t, expiring, 1)
	assert.Equal(t, "POL-1", expiring[0].PolicyNumber)
}

func TestCreateInsuranceUnknownPatient(t *testing.T) {
	svc := NewInsuranceService(newFakeInsuranceStore(), newFakePatientLookup())

	_, err := svc.Create(context.Background(), &models.Insurance{
		PatientID:    "aaaaaaaaaaaaaaaaaaaaaaaa",
		AgencyName:   "Delta Dental",
		PolicyNumber: "POL-1001",
	})
	assert.Equal(t, utils.KindNotFound, errKind(err))
}
