package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NavidentClinic/models"
	"NavidentClinic/utils"
)

func newDentist(first, last, license string, chief bool) *models.Dentist {
	return &models.Dentist{
		FirstName:     first,
		LastName:      last,
		LicenseNumber: license,
		Active:        true,
		ChiefDentist:  chief,
	}
}

func TestCreateDentistRejectsDuplicateLicense(t *testing.T) {
	store := newFakeDentistStore()
	svc := NewDentistService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, newDentist("Anna", "Reed", "LIC-1", false))
	require.NoError(t, err)

	_, err = svc.Create(ctx, newDentist("Ben", "Stone", "LIC-1", false))
	require.Error(t, err)
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, utils.KindConflict, appErr.Kind)
}

func TestPromotingDentistDemotesCurrentChief(t *testing.T) {
	store := newFakeDentistStore()
	svc := NewDentistService(store)
	ctx := context.Background()

	first, err := svc.Create(ctx, newDentist("Anna", "Reed", "LIC-1", true))
	require.NoError(t, err)
	second, err := svc.Create(ctx, newDentist("Ben", "Stone", "LIC-2", false))
	require.NoError(t, err)

	promoted := *second
	promoted.ChiefDentist = true
	_, err = svc.Update(ctx, second.ID.Hex(), &promoted)
	require.NoError(t, err)

	chiefs, err := store.FindByChiefDentistTrue(ctx)
	require.NoError(t, err)
	require.Len(t, chiefs, 1)
	assert.Equal(t, second.ID, chiefs[0].ID)

	demoted, err := svc.GetByID(ctx, first.ID.Hex())
	require.NoError(t, err)
	assert.False(t, demoted.ChiefDentist)
}

func TestCreatingChiefDemotesExistingChief(t *testing.T) {
	store := newFakeDentistStore()
	svc := NewDentistService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, newDentist("Anna", "Reed", "LIC-1", true))
	require.NoError(t, err)
	_, err = svc.Create(ctx, newDentist("Ben", "Stone", "LIC-2", true))
	require.NoError(t, err)

	chiefs, err := store.FindByChiefDentistTrue(ctx)
	require.NoError(t, err)
	assert.Len(t, chiefs, 1)
}

func TestDemotedChiefGetsUpdatedAtBumped(t *testing.T) {
	store := newFakeDentistStore()
	svc := NewDentistService(store)
	ctx := context.Background()

	first, err := svc.Create(ctx, newDentist("Anna", "Reed", "LIC-1", true))
	require.NoError(t, err)
	before := first.UpdatedAt

	_, err = svc.Create(ctx, newDentist("Ben", "Stone", "LIC-2", true))
	require.NoError(t, err)

	demoted, err := svc.GetByID(ctx, first.ID.Hex())
	require.NoError(t, err)
	assert.False(t, demoted.ChiefDentist)
	assert.True(t, demoted.UpdatedAt.After(before))
}

func TestCreateChiefCommitsDemotionsBeforeInsert(t *testing.T) {
	store := newFakeDentistStore()
	svc := NewDentistService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, newDentist("Anna", "Reed", "LIC-1", false))
	require.NoError(t, err)
	_, err = svc.Create(ctx, newDentist("Ben", "Stone", "LIC-2", true))
	require.NoError(t, err)

	assert.Equal(t, []string{"insert", "clearChief", "insert"}, store.writes)
}

func TestUpdateWithoutPromotionKeepsChief(t *testing.T) {
	store := newFakeDentistStore()
	svc := NewDentistService(store)
	ctx := context.Background()

	chief, err := svc.Create(ctx, newDentist("Anna", "Reed", "LIC-1", true))
	require.NoError(t, err)

	renamed := *chief
	renamed.FirstName = "Annabel"
	updated, err := svc.Update(ctx, chief.ID.Hex(), &renamed)
	require.NoError(t, err)
	assert.True(t, updated.ChiefDentist)
	assert.Equal(t, "Annabel", updated.FirstName)
}

func TestConcurrentPromotionsLeaveSingleChief(t *testing.T) {
	store := newFakeDentistStore()
	svc := NewDentistService(store)
	ctx := context.Background()

	var ids []string
	for _, d := range []*models.Dentist{
		newDentist("Anna", "Reed", "LIC-1", false),
		newDentist("Ben", "Stone", "LIC-2", false),
		newDentist("Cara", "Wells", "LIC-3", false),
		newDentist("Dan", "Price", "LIC-4", false),
	} {
		created, err := svc.Create(ctx, d)
		require.NoError(t, err)
		ids = append(ids, created.ID.Hex())
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			existing, err := svc.GetByID(ctx, id)
			if err != nil {
				return
			}
			promoted := *existing
			promoted.ChiefDentist = true
			_, _ = svc.Update(ctx, id, &promoted)
		}(id)
	}
	wg.Wait()

	chiefs, err := store.FindByChiefDentistTrue(ctx)
	require.NoError(t, err)
	assert.Len(t, chiefs, 1)
}

func TestGetChiefWhenNoneExists(t *testing.T) {
	svc := NewDentistService(newFakeDentistStore())

	_, err := svc.GetChief(context.Background())
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, utils.KindNotFound, appErr.Kind)
}

func TestDeleteMissingDentistReturnsNotFound(t *testing.T) {
	svc := NewDentistService(newFakeDentistStore())

	err := svc.Delete(context.Background(), "656e6f7567682062797465730000")
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, utils.KindNotFound, appErr.Kind)
}
