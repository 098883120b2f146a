package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jugad/internal/analytics"
)

func TestPageTracksViewAndCarriesCopy(t *testing.T) {
	sink := analytics.NewMemorySink()
	svc := NewService(DefaultCatalog(), sink)

	page := svc.Page("test")

	assert.Equal(t, VATLabel, page.VATLabel)
	assert.Equal(t, DefaultDurationDays, page.DefaultDurationDays)
	assert.Equal(t, SocialProofCount, page.SocialProof)
	assert.Len(t, page.Plans, 2)
	assert.Len(t, page.Packs, 4)
	assert.Len(t, page.CreditScale, 6)

	require.Len(t, sink.Events(), 1)
	assert.Equal(t, analytics.EventPricingView, sink.Events()[0].Name)
}

func TestPlansIncludeYearlySavings(t *testing.T) {
	svc := NewService(DefaultCatalog(), nil)

	plans := svc.Plans()
	require.Len(t, plans, 2)

	// essential: 6.99*12 = 83.88 vs 59 yearly, ~29% off
	assert.Equal(t, "essential", plans[0].ID)
	assert.Equal(t, 29, plans[0].YearlySavingsPercent)

	// pro: 11.99*12 = 143.88 vs 99 yearly, ~31% off
	assert.Equal(t, "pro", plans[1].ID)
	assert.Equal(t, 31, plans[1].YearlySavingsPercent)
}

func TestPacksIncludeDaysCovered(t *testing.T) {
	svc := NewService(DefaultCatalog(), nil)

	packs := svc.Packs()
	require.Len(t, packs, 4)
	assert.Equal(t, "smart60", packs[1].ID)
	assert.Equal(t, 15, packs[1].DaysCovered)
}

func TestServiceRecommendMapsResponse(t *testing.T) {
	svc := NewService(DefaultCatalog(), nil)

	resp, err := svc.Recommend(7, ModeCredits)
	require.NoError(t, err)
	assert.Equal(t, 28, resp.CreditsNeeded)
	require.NotNil(t, resp.Pack)
	assert.Equal(t, "smart60", resp.Pack.ID)
	assert.Nil(t, resp.Plan)

	resp, err = svc.Recommend(12, ModeSubscription)
	require.NoError(t, err)
	require.NotNil(t, resp.Plan)
	assert.Equal(t, "pro", resp.Plan.ID)
}
