package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kiattisakchaochata/backendTopaward/internal/app/repository"
	"github.com/Kiattisakchaochata/backendTopaward/internal/db"
)

func setupTrackingServiceTest(t *testing.T) TrackingService {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})
	return NewTrackingService(repository.NewTrackingRepository(testDB))
}

func uintPtr(v uint) *uint { return &v }

func TestTrackingService_CreateRequiresBody(t *testing.T) {
	svc := setupTrackingServiceTest(t)

	_, err := svc.CreateScript(TrackingInput{Provider: "ga4"})
	assert.ErrorIs(t, err, ErrTrackingBodyRequired)

	empty := "   "
	_, err = svc.CreateScript(TrackingInput{Provider: "ga4", TrackingID: &empty})
	assert.ErrorIs(t, err, ErrTrackingBodyRequired)

	id := "G-ABC123"
	script, err := svc.CreateScript(TrackingInput{Provider: "ga4", TrackingID: &id})
	require.NoError(t, err)
	assert.Equal(t, "HEAD", script.Placement)
	assert.Equal(t, "afterInteractive", script.Strategy)
	assert.True(t, script.Enabled)
}

func TestTrackingService_PublicScopes(t *testing.T) {
	svc := setupTrackingServiceTest(t)

	globalID := "G-GLOBAL"
	storeID := "G-STORE"
	disabledID := "G-OFF"
	off := false

	_, err := svc.CreateScript(TrackingInput{Provider: "ga4", TrackingID: &globalID})
	require.NoError(t, err)
	_, err = svc.CreateScript(TrackingInput{Provider: "ga4", TrackingID: &storeID, StoreID: uintPtr(7)})
	require.NoError(t, err)
	_, err = svc.CreateScript(TrackingInput{Provider: "ga4", TrackingID: &disabledID, StoreID: uintPtr(7), Enabled: &off})
	require.NoError(t, err)

	// No store: global set only.
	scripts, err := svc.GetPublicScripts(nil, ScopeCombined)
	require.NoError(t, err)
	require.Len(t, scripts, 1)
	assert.Equal(t, globalID, *scripts[0].TrackingID)

	// Store page: store plus global, disabled excluded.
	scripts, err = svc.GetPublicScripts(uintPtr(7), ScopeCombined)
	require.NoError(t, err)
	assert.Len(t, scripts, 2)

	// only=store narrows to the store's own scripts.
	scripts, err = svc.GetPublicScripts(uintPtr(7), ScopeStore)
	require.NoError(t, err)
	require.Len(t, scripts, 1)
	assert.Equal(t, storeID, *scripts[0].TrackingID)

	// only=global ignores the store entirely.
	scripts, err = svc.GetPublicScripts(uintPtr(7), ScopeGlobal)
	require.NoError(t, err)
	require.Len(t, scripts, 1)
	assert.Equal(t, globalID, *scripts[0].TrackingID)
}

func TestTrackingService_UpdateCannotClearBody(t *testing.T) {
	svc := setupTrackingServiceTest(t)

	id := "G-ABC"
	script, err := svc.CreateScript(TrackingInput{Provider: "ga4", TrackingID: &id})
	require.NoError(t, err)

	empty := ""
	_, err = svc.UpdateScript(script.ID, TrackingInput{TrackingID: &empty})
	assert.ErrorIs(t, err, ErrTrackingBodyRequired)

	raw := "<script>console.log('x')</script>"
	updated, err := svc.UpdateScript(script.ID, TrackingInput{TrackingID: &empty, Script: &raw})
	require.NoError(t, err)
	require.NotNil(t, updated.Script)
}
