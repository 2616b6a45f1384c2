package impl

import (
	"context"
	"testing"

	"gearshop/internal/domain/entity"
	"gearshop/internal/domain/gateway"
	"gearshop/internal/errors"
	"gearshop/internal/infra/memory"
	"gearshop/internal/usecase"

	domainerrors "gearshop/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsService(gw *memory.Gateway) usecase.SettingsUsecase {
	return NewSettingsService(SettingsServiceParams{
		Gateway: gw,
		Logger:  newDiscardLogger(),
	})
}

func TestSettingsService_Fetch_LazyInitializesDefaults(t *testing.T) {
	gw := memory.NewGateway()
	svc := newSettingsService(gw)

	settings, err := svc.Fetch(context.Background())

	require.NoError(t, err)
	assert.True(t, settings.RazorpayEnabled)
	assert.True(t, settings.CODEnabled)

	// The absent record was seeded remotely, not just defaulted locally.
	assert.Equal(t, 1, gw.WriteCount(gateway.PaymentSettingsPath))

	var stored entity.Settings
	found, err := gw.Read(context.Background(), gateway.PaymentSettingsPath, &stored)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, entity.DefaultSettings(), stored)
}

func TestSettingsService_Fetch_ReturnsStoredRecord(t *testing.T) {
	gw := memory.NewGateway()
	seeded := entity.Settings{RazorpayEnabled: false, CODEnabled: true}
	require.NoError(t, gw.Write(context.Background(), gateway.PaymentSettingsPath, seeded))

	settings, err := newSettingsService(gw).Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, seeded, settings)
}

func TestSettingsService_Fetch_SeedFailureStillReturnsDefaults(t *testing.T) {
	gw := memory.NewGateway()
	gw.FailWrites(errors.New("permission denied"))

	settings, err := newSettingsService(gw).Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSettings(), settings)
}

func TestSettingsService_Update_AppliesPatch(t *testing.T) {
	gw := memory.NewGateway()
	svc := newSettingsService(gw)

	settings, err := svc.Update(context.Background(), entity.SettingsPatch{CODEnabled: boolPtr(false)})

	require.NoError(t, err)
	assert.True(t, settings.RazorpayEnabled)
	assert.False(t, settings.CODEnabled)

	var stored entity.Settings
	found, err := gw.Read(context.Background(), gateway.PaymentSettingsPath, &stored)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, settings, stored)
}

func TestSettingsService_Update_RejectsDisablingEveryChannel(t *testing.T) {
	gw := memory.NewGateway()
	seeded := entity.Settings{RazorpayEnabled: true, CODEnabled: false}
	require.NoError(t, gw.Write(context.Background(), gateway.PaymentSettingsPath, seeded))

	svc := newSettingsService(gw)
	_, err := svc.Fetch(context.Background())
	require.NoError(t, err)
	writesBefore := gw.WriteCount(gateway.PaymentSettingsPath)

	_, err = svc.Update(context.Background(), entity.SettingsPatch{RazorpayEnabled: boolPtr(false)})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentChannelsDisabled)
	assert.Equal(t, writesBefore, gw.WriteCount(gateway.PaymentSettingsPath),
		"a rejected update must never reach the gateway")

	var stored entity.Settings
	found, err := gw.Read(context.Background(), gateway.PaymentSettingsPath, &stored)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, seeded, stored)
}

func TestSettingsService_Update_WriteFailure(t *testing.T) {
	gw := memory.NewGateway()
	svc := newSettingsService(gw)
	_, err := svc.Fetch(context.Background())
	require.NoError(t, err)

	gw.FailWrites(errors.New("permission denied"))

	_, err = svc.Update(context.Background(), entity.SettingsPatch{CODEnabled: boolPtr(false)})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRemoteWriteFailed)
}
