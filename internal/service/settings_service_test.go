package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"theaterlist/internal/store"
)

func TestSettings_DefaultsWhenUnset(t *testing.T) {
	svc := NewSettingsService(store.NewMemoryKV(), zap.NewNop())

	header, err := svc.Get(context.Background(), SettingEmailHeader)
	require.NoError(t, err)
	require.Equal(t, DefaultEmailHeader, header)

	prompt, err := svc.Get(context.Background(), SettingAIPrompt)
	require.NoError(t, err)
	require.Contains(t, prompt, "surgical theatre list")
}

func TestSettings_SetOverridesDefault(t *testing.T) {
	svc := NewSettingsService(store.NewMemoryKV(), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, SettingEmailBody, "custom body for [doctor name]"))
	body, err := svc.Get(ctx, SettingEmailBody)
	require.NoError(t, err)
	require.Equal(t, "custom body for [doctor name]", body)

	// The other settings keep their defaults.
	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, DefaultEmailHeader, all[SettingEmailHeader])
}

func TestSettings_UnknownKeyRejected(t *testing.T) {
	svc := NewSettingsService(store.NewMemoryKV(), zap.NewNop())

	_, err := svc.Get(context.Background(), "settings:unknown")
	require.Error(t, err)
	require.Error(t, svc.Set(context.Background(), "settings:unknown", "x"))
}
