package services

import (
	"context"
	"testing"

	"orionhotel/constants"
	"orionhotel/errors"
	"orionhotel/models"
	"orionhotel/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaultsWhenEmpty(t *testing.T) {
	env := newTestEnv(t)
	s, err := env.settings.Get(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, "Orion Hotel", s.HotelName)
	assert.Equal(t, 8, s.PasswordMinLength)
	price, ok := s.RoomPrice(constants.RoomTypeSuite)
	assert.True(t, ok)
	assert.Equal(t, 300.0, price)
}

func TestUpdateSettingsRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	s := models.DefaultSystemSettings()
	s.HotelName = "Orion Riverside"
	s.TaxRate = 0.085
	s.RoomPrices[constants.RoomTypeDouble] = 180
	require.NoError(t, env.settings.Update(env.ctx, s))

	raw, err := env.store.Settings.All(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, "8.5", raw[models.SettingTaxRate])
	assert.Equal(t, "180", raw[models.RoomPriceKey(constants.RoomTypeDouble)])

	got, err := env.settings.Get(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, "Orion Riverside", got.HotelName)
	assert.InDelta(t, 0.085, got.TaxRate, 1e-9)

	rate, err := env.settings.DailyRate(env.ctx, &models.Room{RoomType: constants.RoomTypeDouble, Price: 99})
	require.NoError(t, err)
	assert.Equal(t, 180.0, rate)
}

func TestUpdateSettingsValidation(t *testing.T) {
	env := newTestEnv(t)
	cases := map[string]func(*models.SystemSettings){
		"no name":       func(s *models.SystemSettings) { s.HotelName = "" },
		"tax too high":  func(s *models.SystemSettings) { s.TaxRate = 1.5 },
		"short pw":      func(s *models.SystemSettings) { s.PasswordMinLength = 2 },
		"no session":    func(s *models.SystemSettings) { s.SessionTimeoutMinutes = 0 },
		"bad checkout":  func(s *models.SystemSettings) { s.CheckoutTime = "noon" },
		"bad room type": func(s *models.SystemSettings) { s.RoomPrices["Penthouse"] = 900 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			s := models.DefaultSystemSettings()
			mutate(&s)
			err := env.settings.Update(env.ctx, s)
			assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
		})
	}
}

func TestSettingsCachedInRedis(t *testing.T) {
	mr, rdb := newTestRedis(t)
	store := memory.NewStore()
	svc := NewSettingsService(SettingsServiceOptions{Repo: store.Settings, Redis: rdb})
	ctx := context.Background()

	require.NoError(t, store.Settings.Upsert(ctx, map[string]string{models.SettingHotelName: "Cached"}))
	s, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Cached", s.HotelName)
	assert.True(t, mr.Exists(settingsCacheKey))

	// ghi thẳng xuống repo thì cache vẫn giữ giá trị cũ
	require.NoError(t, store.Settings.Upsert(ctx, map[string]string{models.SettingHotelName: "Direct"}))
	s, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Cached", s.HotelName)

	update := models.DefaultSystemSettings()
	update.HotelName = "Updated"
	require.NoError(t, svc.Update(ctx, update))
	assert.False(t, mr.Exists(settingsCacheKey))

	s, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Updated", s.HotelName)
}
