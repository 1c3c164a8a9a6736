package model_test

import (
	"testing"

	"studyplanner/internal/model"

	"github.com/stretchr/testify/require"
)

func TestSettings_ValueAndScan(t *testing.T) {
	v, err := model.Settings{"theme": "dark"}.Value()
	require.NoError(t, err)
	require.Equal(t, `{"theme":"dark"}`, v)

	var s model.Settings
	require.NoError(t, s.Scan([]byte(`{"theme":"dark","font_size":14}`)))
	require.Equal(t, "dark", s["theme"])
	require.EqualValues(t, 14, s["font_size"])
}

func TestSettings_NilRoundTrip(t *testing.T) {
	v, err := model.Settings(nil).Value()
	require.NoError(t, err)
	require.Nil(t, v)

	s := model.Settings{"stale": true}
	require.NoError(t, s.Scan(nil))
	require.Nil(t, s)
}

func TestSettings_ScanRejectsGarbage(t *testing.T) {
	var s model.Settings
	require.Error(t, s.Scan("not json"))
	require.Error(t, s.Scan(42))
}

func TestUpdateUserInput_IsEmpty(t *testing.T) {
	require.True(t, model.UpdateUserInput{}.IsEmpty())

	name := "Ada"
	require.False(t, model.UpdateUserInput{Name: &name}.IsEmpty())
}
