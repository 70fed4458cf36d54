package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"librental/model"
)

func TestDate_AddDays(t *testing.T) {
	d := model.NewDate(time.Date(2024, 2, 27, 15, 4, 5, 0, time.UTC))
	require.Equal(t, "2024-02-27", d.String())

	// Crosses the leap day.
	require.Equal(t, "2024-03-05", d.AddDays(7).String())
	require.Equal(t, "2024-02-13", d.AddDays(-14).String())
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := model.NewDate(time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC))
	b, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `"2024-05-01"`, string(b))

	var got model.Date
	require.NoError(t, json.Unmarshal(b, &got))
	require.True(t, d.Equal(got))
}

func TestDate_UnmarshalNull(t *testing.T) {
	var d model.Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	require.True(t, d.IsZero())
}

func TestDate_TruncatesTimeComponent(t *testing.T) {
	morning := model.NewDate(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))
	evening := model.NewDate(time.Date(2024, 5, 1, 22, 30, 0, 0, time.UTC))
	require.True(t, morning.Equal(evening))
}

func TestDate_Scan(t *testing.T) {
	var d model.Date
	require.NoError(t, d.Scan(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, "2024-05-01", d.String())

	require.NoError(t, d.Scan("2024-06-02"))
	require.Equal(t, "2024-06-02", d.String())

	require.Error(t, d.Scan(42))
}
