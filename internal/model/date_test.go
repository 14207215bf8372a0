package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/perpusid/perpustakaan-service/internal/model"
)

func TestDate_DaysSince(t *testing.T) {
	t.Parallel()

	var tests = []struct {
		name string
		d    model.Date
		from model.Date
		want int
	}{
		{
			name: "same day",
			d:    model.NewDate(2024, 1, 8),
			from: model.NewDate(2024, 1, 8),
			want: 0,
		},
		{
			name: "a week apart",
			d:    model.NewDate(2024, 1, 15),
			from: model.NewDate(2024, 1, 8),
			want: 7,
		},
		{
			name: "negative when earlier",
			d:    model.NewDate(2024, 1, 5),
			from: model.NewDate(2024, 1, 8),
			want: -3,
		},
		{
			name: "across the leap day",
			d:    model.NewDate(2024, 3, 1),
			from: model.NewDate(2024, 2, 28),
			want: 2,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.d.DaysSince(tt.from))
		})
	}
}

func TestDate_Comparisons_IgnoreTimeOfDay(t *testing.T) {
	t.Parallel()

	morning := model.DateOf(time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC))
	evening := model.DateOf(time.Date(2024, 1, 8, 23, 30, 0, 0, time.UTC))

	require.True(t, morning.Equal(evening))
	require.False(t, morning.Before(evening))
	require.False(t, evening.After(morning))
	require.Equal(t, 0, evening.DaysSince(morning))
}

func TestDate_JSON(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		d := model.NewDate(2024, 1, 8)
		data, err := json.Marshal(d)
		require.NoError(t, err)
		require.Equal(t, `"2024-01-08"`, string(data))

		var back model.Date
		require.NoError(t, json.Unmarshal(data, &back))
		require.True(t, back.Equal(d))
	})

	t.Run("zero marshals as null", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(model.Date{})
		require.NoError(t, err)
		require.Equal(t, "null", string(data))
	})

	t.Run("null unmarshals as zero", func(t *testing.T) {
		t.Parallel()
		var d model.Date
		require.NoError(t, json.Unmarshal([]byte("null"), &d))
		require.True(t, d.IsZero())
	})

	t.Run("accepts full timestamps", func(t *testing.T) {
		t.Parallel()
		var d model.Date
		require.NoError(t, json.Unmarshal([]byte(`"2024-01-08T15:04:05Z"`), &d))
		require.True(t, d.Equal(model.NewDate(2024, 1, 8)))
	})

	t.Run("rejects garbage", func(t *testing.T) {
		t.Parallel()
		var d model.Date
		require.Error(t, json.Unmarshal([]byte(`"next tuesday"`), &d))
	})
}

func TestDate_AddDays(t *testing.T) {
	t.Parallel()

	d := model.NewDate(2024, 1, 28)
	require.True(t, d.AddDays(7).Equal(model.NewDate(2024, 2, 4)))
	require.True(t, d.AddDays(-28).Equal(model.NewDate(2023, 12, 31)))
}

func TestDate_Scan(t *testing.T) {
	t.Parallel()

	var d model.Date
	require.NoError(t, d.Scan(time.Date(2024, 1, 8, 13, 0, 0, 0, time.UTC)))
	require.True(t, d.Equal(model.NewDate(2024, 1, 8)))

	require.NoError(t, d.Scan("2024-02-29"))
	require.True(t, d.Equal(model.NewDate(2024, 2, 29)))

	require.NoError(t, d.Scan(nil))
	require.True(t, d.IsZero())

	require.Error(t, d.Scan(42))
}
