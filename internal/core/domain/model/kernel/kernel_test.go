package kernel_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransportMode(t *testing.T) {
	tests := []struct {
		input string
		want  kernel.TransportMode
	}{
		{"road", kernel.TransportModeRoad},
		{" AIR ", kernel.TransportModeAir},
		{"Sea", kernel.TransportModeSea},
		{"rail", kernel.TransportModeRail},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := kernel.ParseTransportMode(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := kernel.ParseTransportMode("teleport")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAllTransportModes(t *testing.T) {
	modes := kernel.AllTransportModes()

	assert.Len(t, modes, 4)
	for _, m := range modes {
		assert.True(t, m.IsValid())
	}
	assert.False(t, kernel.TransportMode("").IsValid())
}

func TestNormalizeCountry(t *testing.T) {
	tests := map[string]string{
		"Казахстан":     "KZ",
		"kazakhstan":    "KZ",
		"kz":            "KZ",
		" KZ ":          "KZ",
		"Китай":         "CN",
		"United States": "US",
		"ОАЭ":           "AE",
		"Atlantis":      "ATLANTIS",
		"":              "",
	}
	for input, want := range tests {
		assert.Equal(t, want, kernel.NormalizeCountry(input), input)
	}
}

func TestEffectiveWindow_Contains(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	tests := []struct {
		name   string
		window kernel.EffectiveWindow
		want   bool
	}{
		{"unbounded", kernel.EffectiveWindow{}, true},
		{"started", kernel.EffectiveWindow{From: &before}, true},
		{"not started", kernel.EffectiveWindow{From: &after}, false},
		{"expired", kernel.EffectiveWindow{Until: &before}, false},
		{"open", kernel.EffectiveWindow{From: &before, Until: &after}, true},
		{"inclusive bounds", kernel.EffectiveWindow{From: &now, Until: &now}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.window.Contains(now))
		})
	}
}
