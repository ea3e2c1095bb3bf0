package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiplierFor(t *testing.T) {
	tests := []struct {
		code string
		want float64
		ok   bool
	}{
		{"K", 1e3, true},
		{"M", 1e6, true},
		{"B", 1e9, true},
		{"0", 1, true},
		{"3", 1e3, true},
		{"4", 1e4, true},
		{"5", 1e5, true},
		{"6", 1e6, true},
		{"7", 1e7, true},
		{"9", 1e9, true},
		// Codes the NWS directive never defined stay unscaled.
		{"k", 1, false},
		{"m", 1, false},
		{"h", 1, false},
		{"H", 1, false},
		{"?", 1, false},
		{"+", 1, false},
		{"-", 1, false},
		{"", 1, false},
	}

	for _, tt := range tests {
		t.Run("code "+tt.code, func(t *testing.T) {
			mult, ok := MultiplierFor(tt.code)
			assert.Equal(t, tt.want, mult)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestNormalizeDamage(t *testing.T) {
	t.Run("scales both columns independently", func(t *testing.T) {
		e := StormEvent{PropDamage: 5, PropDamageCode: "K", CropDamage: 2, CropDamageCode: "M"}

		unknown := NormalizeDamage(&e)

		assert.Equal(t, 0, unknown)
		assert.Equal(t, 5000.0, e.PropDamage)
		assert.Equal(t, 2000000.0, e.CropDamage)
	})

	t.Run("digit codes", func(t *testing.T) {
		e := StormEvent{PropDamage: 1.5, PropDamageCode: "5", CropDamage: 3, CropDamageCode: "0"}

		NormalizeDamage(&e)

		assert.Equal(t, 150000.0, e.PropDamage)
		assert.Equal(t, 3.0, e.CropDamage)
	})

	t.Run("unknown codes leave values unchanged and are counted", func(t *testing.T) {
		e := StormEvent{PropDamage: 7, PropDamageCode: "?", CropDamage: 4, CropDamageCode: "h"}

		unknown := NormalizeDamage(&e)

		assert.Equal(t, 2, unknown)
		assert.Equal(t, 7.0, e.PropDamage)
		assert.Equal(t, 4.0, e.CropDamage)
	})

	t.Run("blank codes are not counted as unknown", func(t *testing.T) {
		e := StormEvent{PropDamage: 7, CropDamage: 4}

		unknown := NormalizeDamage(&e)

		assert.Equal(t, 0, unknown)
		assert.Equal(t, 7.0, e.PropDamage)
		assert.Equal(t, 4.0, e.CropDamage)
	})

	t.Run("second pass is a no-op", func(t *testing.T) {
		e := StormEvent{PropDamage: 5, PropDamageCode: "K", CropDamage: 2, CropDamageCode: "B"}

		require.Equal(t, 0, NormalizeDamage(&e))
		first := e

		require.Equal(t, 0, NormalizeDamage(&e))
		assert.Equal(t, first, e)
		assert.Empty(t, e.PropDamageCode)
		assert.Empty(t, e.CropDamageCode)
	})
}
