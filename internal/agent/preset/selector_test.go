package preset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func seed(v float64) *float64 { return &v }

func TestResolve_KnownPresetUnchanged(t *testing.T) {
	s := NewSelector(Builtin(), nil)
	for _, def := range Builtin().All() {
		assert.Equal(t, def.ID, s.Resolve(string(def.ID), nil))
	}
}

func TestResolve_UnknownFallsBackToDefault(t *testing.T) {
	s := NewSelector(Builtin(), nil)
	for _, name := range []string{"", "nope", "GM", "Rotate", " gm"} {
		assert.Equal(t, RespectfulPro, s.Resolve(name, nil), "requested %q", name)
	}
}

func TestResolve_RotateWithSeed(t *testing.T) {
	s := NewSelector(Builtin(), func(int) int {
		t.Fatal("random source used despite seed")
		return 0
	})
	rotation := Builtin().Rotation()
	require.Len(t, rotation, 4)

	assert.Equal(t, rotation[2], s.Resolve(Rotate, seed(2)))
	assert.Equal(t, rotation[2], s.Resolve(Rotate, seed(-2)))
	assert.Equal(t, rotation[1], s.Resolve(Rotate, seed(5.9)))

	first := s.Resolve(Rotate, seed(0))
	for k := 0; k < 10; k++ {
		assert.Equal(t, first, s.Resolve(Rotate, seed(float64(len(rotation)*k))))
	}
}

func TestResolve_RotateWithoutSeedUsesRandomSource(t *testing.T) {
	var gotN int
	s := NewSelector(Builtin(), func(n int) int {
		gotN = n
		return 3
	})
	assert.Equal(t, Crypto, s.Resolve(Rotate, nil))
	assert.Equal(t, 4, gotN)
}

func TestResolve_RotateWithoutSeedStaysInRotation(t *testing.T) {
	s := NewSelector(Builtin(), nil)
	rotation := Builtin().Rotation()
	for i := 0; i < 50; i++ {
		assert.Contains(t, rotation, s.Resolve(Rotate, nil))
	}
}

func TestRotationIndex(t *testing.T) {
	tests := []struct {
		seed float64
		n    int
		want int
	}{
		{0, 4, 0},
		{2, 4, 2},
		{7, 4, 3},
		{-7, 4, 3},
		{1e18, 4, 0},
		{math.NaN(), 4, 0},
		{math.Inf(1), 4, 0},
		{3, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RotationIndex(tt.seed, tt.n), "seed=%v n=%d", tt.seed, tt.n)
	}
}
