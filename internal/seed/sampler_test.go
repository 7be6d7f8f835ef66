package seed

import (
	"testing"
	"time"

	"volunteerhub_backend/internal/appErrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoice(t *testing.T) {
	s := NewSampler(42)

	set := []string{"a", "b", "c"}
	for i := 0; i < 50; i++ {
		v, err := Choice(s, set)
		require.NoError(t, err)
		assert.Contains(t, set, v)
	}
}

func TestChoiceEmptySet(t *testing.T) {
	s := NewSampler(42)

	_, err := Choice(s, []string{})
	require.Error(t, err)
	assert.Equal(t, appErrors.CodeEmptyDomain, appErrors.CodeOf(err))
}

func TestSampleDistinct(t *testing.T) {
	s := NewSampler(42)

	set := []int{1, 2, 3, 4, 5, 6, 7, 8}
	picked, err := SampleDistinct(s, set, 5)
	require.NoError(t, err)
	require.Len(t, picked, 5)

	seen := make(map[int]bool)
	for _, v := range picked {
		assert.False(t, seen[v], "element %d picked twice", v)
		assert.Contains(t, set, v)
		seen[v] = true
	}
}

func TestSampleDistinctTooLarge(t *testing.T) {
	s := NewSampler(42)

	_, err := SampleDistinct(s, []int{1, 2}, 3)
	require.Error(t, err)
	assert.Equal(t, appErrors.CodeEmptyDomain, appErrors.CodeOf(err))
}

func TestDistinctPair(t *testing.T) {
	s := NewSampler(42)

	set := []string{"x", "y", "z"}
	for i := 0; i < 50; i++ {
		a, b, err := DistinctPair(s, set)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	}
}

func TestIntRange(t *testing.T) {
	s := NewSampler(42)

	sawMin, sawMax := false, false
	for i := 0; i < 200; i++ {
		v, err := s.IntRange(3, 7)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 7)
		if v == 3 {
			sawMin = true
		}
		if v == 7 {
			sawMax = true
		}
	}
	// границы включительны
	assert.True(t, sawMin)
	assert.True(t, sawMax)
}

func TestIntRangeInverted(t *testing.T) {
	s := NewSampler(42)

	_, err := s.IntRange(10, 5)
	require.Error(t, err)
	assert.Equal(t, appErrors.CodeConstraintViolation, appErrors.CodeOf(err))
}

func TestFloatRange(t *testing.T) {
	s := NewSampler(42)

	for i := 0; i < 100; i++ {
		v, err := s.FloatRange(1.0, 5.0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 1.0)
		assert.LessOrEqual(t, v, 5.0)
	}

	_, err := s.FloatRange(2.0, 1.0)
	require.Error(t, err)
}

func TestDateBetween(t *testing.T) {
	s := NewSampler(42)

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		v, err := s.DateBetween(start, end)
		require.NoError(t, err)
		assert.False(t, v.Before(start))
		assert.False(t, v.After(end))
	}

	same, err := s.DateBetween(start, start)
	require.NoError(t, err)
	assert.Equal(t, start, same)

	_, err = s.DateBetween(end, start)
	require.Error(t, err)
	assert.Equal(t, appErrors.CodeConstraintViolation, appErrors.CodeOf(err))
}

func TestDateAfter(t *testing.T) {
	s := NewSampler(42)

	lower := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	upper := lower.AddDate(0, 1, 0)

	for i := 0; i < 100; i++ {
		v, err := s.DateAfter(lower, upper)
		require.NoError(t, err)
		assert.False(t, v.Before(lower))
		assert.False(t, v.After(upper))
	}
}

func TestSeededReproducibility(t *testing.T) {
	a := NewSampler(7)
	b := NewSampler(7)

	for i := 0; i < 100; i++ {
		va, err := a.IntRange(0, 1000)
		require.NoError(t, err)
		vb, err := b.IntRange(0, 1000)
		require.NoError(t, err)
		assert.Equal(t, va, vb)
	}
}

func TestBoolProbabilityExtremes(t *testing.T) {
	s := NewSampler(42)

	for i := 0; i < 50; i++ {
		assert.False(t, s.Bool(0))
		assert.True(t, s.Bool(1))
	}
}
