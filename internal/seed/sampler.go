package seed

import (
	"fmt"
	"math/rand"
	"time"

	"volunteerhub_backend/internal/appErrors"
)

// Sampler - примитивы ограниченной рандомизации поверх внедряемого
// источника. Один и тот же seed дает воспроизводимый прогон.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler создает сэмплер. seed = 0 означает недетерминированный
// прогон (время как источник).
func NewSampler(seed int64) *Sampler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Choice - равномерный выбор одного элемента.
func Choice[T any](s *Sampler, set []T) (T, error) {
	var zero T
	if len(set) == 0 {
		return zero, appErrors.EmptyDomain("choice")
	}
	return set[s.rng.Intn(len(set))], nil
}

// SampleDistinct - k различных элементов без возвращения.
func SampleDistinct[T any](s *Sampler, set []T, k int) ([]T, error) {
	if k < 0 {
		return nil, appErrors.New(appErrors.CodeConstraintViolation, "sampleDistinct: negative k")
	}
	if k > len(set) {
		return nil, appErrors.New(appErrors.CodeEmptyDomain,
			fmt.Sprintf("sampleDistinct: need %d distinct elements, set has %d", k, len(set)))
	}

	picked := make([]T, len(set))
	copy(picked, set)
	s.rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	return picked[:k], nil
}

// DistinctPair - два разных элемента (например, оценщик и оцениваемый).
func DistinctPair[T any](s *Sampler, set []T) (T, T, error) {
	var zero T
	pair, err := SampleDistinct(s, set, 2)
	if err != nil {
		return zero, zero, err
	}
	return pair[0], pair[1], nil
}

// IntRange - целое из [min, max] включительно.
func (s *Sampler) IntRange(min, max int) (int, error) {
	if min > max {
		return 0, appErrors.New(appErrors.CodeConstraintViolation,
			fmt.Sprintf("intRange: min %d > max %d", min, max))
	}
	return min + s.rng.Intn(max-min+1), nil
}

// FloatRange - вещественное из [min, max].
func (s *Sampler) FloatRange(min, max float64) (float64, error) {
	if min > max {
		return 0, appErrors.New(appErrors.CodeConstraintViolation,
			fmt.Sprintf("floatRange: min %f > max %f", min, max))
	}
	return min + s.rng.Float64()*(max-min), nil
}

// Bool возвращает true с вероятностью p.
func (s *Sampler) Bool(p float64) bool {
	return s.rng.Float64() < p
}

// DateBetween - момент из [start, end].
func (s *Sampler) DateBetween(start, end time.Time) (time.Time, error) {
	if start.After(end) {
		return time.Time{}, appErrors.New(appErrors.CodeConstraintViolation,
			fmt.Sprintf("dateBetween: start %s after end %s", start.Format(time.RFC3339), end.Format(time.RFC3339)))
	}
	window := end.Sub(start)
	if window == 0 {
		return start, nil
	}
	return start.Add(time.Duration(s.rng.Int63n(int64(window) + 1))), nil
}

// DateAfter - момент строго не раньше lowerBound, в пределах upperBound.
// Выражает причинный порядок: завершение после начала.
func (s *Sampler) DateAfter(lowerBound, upperBound time.Time) (time.Time, error) {
	return s.DateBetween(lowerBound, upperBound)
}

// Alphanumeric возвращает случайную строку заданной длины.
func (s *Sampler) Alphanumeric(n int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[s.rng.Intn(len(alphabet))]
	}
	return string(b)
}
