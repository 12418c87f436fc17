package backoff

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExponential_Period(t *testing.T) {
	t.Run("DefaultBase", func(t *testing.T) {
		b := NewExponential()

		// 100ms × (1.25ⁿ − 1)，向零截断到整数毫秒
		assert.Equal(t, time.Duration(0), b.Period(0))
		assert.Equal(t, 25*time.Millisecond, b.Period(1))
		assert.Equal(t, 56*time.Millisecond, b.Period(2))
		assert.Equal(t, 95*time.Millisecond, b.Period(3))
	})

	t.Run("Base10", func(t *testing.T) {
		b := NewExponential(WithBase(10))

		assert.Equal(t, time.Duration(0), b.Period(0))
		assert.Equal(t, 900*time.Millisecond, b.Period(1))
		assert.Equal(t, 9900*time.Millisecond, b.Period(2))
		assert.Equal(t, 99900*time.Millisecond, b.Period(3))
	})

	t.Run("SamePeriodTwice", func(t *testing.T) {
		// 同一实例对相同的 attempts 必须返回相同时长
		b := NewExponential()
		for n := 0; n <= 8; n++ {
			assert.Equal(t, b.Period(n), b.Period(n))
		}
	})

	t.Run("InvalidBaseIgnored", func(t *testing.T) {
		// base <= 1 被忽略，保持默认值
		for _, base := range []float64{1.0, 0.5, 0, -2, math.Inf(1), math.NaN()} {
			b := NewExponential(WithBase(base))
			assert.Equal(t, 25*time.Millisecond, b.Period(1), "base=%v", base)
		}
	})

	t.Run("NilOptionSkipped", func(t *testing.T) {
		b := NewExponential(nil, WithBase(10))
		assert.Equal(t, 900*time.Millisecond, b.Period(1))
	})

	t.Run("NegativeAttempts", func(t *testing.T) {
		b := NewExponential()
		assert.Equal(t, time.Duration(0), b.Period(-1))
		assert.Equal(t, time.Duration(0), b.Period(math.MinInt))
	})

	t.Run("ZeroValueUsable", func(t *testing.T) {
		// 绕过工厂直接构造时基数回退为 DefaultBase
		var b Exponential
		assert.Equal(t, 25*time.Millisecond, b.Period(1))
	})

	t.Run("Monotonic", func(t *testing.T) {
		for _, base := range []float64{1.01, 1.25, 2, 10} {
			b := NewExponential(WithBase(base))
			prev := time.Duration(0)
			for n := 0; n <= 64; n++ {
				d := b.Period(n)
				assert.GreaterOrEqual(t, d, prev, "base=%v attempts=%d", base, n)
				prev = d
			}
		}
	})

	t.Run("OverflowClamped", func(t *testing.T) {
		b := NewExponential(WithBase(10))

		// 10⁴⁰⁰ 远超 float64 可表示范围，必须截断为最大时长而非变成负数
		d := b.Period(400)
		assert.Equal(t, time.Duration(math.MaxInt64), d)
		// 截断之后保持单调
		assert.Equal(t, d, b.Period(401))
		assert.Equal(t, d, b.Period(math.MaxInt))
	})
}
