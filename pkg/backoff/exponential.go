package backoff

import (
	"math"
	"time"
)

// DefaultBase 指数退避的默认增长基数。
const DefaultBase = 1.25

// maxPeriodMillis 是 Period 能表示的最大整数毫秒数，
// 超过它的计算结果统一截断为最大时长，避免 float64 → Duration 溢出。
const maxPeriodMillis = float64(math.MaxInt64 / int64(time.Millisecond))

// Exponential 指数退避策略。
//
// Period(n) = 100ms × (baseⁿ − 1)，向零截断到整数毫秒。
// n = 0 时为 0：首次失败后的重试立即执行，此后等待时长按几何级数增长。
// 对任意 base > 1，Period 关于 n 单调不减。
type Exponential struct {
	base float64
}

// ExponentialOption 指数退避配置选项。
type ExponentialOption func(*Exponential)

// WithBase 设置增长基数。
// 基数必须 > 1，否则退避时长不再随失败次数增长；
// 无效值会被静默忽略（保持默认值 DefaultBase）。
func WithBase(base float64) ExponentialOption {
	return func(e *Exponential) {
		if base > 1 && !math.IsInf(base, 1) {
			e.base = base
		}
	}
}

// NewExponential 创建指数退避策略。
// 默认基数为 DefaultBase (1.25)，对应的前几个周期为 0ms、25ms、56ms、95ms。
func NewExponential(opts ...ExponentialOption) *Exponential {
	e := &Exponential{base: DefaultBase}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

func (e *Exponential) Period(attempts int) time.Duration {
	if attempts <= 0 {
		return 0
	}

	// 零值 Exponential（绕过工厂直接构造）基数为 0，回退到默认值。
	base := e.base
	if base <= 1 {
		base = DefaultBase
	}

	ms := (math.Pow(base, float64(attempts)) - 1) * 100

	// attempts 很大时 math.Pow 溢出为 +Inf；为保持单调性，统一截断为最大时长。
	if math.IsInf(ms, 1) || ms >= maxPeriodMillis {
		return time.Duration(math.MaxInt64)
	}

	return time.Duration(ms) * time.Millisecond
}

// 确保实现了接口
var _ Policy = (*Exponential)(nil)
