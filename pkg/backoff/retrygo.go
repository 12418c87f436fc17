package backoff

import (
	"math"
	"time"

	retry "github.com/avast/retry-go/v5"
)

// ToDelayType 将 Policy 转换为 retry-go 的 DelayTypeFunc。
//
// 用于把本包的退避策略挂进 avast/retry-go/v5 的重试循环：
//
//	err := retry.New(
//	    retry.DelayType(backoff.ToDelayType(backoff.NewExponential())),
//	    retry.Attempts(5),
//	).Do(op)
//
// retry-go v5 中 DelayType 的 n 从 1 开始（已失败次数），与异步任务的
// 计数口径一致，直接透传给 Period。首次重试前的等待因此是 Period(1)
// 而非 Period(0)；需要立即首次重试的场景应使用本模块自带的重试引擎。
//
// nil 策略返回零延迟函数，等价于 Immediate。
func ToDelayType(policy Policy) retry.DelayTypeFunc {
	if policy == nil {
		return func(_ uint, _ error, _ retry.DelayContext) time.Duration {
			return 0
		}
	}
	return func(n uint, _ error, _ retry.DelayContext) time.Duration {
		return policy.Period(safeUintToInt(n))
	}
}

// safeUintToInt 安全地将 uint 转换为 int，避免大值回绕为负数。
func safeUintToInt(n uint) int {
	if n > uint(math.MaxInt) {
		return math.MaxInt
	}
	return int(n)
}
