package retry

import (
	"github.com/zebp/tryagain/pkg/backoff"
)

// Predicate 判定一次失败之后是否继续重试。
//
// err 是本次失败的原始错误；attempts 是本次失败之前已发生的失败次数，
// 首次失败时为 0。谓词在每次失败后被精确调用一次；返回 false 时循环
// 终止并原样返回 err。
type Predicate func(err error, attempts int) bool

// MaxAttempts 返回最多允许 n 次重试的谓词（不含首次执行）。
// n <= 0 时从不重试，首次失败即返回。
func MaxAttempts(n int) Predicate {
	return func(_ error, attempts int) bool {
		return attempts < n
	}
}

// RetryIf 反复执行 op，直到成功或 pred 否决重试。
//
// 每轮失败后依次发生：谓词裁决 → 计算等待时长 → 休眠 → 计数加一。
// 谓词与策略收到相同的 attempts 值。成功时返回 (值, nil)；谓词否决时
// 返回 (零值, 原始错误)，这是唯一的非成功出口。
//
// nil policy 视为 Immediate，nil pred 视为永远重试；nil op 没有可重试
// 的对象，直接 panic。
//
// 设计决策: 刻意不接收 context——阻塞循环进入休眠后本就无法安全中断，
// 提供取消参数只会造成"可取消"的假象。取消语义由 pkg/future 承担。
func RetryIf[T any](policy backoff.Policy, op func() (T, error), pred Predicate, opts ...Option) (T, error) {
	if op == nil {
		panic("tryagain/retry: nil operation")
	}
	cfg := newConfig(opts...)
	if policy == nil {
		policy = backoff.NewImmediate()
	}
	if pred == nil {
		pred = func(error, int) bool { return true }
	}

	var zero T
	for attempts := 0; ; attempts++ {
		v, err := op()
		if err == nil {
			return v, nil
		}
		if !pred(err, attempts) {
			return zero, err
		}
		d := policy.Period(attempts)
		if cfg.onRetry != nil {
			cfg.onRetry(attempts, err, d)
		}
		cfg.clock.Sleep(d)
	}
}

// Retry 反复执行 op 直到成功，没有错误返回值。
// 操作持续失败时永远循环，调用方应确保操作终将成功。
func Retry[T any](policy backoff.Policy, op func() (T, error), opts ...Option) T {
	v, err := RetryIf(policy, op, func(error, int) bool { return true }, opts...)
	if err != nil {
		// 谓词永真时 RetryIf 不存在错误出口
		panic("tryagain/retry: retry loop returned an error despite always-true predicate")
	}
	return v
}
