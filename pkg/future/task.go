package future

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/zebp/tryagain/pkg/backoff"
)

// Predicate 判定一次失败之后是否继续重试。
//
// err 是本次失败的原始错误；attempts 是包含本次在内已发生的失败次数，
// 首次失败时为 1。谓词在每次失败后被精确调用一次；返回 false 时任务
// 终结并原样交出 err。
type Predicate func(err error, attempts int) bool

// MaxAttempts 返回最多允许 n 次重试的谓词（不含首次尝试）。
// attempts 为含本次的失败计数，故第 n 次失败仍放行、第 n+1 次否决。
// n <= 0 时从不重试，首次失败即终结。
func MaxAttempts(n int) Predicate {
	return func(_ error, attempts int) bool {
		return attempts <= n
	}
}

type taskState uint8

const (
	stateRunning taskState = iota
	statePaused
	stateDone
)

// Task 是轮询驱动的异步重试任务，实现 Future[T]。
//
// 任务由单一逻辑所有者驱动：Poll 不得并发调用，返回 Ready 之后不得
// 再次调用。任务内部没有锁，这些约束即是它的并发模型。
type Task[T any] struct {
	factory func() Future[T]
	pred    Predicate
	policy  backoff.Policy
	clock   clockwork.Clock
	onRetry OnRetryFunc

	state       taskState
	attempt     Future[T] // 在途尝试，state != stateDone 时有效
	attempts    int       // 已失败次数
	pausedUntil time.Time // state == statePaused 时有效
}

// RetryIf 构造异步重试任务。factory 每次被调用都应返回一次全新的尝试；
// 构造函数立即调用它发起首次尝试。
//
// nil policy 视为 Immediate，nil pred 视为永远重试；nil factory 没有
// 可重试的对象，直接 panic。
func RetryIf[T any](policy backoff.Policy, factory func() Future[T], pred Predicate, opts ...Option) *Task[T] {
	if factory == nil {
		panic("tryagain/future: nil attempt factory")
	}
	cfg := newConfig(opts...)
	if policy == nil {
		policy = backoff.NewImmediate()
	}
	if pred == nil {
		pred = func(error, int) bool { return true }
	}
	return &Task[T]{
		factory: factory,
		pred:    pred,
		policy:  policy,
		clock:   cfg.clock,
		onRetry: cfg.onRetry,
		state:   stateRunning,
		attempt: factory(),
	}
}

// Retry 构造永远重试的异步任务：除非某次尝试成功，任务不会终结。
func Retry[T any](policy backoff.Policy, factory func() Future[T], opts ...Option) *Task[T] {
	return RetryIf(policy, factory, func(error, int) bool { return true }, opts...)
}

// Poll 推进任务。
//
// 暂停期内返回 Pending 且不触碰在途尝试；暂停到期后恢复轮询。尝试
// 失败时依次发生：计数加一 → 谓词裁决 → 创建下一次尝试 → 计算暂停
// 时长 → 注册唤醒。谓词与策略收到相同的 attempts 值。
func (t *Task[T]) Poll(w Waker) Poll[T] {
	if t.state == stateDone {
		panic("tryagain/future: task polled after completion")
	}

	if t.state == statePaused {
		if t.clock.Now().Before(t.pausedUntil) {
			// 本次暂停已注册过唤醒，保持挂起即可
			return Pending[T]()
		}
		t.state = stateRunning
		t.pausedUntil = time.Time{}
	}

	res := t.attempt.Poll(w)
	if !res.Ready {
		// 挂起向上转发，唤醒由在途尝试负责
		return res
	}
	if res.Err == nil {
		t.finish()
		return res
	}

	t.attempts++
	if !t.pred(res.Err, t.attempts) {
		t.finish()
		var zero T
		return Ready(zero, res.Err)
	}

	// 谓词放行后才创建下一次尝试，保证尝试严格串行
	t.attempt = t.factory()
	d := t.policy.Period(t.attempts)
	if t.onRetry != nil {
		t.onRetry(t.attempts, res.Err, d)
	}
	t.state = statePaused
	t.pausedUntil = t.clock.Now().Add(d)
	// 每次暂停注册且仅注册一次唤醒。回调只捕获 Waker 而非任务本身，
	// 任务被弃置后回调退化为一次多余的 Wake，由 Waker 吸收。
	t.clock.AfterFunc(d, w.Wake)
	return Pending[T]()
}

func (t *Task[T]) finish() {
	t.state = stateDone
	t.attempt = nil
	t.factory = nil
	t.pred = nil
}

var _ Future[struct{}] = (*Task[struct{}])(nil)
