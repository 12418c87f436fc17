package future

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// OnRetryFunc 在谓词批准重试之后、任务进入暂停之前被调用。
// attempts 与谓词看到的值相同（含本次的失败计数），delay 是即将
// 暂停的时长。
type OnRetryFunc func(attempts int, err error, delay time.Duration)

// Option 配置重试任务的可选行为。
type Option func(*config)

type config struct {
	clock   clockwork.Clock
	onRetry OnRetryFunc
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		clock: clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithClock 注入时钟。任务通过它读取当前时间并注册暂停到期的唤醒，
// 测试中注入假时钟即可完全掌控时间。nil 时钟被忽略。
func WithClock(clock clockwork.Clock) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithOnRetry 注册重试观察回调，用于打点、日志等旁路关注点。
// 本包自身不做任何日志输出。nil 回调被忽略。
func WithOnRetry(fn OnRetryFunc) Option {
	return func(c *config) {
		if fn != nil {
			c.onRetry = fn
		}
	}
}
