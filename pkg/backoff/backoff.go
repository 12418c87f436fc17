package backoff

import "time"

// Policy 定义退避策略接口。
// 计算一次失败之后、下次尝试之前应等待的时长。
type Policy interface {
	// Period 返回下次尝试前的等待时长。
	//
	// attempts: 已观察到的失败次数（从 0 开始，首次失败后为 0 或 1，
	// 取决于调用方的计数口径）。返回值恒 ≥ 0。
	//
	// 对同一实例、相同的 attempts，Period 必须返回相同的时长：
	// 除构造参数外不得依赖隐藏状态。
	Period(attempts int) time.Duration
}

// Immediate 零退避策略：所有等待时长均为 0。
// 适合忙重试，或与 Minimum 组合出固定下界的策略。
type Immediate struct{}

// NewImmediate 创建零退避策略。
func NewImmediate() *Immediate {
	return &Immediate{}
}

func (*Immediate) Period(_ int) time.Duration {
	return 0
}

// Minimum 下界装饰器：Period(n) = max(floor, inner.Period(n))。
// 包装任意 Policy 而不修改被包装者，结果仍满足 Policy，可继续组合。
type Minimum struct {
	inner Policy
	floor time.Duration
}

// NewMinimum 创建下界装饰器。
// inner 为 nil 时等价于包装 Immediate；floor < 0 时按 0 处理。
func NewMinimum(inner Policy, floor time.Duration) *Minimum {
	if inner == nil {
		inner = NewImmediate()
	}
	if floor < 0 {
		floor = 0
	}
	return &Minimum{inner: inner, floor: floor}
}

func (m *Minimum) Period(attempts int) time.Duration {
	p := m.floor
	// 零值 Minimum（绕过工厂直接构造）inner 为 nil，按 Immediate 处理。
	if m.inner != nil {
		if ip := m.inner.Period(attempts); ip > p {
			p = ip
		}
	}
	return p
}

// 确保实现了接口
var (
	_ Policy = (*Immediate)(nil)
	_ Policy = (*Minimum)(nil)
)
