// Package backoff 提供重试退避策略接口及实现。
//
// # 设计理念
//
// backoff 采用接口驱动设计：Policy 是唯一的能力抽象，
// 输入为已观察到的失败次数，输出为下次尝试前应等待的时长。
// 策略本身是纯计算：不阻塞、不做 I/O，对同一实例和相同的失败次数
// 恒定返回相同的时长。
//
// # 内置策略
//
//   - Exponential：指数退避，Period(n) = 100ms × (baseⁿ − 1)，向零截断到整数毫秒
//   - Immediate：零退避，立即重试
//   - Minimum：装饰器，为任意策略的返回值加下界
//
// Minimum 是能力装饰模式：任何 Policy 都可以被包装，包装结果仍是
// Policy，因此可以继续组合。例如"至少等 1 秒、且按指数增长"：
//
//	p := backoff.NewMinimum(backoff.NewExponential(), time.Second)
//
// # 所有权
//
// Policy 实例由单个重试循环或任务独占，不要在并发重试间共享同一实例。
// 内置实现本身无可变状态，但接口契约不要求实现并发安全。
//
// # 与 retry-go 的互操作
//
// ToDelayType 将任意 Policy 适配为 [avast/retry-go/v5] 的 DelayTypeFunc，
// 便于既有 retry-go 调用点复用本包的策略实现。
//
// [avast/retry-go/v5]: https://github.com/avast/retry-go
package backoff
