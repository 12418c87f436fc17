// Package retry 提供同步阻塞式的重试循环。
//
// 循环在调用方的 goroutine 中反复执行操作，直到操作成功或谓词否决重试。
// 等待时长由 pkg/backoff 的策略给出，循环本身不关心策略的具体形状。
//
// # 设计理念
//
//   - 阻塞语义：Retry / RetryIf 占用调用方 goroutine，退避等待通过
//     clock.Sleep 完成。需要可挂起、可组合的重试请使用 pkg/future。
//   - 谓词否决：每次失败后谓词都会被精确调用一次，返回 false 时循环
//     立即终止，原始错误原样返回——本包从不包装、从不替换错误。
//   - 无取消通道：同步循环刻意不接收 context。一旦进入休眠便不可中断，
//     这是阻塞模型的固有属性；需要取消语义的场景属于 pkg/future。
//
// # 计数口径
//
// 谓词与退避策略看到的 attempts 是"本次失败之前已发生的失败次数"：
// 首次失败时为 0。因此首次重试前的等待是 Period(0)——对指数退避而言
// 即立即重试。注意 pkg/future 的计数口径不同（首次失败为 1），两个引擎
// 各自独立，互不共享实现。
//
// # 用法
//
//	conn, err := retry.RetryIf(
//	    backoff.NewExponential(),
//	    func() (net.Conn, error) { return net.Dial("tcp", addr) },
//	    retry.MaxAttempts(5),
//	)
//
// 确定操作终将成功（或宁可永远循环）时可用 Retry，它没有错误返回值：
//
//	cfg := retry.Retry(backoff.NewMinimum(backoff.NewExponential(), time.Second), loadConfig)
package retry
