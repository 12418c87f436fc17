// Package future 提供轮询驱动的异步重试任务，以及它所依赖的
// 可挂起计算契约（Future / Waker / Poll）。
//
// 与 pkg/retry 的阻塞循环不同，这里的重试是一台显式状态机：任务不占用
// goroutine 等待退避，而是把自己挂起，由时钟在截止时刻触发唤醒，驱动方
// 收到唤醒后再来轮询。大量任务可以复用极少的驱动 goroutine。
//
// # 契约
//
//   - Future.Poll 返回 Pending 时，计算必须已安排好在可推进时调用
//     Waker.Wake（自己安排或委托给子计算），否则驱动方将永远等不到通知。
//   - Waker 实现必须并发安全，且必须容忍任务被弃置后到来的迟到唤醒：
//     多余的 Wake 只能被吸收，不得报错或 panic。
//   - 每个任务只有一个逻辑所有者：Poll 不得并发调用；任务完成（返回
//     Ready）之后再次 Poll 属于契约违规，直接 panic。
//
// # 重试任务
//
// RetryIf 构造的 Task 在内部串联一系列尝试：失败→谓词裁决→按退避策略
// 暂停→时钟唤醒→新尝试。暂停期间每次 Poll 都立即返回 Pending，不触碰
// 下一次尝试；每次暂停注册且仅注册一次唤醒。构造即发起首次尝试。
//
// # 计数口径
//
// 谓词与退避策略看到的 attempts 是"包含本次在内的失败次数"：首次失败
// 时为 1，因此首个暂停时长是 Period(1) 而非 Period(0)。注意 pkg/retry
// 的口径不同（首次失败为 0），两个引擎各自独立、互不共享实现。
//
// # 取消与弃置
//
// 任务没有显式的取消方法：停止轮询并丢弃引用即是取消。已注册的时钟
// 回调只捕获 Waker，不持有任务本身，弃置后到来的回调退化为一次多余的
// Wake，由 Waker 按契约吸收。Await 把这套协议封装成阻塞调用，并通过
// context 提供取消入口。
//
// # 用法
//
//	task := future.RetryIf(
//	    backoff.NewExponential(),
//	    func() future.Future[*Resp] { return future.Go(callUpstream) },
//	    future.MaxAttempts(5),
//	)
//	resp, err := future.Await(ctx, task)
package future
