package future

import "context"

// Await 在当前 goroutine 中驱动 f 直到完成。
//
// 这是轮询协议的阻塞式封装：轮询返回 Pending 后等待唤醒，被唤醒则再次
// 轮询。ctx 取消时弃置任务并返回 context.Cause(ctx)；此后到来的迟到
// 唤醒落在本地通道上，自然被吸收。nil ctx 视为 context.Background()。
func Await[T any](ctx context.Context, f Future[T]) (T, error) {
	if f == nil {
		panic("tryagain/future: nil future")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	w := newChanWaker()
	for {
		res := f.Poll(w)
		if res.Ready {
			return res.Value, res.Err
		}
		select {
		case <-w.ch:
		case <-ctx.Done():
			var zero T
			return zero, context.Cause(ctx)
		}
	}
}

// chanWaker 用容量 1 的缓冲通道承载唤醒。非阻塞发送保证轮询与等待
// 之间到达的唤醒不会丢失，通道满时多余的唤醒被合并吸收。
type chanWaker struct {
	ch chan struct{}
}

func newChanWaker() *chanWaker {
	return &chanWaker{ch: make(chan struct{}, 1)}
}

// Wake 实现 Waker。任意时刻、任意次数的调用都安全。
func (w *chanWaker) Wake() {
	select {
	case w.ch <- struct{}{}:
	default:
	}
}

var _ Waker = (*chanWaker)(nil)
