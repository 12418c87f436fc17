package future

import "sync"

// Waker 由驱动方提供，供挂起的计算在可继续推进时通知驱动方。
//
// 实现必须并发安全，且必须容忍多余的唤醒——尤其是任务被弃置之后
// 仍可能到来的迟到唤醒。Wake 永远不应报错或 panic。
type Waker interface {
	Wake()
}

// WakeFunc 把函数适配成 Waker。
type WakeFunc func()

// Wake 实现 Waker。
func (f WakeFunc) Wake() { f() }

// Poll 是一次轮询的结果：Ready 为真时计算已完成，携带值或错误；
// 否则计算已挂起，并已安排好后续唤醒。
type Poll[T any] struct {
	Value T
	Err   error
	Ready bool
}

// Ready 构造已完成的轮询结果。
func Ready[T any](v T, err error) Poll[T] {
	return Poll[T]{Value: v, Err: err, Ready: true}
}

// Pending 构造挂起的轮询结果。
func Pending[T any]() Poll[T] {
	return Poll[T]{}
}

// Future 是可挂起的计算。
//
// Poll 返回 Pending 时，计算必须已安排好在可推进时调用 w.Wake。
// 同一计算的 Poll 不得并发调用。
type Future[T any] interface {
	Poll(w Waker) Poll[T]
}

// FutureFunc 把函数适配成 Future。
type FutureFunc[T any] func(w Waker) Poll[T]

// Poll 实现 Future。
func (f FutureFunc[T]) Poll(w Waker) Poll[T] { return f(w) }

// Go 把阻塞式操作桥接成可挂起的计算。
//
// fn 在首次 Poll 时才被放入新 goroutine 执行，而非构造时：重试任务
// 急切构造下一次尝试，延迟启动保证退避期间尝试不会偷跑。完成后唤醒
// 最近一次 Poll 留下的 Waker；结果被缓存，之后的 Poll 立即返回 Ready。
func Go[T any](fn func() (T, error)) Future[T] {
	if fn == nil {
		panic("tryagain/future: nil function")
	}
	return &goFuture[T]{fn: fn, done: make(chan struct{})}
}

type goFuture[T any] struct {
	fn   func() (T, error)
	done chan struct{}

	mu      sync.Mutex
	started bool
	waker   Waker

	value T
	err   error
}

func (g *goFuture[T]) Poll(w Waker) Poll[T] {
	select {
	case <-g.done:
		return Ready(g.value, g.err)
	default:
	}

	g.mu.Lock()
	g.waker = w
	if !g.started {
		g.started = true
		go g.run()
	}
	g.mu.Unlock()

	// 加锁窗口内结果可能刚好到达，错过这次检查就只能等唤醒
	select {
	case <-g.done:
		return Ready(g.value, g.err)
	default:
	}
	return Pending[T]()
}

func (g *goFuture[T]) run() {
	v, err := g.fn()

	g.mu.Lock()
	g.value, g.err = v, err
	close(g.done)
	w := g.waker
	g.mu.Unlock()

	if w != nil {
		w.Wake()
	}
}

var (
	_ Waker            = WakeFunc(nil)
	_ Future[struct{}] = FutureFunc[struct{}](nil)
	_ Future[struct{}] = (*goFuture[struct{}])(nil)
)
