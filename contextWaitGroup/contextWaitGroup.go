package contextWaitGroup

import (
	"context"
	"os"
	"os/signal"
	"sync"
)

// CWG is a WaitGroup whose goroutines share one cancelable context.
type CWG struct {
	sync.WaitGroup
	Ctx    context.Context
	Cancel context.CancelFunc
}

func New(parent context.Context) *CWG {
	ctx, cancel := context.WithCancel(parent)
	return &CWG{Ctx: ctx, Cancel: cancel}
}

// WithSignal cancels Ctx on any of signals. Call it before Go.
func (c *CWG) WithSignal(signals ...os.Signal) (stop context.CancelFunc) {
	c.Ctx, stop = signal.NotifyContext(c.Ctx, signals...)
	return
}

func (c *CWG) Go(f func(context.Context)) {
	c.WaitGroup.Go(func() {
		f(c.Ctx)
	})
}

// GoCancel runs f and cancels every other goroutine once it returns.
func (c *CWG) GoCancel(f func(context.Context)) {
	c.WaitGroup.Go(func() {
		defer c.Cancel()
		f(c.Ctx)
	})
}

// Stop cancels Ctx and waits for all goroutines.
func (c *CWG) Stop() {
	c.Cancel()
	c.Wait()
}
