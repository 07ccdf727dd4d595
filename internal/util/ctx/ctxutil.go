package ctxutil

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pkg/errors"
)

// WithInterrupt returns a context that expires when the process receives
// SIGINT or SIGTERM.  Calling the returned CancelFunc releases the signal
// handler and cancels the context.
func WithInterrupt(ctx context.Context) (context.Context, context.CancelFunc) {
	return WithSignals(ctx, syscall.SIGINT, syscall.SIGTERM)
}

// WithSignals returns a context that expires when the process receives any of the
// specified signals.
func WithSignals(ctx context.Context, sigs ...os.Signal) (context.Context, context.CancelFunc) {
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, sigs...)

	var (
		once sync.Once
		stop = make(chan struct{})
		cq   = make(chan struct{})
	)

	sctx := &sigctx{
		cq:      cq,
		Context: ctx,
	}

	go func() {
		defer close(cq)
		defer signal.Stop(sigch)

		var err error
		select {
		case sig := <-sigch:
			err = errors.Errorf("signal received: %s", sig)
		case <-ctx.Done():
			err = ctx.Err()
		case <-stop:
			err = context.Canceled
		}

		sctx.mu.Lock()
		sctx.err = err
		sctx.mu.Unlock()
	}()

	return sctx, func() {
		once.Do(func() { close(stop) })
		<-cq
	}
}

type sigctx struct {
	mu  sync.RWMutex
	err error

	cq <-chan struct{}
	context.Context
}

func (ctx *sigctx) Done() <-chan struct{} {
	return ctx.cq
}

func (ctx *sigctx) Err() error {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()

	return ctx.err
}
