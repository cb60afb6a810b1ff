package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/carson-networks/fintrack/internal/operator/actions"
	"github.com/carson-networks/fintrack/internal/storage"
)

const defaultQueueSize = 1000

var ErrStopped = errors.New("operator delegator stopped")

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
type OperatorDelegator struct {
	source     TxSource
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once
	mu         sync.RWMutex
	stopped    bool
}

func NewOperatorDelegator(s *storage.Storage, numWorkers int) *OperatorDelegator {
	return NewOperatorDelegatorWithSource(storageSource{storage: s}, numWorkers)
}

func NewOperatorDelegatorWithSource(source TxSource, numWorkers int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &OperatorDelegator{
		source:     source,
		queue:      make(chan ActionItem, defaultQueueSize),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.source, d.queue)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop drains queued items and waits for the workers to exit.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		close(d.queue)
		d.mu.Unlock()
		d.wg.Wait()
	})
}

// Process enqueues the action and blocks until a worker has committed or rolled it back.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	d.mu.RLock()
	if d.stopped {
		d.mu.RUnlock()
		return ErrStopped
	}
	select {
	case d.queue <- item:
		d.mu.RUnlock()
	case <-ctx.Done():
		d.mu.RUnlock()
		return ctx.Err()
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
