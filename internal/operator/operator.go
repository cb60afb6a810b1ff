package operator

import (
	"context"

	"github.com/carson-networks/fintrack/internal/operator/actions"
)

// Tx is the unit of work an Operator wraps around one action.
type Tx interface {
	actions.ITransactionWriter
	Commit() error
	Rollback() error
}

// TxSource opens a Tx per action.
type TxSource interface {
	BeginTx(ctx context.Context) (Tx, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	source TxSource
	queue  chan ActionItem
}

func NewOperator(source TxSource, queue chan ActionItem) *Operator {
	return &Operator{
		source: source,
		queue:  queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	tx, err := o.source.BeginTx(item.ctx)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err = item.action.Perform(item.ctx, tx)
	if err != nil {
		_ = tx.Rollback()
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = tx.Commit(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	item.response <- ActionItemResponse{}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
