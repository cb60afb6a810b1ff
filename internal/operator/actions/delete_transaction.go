package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type DeleteTransaction struct {
	OwnerID string
	ID      uuid.UUID
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer ITransactionWriter) error {
	found, err := writer.Delete(ctx, d.OwnerID, d.ID)
	if err != nil {
		return err
	}
	if !found {
		return ErrTransactionNotFound
	}

	return nil
}

type DeleteAllTransactions struct {
	OwnerID string

	Deleted int64
}

func (d *DeleteAllTransactions) Perform(ctx context.Context, writer ITransactionWriter) error {
	n, err := writer.DeleteAll(ctx, d.OwnerID)
	if err != nil {
		return err
	}

	d.Deleted = n
	return nil
}
