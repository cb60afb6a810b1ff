package operator

import (
	"context"

	"github.com/carson-networks/fintrack/internal/storage"
)

var _ Tx = (*storage.Writer)(nil)

// storageSource opens a storage transaction per action.
type storageSource struct {
	storage *storage.Storage
}

func (s storageSource) BeginTx(ctx context.Context) (Tx, error) {
	w, err := s.storage.Write(ctx)
	if err != nil {
		return nil, err
	}
	return w, nil
}
