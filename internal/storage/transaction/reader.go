package transaction

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func filterMods(filter *TransactionFilter) []bob.Mod[*dialect.SelectQuery] {
	mods := []bob.Mod[*dialect.SelectQuery]{
		sm.From(tableName),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(filter.OwnerID))),
	}
	if filter.Category != nil {
		mods = append(mods, sm.Where(psql.Quote("category").EQ(psql.Arg(*filter.Category))))
	}
	return mods
}

// List returns transactions newest first. Ids are time ordered so they break date ties.
func (r *Reader) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	mods := append(filterMods(filter),
		sm.Columns("id", "owner_id", "date", "description", "amount", "category", "created_at"),
		sm.OrderBy(psql.Quote("date")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)
	if filter.Limit > 0 {
		mods = append(mods, sm.Limit(filter.Limit))
	}
	if filter.Offset > 0 {
		mods = append(mods, sm.Offset(filter.Offset))
	}

	return bob.All(ctx, r.exec, psql.Select(mods...), scan.StructMapper[*Transaction]())
}

// Count ignores Limit and Offset.
func (r *Reader) Count(ctx context.Context, filter *TransactionFilter) (int64, error) {
	mods := append(filterMods(filter), sm.Columns("count(*)"))
	return bob.One(ctx, r.exec, psql.Select(mods...), scan.SingleColumnMapper[int64])
}

func (r *Reader) SummarizeByCategory(ctx context.Context, ownerID string) ([]*CategoryTotal, error) {
	q := psql.Select(
		sm.Columns(
			"COALESCE(NULLIF(category, ''), 'Uncategorized') AS category",
			"COALESCE(SUM(amount), 0) AS total",
			"count(*) AS count",
		),
		sm.From(tableName),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.GroupBy("1"),
		sm.OrderBy("total").Desc(),
		sm.OrderBy("category").Asc(),
	)
	return bob.All(ctx, r.exec, q, scan.StructMapper[*CategoryTotal]())
}
