package calculation

import (
	"time"

	"github.com/anka/patrimony-planner/internal/domain"
	"github.com/anka/patrimony-planner/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ValueAt returns the asset's value as of date: the value of the chronologically
// latest record dated on or before that calendar day, or zero when none exists yet.
// Records need not be sorted. Among records of the same instant the one listed
// last wins, which matches a stable ascending sort followed by taking the last
// qualifying entry.
func ValueAt(asset *domain.Asset, date time.Time) decimal.Decimal {
	rec, ok := latestRecord(asset.Records, date)
	if !ok {
		return decimal.Zero
	}
	return rec.Value
}

// HasRecordBetween reports whether a record is dated in (after, until], by calendar day
func HasRecordBetween(asset *domain.Asset, after, until time.Time) bool {
	for _, r := range asset.Records {
		if !dateutil.OnOrBefore(r.Date, after) && dateutil.OnOrBefore(r.Date, until) {
			return true
		}
	}
	return false
}

// EarliestRecord returns the first record in chronological order
func EarliestRecord(asset *domain.Asset) (domain.AssetRecord, bool) {
	var first domain.AssetRecord
	found := false
	for _, r := range asset.Records {
		if !found || r.Date.Before(first.Date) {
			first = r
			found = true
		}
	}
	return first, found
}

func latestRecord(records []domain.AssetRecord, date time.Time) (domain.AssetRecord, bool) {
	var best domain.AssetRecord
	found := false
	for _, r := range records {
		if !dateutil.OnOrBefore(r.Date, date) {
			continue
		}
		if !found || !r.Date.Before(best.Date) {
			best = r
			found = true
		}
	}
	return best, found
}

// TotalValueAt sums ValueAt over a set of assets
func TotalValueAt(assets []domain.Asset, date time.Time) decimal.Decimal {
	total := decimal.Zero
	for i := range assets {
		total = total.Add(ValueAt(&assets[i], date))
	}
	return total
}
