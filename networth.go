package wealth

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Assets is the asset side of a net worth statement, as line items.
type Assets struct {
	Cash        Money `json:"cash"`
	Investments Money `json:"investments"`
	RealEstate  Money `json:"real_estate"`
	Other       Money `json:"other_assets"`
}

// Total sums all asset line items.
func (a Assets) Total() Money {
	return a.Cash.Add(a.Investments).Add(a.RealEstate).Add(a.Other)
}

// Liabilities is the liability side of a net worth statement, as line items.
type Liabilities struct {
	Mortgage Money `json:"mortgage"`
	Loans    Money `json:"loans"`
	Other    Money `json:"other_debts"`
}

// Total sums all liability line items.
func (l Liabilities) Total() Money {
	return l.Mortgage.Add(l.Loans).Add(l.Other)
}

// Snapshot is an immutable point-in-time record of assets, liabilities and
// net worth. Once created it is never mutated; trends are computed over the
// ordered sequence of snapshots.
type Snapshot struct {
	ID        string `json:"id"`
	ProfileID string `json:"profile_id"`
	Date      Date   `json:"snapshot_date"`

	Assets      Assets      `json:"assets"`
	Liabilities Liabilities `json:"liabilities"`

	TotalAssets      Money `json:"total_assets"`
	TotalLiabilities Money `json:"total_liabilities"`
	NetWorth         Money `json:"net_worth"`

	Source string `json:"source,omitempty"` // manual, feed, calculated
}

// ComputeNetWorth aggregates asset and liability line items into a new
// snapshot. All line items must be non-negative and share one currency;
// net worth is the exact difference of the totals.
func ComputeNetWorth(profileID string, on Date, assets Assets, liabilities Liabilities) (*Snapshot, error) {
	for _, item := range []struct {
		field string
		value Money
	}{
		{"cash", assets.Cash},
		{"investments", assets.Investments},
		{"real_estate", assets.RealEstate},
		{"other_assets", assets.Other},
		{"mortgage", liabilities.Mortgage},
		{"loans", liabilities.Loans},
		{"other_debts", liabilities.Other},
	} {
		if item.value.IsNegative() {
			return nil, invalidf(item.field, "must not be negative, got %s", item.value)
		}
	}

	totalAssets := assets.Total()
	totalLiabilities := liabilities.Total()
	return &Snapshot{
		ID:               uuid.NewString(),
		ProfileID:        profileID,
		Date:             on,
		Assets:           assets,
		Liabilities:      liabilities,
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		NetWorth:         totalAssets.Sub(totalLiabilities),
		Source:           "calculated",
	}, nil
}

// TrendPoint is one step of a net worth trend: the snapshot's net worth plus
// its delta and percent change versus the previous snapshot.
type TrendPoint struct {
	Date     Date    `json:"date"`
	NetWorth Money   `json:"net_worth"`
	Delta    Money   `json:"delta"`
	Change   Percent `json:"change"`
}

// NetWorthTrend computes period deltas over an ordered sequence of snapshots.
// It needs at least two snapshots; with fewer it fails with
// ErrInsufficientHistory. Input order does not matter, snapshots are sorted
// by date before diffing.
func NetWorthTrend(snapshots []*Snapshot) ([]TrendPoint, error) {
	if len(snapshots) < 2 {
		return nil, fmt.Errorf("net worth trend needs two snapshots, have %d: %w", len(snapshots), ErrInsufficientHistory)
	}

	ordered := make([]*Snapshot, len(snapshots))
	copy(ordered, snapshots)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Date.Before(ordered[j].Date) })

	points := make([]TrendPoint, 0, len(ordered)-1)
	for i := 1; i < len(ordered); i++ {
		prev, curr := ordered[i-1], ordered[i]
		delta := curr.NetWorth.Sub(prev.NetWorth)
		var change Percent
		if !prev.NetWorth.IsZero() {
			change = Percent(delta.Ratio(prev.NetWorth).InexactFloat64() * 100)
		}
		points = append(points, TrendPoint{
			Date:     curr.Date,
			NetWorth: curr.NetWorth,
			Delta:    delta,
			Change:   change,
		})
	}
	return points, nil
}

// LatestSnapshot returns the most recent snapshot on or before the given
// date, or nil if none exists.
func LatestSnapshot(snapshots []*Snapshot, on Date) *Snapshot {
	var latest *Snapshot
	for _, s := range snapshots {
		if s.Date.After(on) {
			continue
		}
		if latest == nil || s.Date.After(latest.Date) {
			latest = s
		}
	}
	return latest
}
