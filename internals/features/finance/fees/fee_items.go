// file: internals/features/finance/fees/fee_items.go
package fees

import (
	"github.com/google/uuid"
)

// FeeLineItem is one selected fee category with its charged amount.
type FeeLineItem struct {
	FeeTypeID uuid.UUID `json:"fee_type_id"`
	FeeAmount int       `json:"fee_amount"`
}

// SelectFeeItems normalizes a raw selection: one entry per fee type, the most
// recently selected amount wins. Negative amounts are clamped to zero.
// Ordering follows the last occurrence of each fee type.
func SelectFeeItems(selection []FeeLineItem) []FeeLineItem {
	out := make([]FeeLineItem, 0, len(selection))
	index := make(map[uuid.UUID]int, len(selection))

	for _, it := range selection {
		if it.FeeAmount < 0 {
			it.FeeAmount = 0
		}
		if pos, ok := index[it.FeeTypeID]; ok {
			// re-selection: drop the earlier entry, keep last-write order
			out = append(out[:pos], out[pos+1:]...)
			for id, p := range index {
				if p > pos {
					index[id] = p - 1
				}
			}
		}
		index[it.FeeTypeID] = len(out)
		out = append(out, it)
	}
	return out
}

// PruneToCatalog drops items whose fee type is no longer part of the current
// enumeration. Stale selections disappear silently; the caller recomputes totals.
func PruneToCatalog(items []FeeLineItem, catalogIDs []uuid.UUID) []FeeLineItem {
	known := make(map[uuid.UUID]struct{}, len(catalogIDs))
	for _, id := range catalogIDs {
		known[id] = struct{}{}
	}
	out := make([]FeeLineItem, 0, len(items))
	for _, it := range items {
		if _, ok := known[it.FeeTypeID]; ok {
			out = append(out, it)
		}
	}
	return out
}

// ComputeTotal returns sum(items) + max(tuitionFee, 0). Never negative.
func ComputeTotal(items []FeeLineItem, tuitionFee int) int {
	total := 0
	for _, it := range items {
		if it.FeeAmount > 0 {
			total += it.FeeAmount
		}
	}
	if tuitionFee > 0 {
		total += tuitionFee
	}
	return total
}
