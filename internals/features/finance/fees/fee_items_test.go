package fees

import (
	"testing"

	"github.com/google/uuid"
)

func TestSelectFeeItems_LastWriteWins(t *testing.T) {
	admission := uuid.New()
	library := uuid.New()

	got := SelectFeeItems([]FeeLineItem{
		{FeeTypeID: admission, FeeAmount: 5000},
		{FeeTypeID: library, FeeAmount: 300},
		{FeeTypeID: admission, FeeAmount: 4500},
	})

	if len(got) != 2 {
		t.Fatalf("got %d items, want 2", len(got))
	}
	if got[0].FeeTypeID != library {
		t.Errorf("first item = %s, want library (re-selected entry moves last)", got[0].FeeTypeID)
	}
	if got[1].FeeTypeID != admission || got[1].FeeAmount != 4500 {
		t.Errorf("admission fee = %+v, want later amount 4500", got[1])
	}
}

func TestSelectFeeItems_ClampsNegative(t *testing.T) {
	id := uuid.New()
	got := SelectFeeItems([]FeeLineItem{{FeeTypeID: id, FeeAmount: -200}})
	if len(got) != 1 || got[0].FeeAmount != 0 {
		t.Fatalf("got %+v, want single zero-amount item", got)
	}
}

func TestPruneToCatalog_DropsStaleTypes(t *testing.T) {
	keep := uuid.New()
	stale := uuid.New()

	items := []FeeLineItem{
		{FeeTypeID: keep, FeeAmount: 1000},
		{FeeTypeID: stale, FeeAmount: 700},
	}
	got := PruneToCatalog(items, []uuid.UUID{keep})
	if len(got) != 1 || got[0].FeeTypeID != keep {
		t.Fatalf("got %+v, want only the catalogued item", got)
	}
	if total := ComputeTotal(got, 0); total != 1000 {
		t.Errorf("total after prune = %d, want 1000", total)
	}
}

func TestComputeTotal(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	cases := []struct {
		name    string
		items   []FeeLineItem
		tuition int
		want    int
	}{
		{"admission plus tuition", []FeeLineItem{{a, 5000}}, 3000, 8000},
		{"empty and zero", nil, 0, 0},
		{"negative tuition ignored", []FeeLineItem{{a, 5000}}, -100, 5000},
		{"two items", []FeeLineItem{{a, 5000}, {b, 250}}, 1000, 6250},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputeTotal(tc.items, tc.tuition); got != tc.want {
				t.Errorf("ComputeTotal = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestComputeTotal_MonotonicInAmounts(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	items := []FeeLineItem{{a, 500}, {b, 900}}
	base := ComputeTotal(items, 100)

	for i := range items {
		bumped := append([]FeeLineItem(nil), items...)
		bumped[i].FeeAmount += 50
		if got := ComputeTotal(bumped, 100); got < base {
			t.Errorf("raising item %d lowered total: %d < %d", i, got, base)
		}
	}
}
