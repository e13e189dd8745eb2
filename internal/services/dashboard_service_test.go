package services

import (
	"strconv"
	"testing"

	"github.com/shopspring/decimal"

	"dealbook/internal/listing"
	"dealbook/internal/testutil"
)

func TestNormalizeAgreementSort(t *testing.T) {
	tests := []struct {
		name     string
		in       listing.SortRequest
		wantSort string
		wantDir  string
	}{
		{"defaults", listing.SortRequest{}, "id", "asc"},
		{"unknown_key", listing.SortRequest{Sort: "password", Dir: "desc"}, "id", "desc"},
		{"unknown_dir", listing.SortRequest{Sort: "creditor", Dir: "up"}, "creditor", "asc"},
		{"valid", listing.SortRequest{Sort: "total_sum", Dir: "desc"}, "total_sum", "desc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAgreementSort(tt.in)
			if got.Sort != tt.wantSort || got.Dir != tt.wantDir {
				t.Errorf("expected %s/%s, got %s/%s", tt.wantSort, tt.wantDir, got.Sort, got.Dir)
			}
		})
	}
}

func TestDashboardOrdering(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewDashboardService(db)
	alpha := testutil.CreateTestCreditorWithName(t, db, "Alpha")
	gamma := testutil.CreateTestCreditorWithName(t, db, "Gamma")
	beta := testutil.CreateTestCreditorWithName(t, db, "Beta")
	testutil.CreateTestAgreementWithSum(t, db, gamma.ID, decimal.NewFromInt(300))
	testutil.CreateTestAgreementWithSum(t, db, alpha.ID, decimal.RequireFromString("99.99"))
	testutil.CreateTestAgreementWithSum(t, db, beta.ID, decimal.NewFromInt(1000))
	testutil.CreateTestAgreementWithSum(t, db, alpha.ID, decimal.NewFromInt(5))

	t.Run("creditor_desc", func(t *testing.T) {
		d, err := svc.Dashboard(DashboardQuery{Sort: listing.SortRequest{Sort: "creditor", Dir: "desc"}})
		testutil.AssertNoError(t, err)

		for i := 1; i < len(d.Agreements); i++ {
			if d.Agreements[i-1].CreditorName() < d.Agreements[i].CreditorName() {
				t.Fatalf("creditor names not non-increasing at %d: %q then %q",
					i, d.Agreements[i-1].CreditorName(), d.Agreements[i].CreditorName())
			}
		}
		if d.CurrentSort != "creditor" || d.CurrentDir != "desc" || d.RevDir != "asc" {
			t.Errorf("unexpected display params %s/%s/%s", d.CurrentSort, d.CurrentDir, d.RevDir)
		}
	})

	t.Run("total_sum_asc", func(t *testing.T) {
		d, err := svc.Dashboard(DashboardQuery{Sort: listing.SortRequest{Sort: "total_sum", Dir: "asc"}})
		testutil.AssertNoError(t, err)

		for i := 1; i < len(d.Agreements); i++ {
			if d.Agreements[i-1].TotalSum.GreaterThan(d.Agreements[i].TotalSum) {
				t.Fatalf("total sums not non-decreasing at %d: %s then %s",
					i, d.Agreements[i-1].TotalSum, d.Agreements[i].TotalSum)
			}
		}
	})

	t.Run("ties_broken_by_id", func(t *testing.T) {
		d, err := svc.Dashboard(DashboardQuery{Sort: listing.SortRequest{Sort: "agreement_type", Dir: "desc"}})
		testutil.AssertNoError(t, err)

		for i := 1; i < len(d.Agreements); i++ {
			if d.Agreements[i-1].ID < d.Agreements[i].ID {
				t.Fatalf("equal types should be ordered by id desc, got %d then %d", d.Agreements[i-1].ID, d.Agreements[i].ID)
			}
		}
	})

	t.Run("unknown_sort_falls_back_to_id", func(t *testing.T) {
		d, err := svc.Dashboard(DashboardQuery{Sort: listing.SortRequest{Sort: "drop table", Dir: "sideways"}})
		testutil.AssertNoError(t, err)

		if d.CurrentSort != "id" || d.CurrentDir != "asc" {
			t.Errorf("expected id/asc, got %s/%s", d.CurrentSort, d.CurrentDir)
		}
		for i := 1; i < len(d.Agreements); i++ {
			if d.Agreements[i-1].ID > d.Agreements[i].ID {
				t.Fatal("expected ascending ids")
			}
		}
	})

	t.Run("totals", func(t *testing.T) {
		d, err := svc.Dashboard(DashboardQuery{})
		testutil.AssertNoError(t, err)

		if !d.TotalSum.Equal(decimal.RequireFromString("1404.99")) {
			t.Errorf("expected total 1404.99, got %s", d.TotalSum)
		}
		if !d.TotalAmount.Equal(decimal.NewFromInt(40)) {
			t.Errorf("expected amount 40, got %s", d.TotalAmount)
		}
	})
}

func TestDashboardSelection(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewDashboardService(db)
	creditor := testutil.CreateTestCreditor(t, db)
	first := testutil.CreateTestAgreement(t, db, creditor.ID)
	last := testutil.CreateTestAgreement(t, db, creditor.ID)
	testutil.CreateTestPortfolio(t, db, first.ID)
	testutil.CreateTestPortfolio(t, db, first.ID)

	t.Run("default_is_highest_id_and_stable", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			d, err := svc.Dashboard(DashboardQuery{Sort: listing.SortRequest{Sort: "id", Dir: "asc"}})
			testutil.AssertNoError(t, err)
			if d.Current == nil || d.Current.ID != last.ID {
				t.Fatalf("expected agreement %d to be selected, got %+v", last.ID, d.Current)
			}
		}
	})

	t.Run("explicit_selection_loads_detail", func(t *testing.T) {
		d, err := svc.Dashboard(DashboardQuery{Agreement: strconv.FormatUint(uint64(first.ID), 10)})
		testutil.AssertNoError(t, err)
		if d.Current == nil || d.Current.ID != first.ID {
			t.Fatalf("expected agreement %d, got %+v", first.ID, d.Current)
		}
		if len(d.Current.Portfolios) != 2 {
			t.Errorf("expected 2 portfolios, got %d", len(d.Current.Portfolios))
		}
		if d.Current.Portfolios[0].ID > d.Current.Portfolios[1].ID {
			t.Error("expected portfolios ordered by id")
		}
		if d.Current.CreditorName() != creditor.Name {
			t.Errorf("expected creditor %q, got %q", creditor.Name, d.Current.CreditorName())
		}
	})

	for _, sel := range []string{"abc", "-1", "0", "999", "1.5"} {
		t.Run("no_selection_for_"+sel, func(t *testing.T) {
			d, err := svc.Dashboard(DashboardQuery{Agreement: sel})
			testutil.AssertNoError(t, err)
			if d.Current != nil {
				t.Errorf("expected no selection, got %d", d.Current.ID)
			}
			if len(d.Agreements) != 2 {
				t.Errorf("expected the list to be unaffected, got %d rows", len(d.Agreements))
			}
		})
	}
}

func TestDashboardEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewDashboardService(db)

	d, err := svc.Dashboard(DashboardQuery{})
	testutil.AssertNoError(t, err)
	if d.Current != nil || len(d.Agreements) != 0 {
		t.Errorf("expected an empty dashboard, got %+v", d)
	}
	if !d.TotalSum.IsZero() {
		t.Errorf("expected zero total, got %s", d.TotalSum)
	}
}

func TestListAgreements(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewDashboardService(db)
	creditor := testutil.CreateTestCreditor(t, db)
	for i := 0; i < 5; i++ {
		testutil.CreateTestAgreement(t, db, creditor.ID)
	}

	page, err := svc.ListAgreements(listing.SortRequest{Sort: "id", Dir: "desc"}, listing.PageRequest{Page: 1, PageSize: 2})
	testutil.AssertNoError(t, err)

	if page.TotalItems != 5 || page.TotalPages != 3 {
		t.Errorf("expected 5 items on 3 pages, got %d on %d", page.TotalItems, page.TotalPages)
	}
	if len(page.Data) != 2 || page.Data[0].ID != 5 {
		t.Errorf("expected the two newest agreements first, got %+v", page.Data)
	}
	if page.Data[0].Creditor == nil {
		t.Error("expected the creditor to be joined")
	}
}
