package services

import (
	"testing"

	"finboard/internal/models"
	"finboard/internal/pagination"
	"finboard/internal/store"
	"finboard/internal/testutil"
)

func TestCreateTransaction(t *testing.T) {
	t.Run("prepends_new_transaction", func(t *testing.T) {
		st, _ := testutil.NewTestStore(t, store.SampleSeed())
		svc := NewTransactionService(st)

		tx, err := svc.CreateTransaction(models.Transaction{
			Type:        models.TransactionTypeExpense,
			Category:    "Food",
			Amount:      testutil.Dec("12.50"),
			Description: "Lunch",
			Date:        models.MustParseDate("2024-01-16"),
		})
		testutil.AssertNoError(t, err)

		if tx.ID != "new-1" {
			t.Errorf("expected id new-1, got %s", tx.ID)
		}

		page, err := svc.GetTransactions(TransactionFilter{}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 6 {
			t.Fatalf("expected 6 transactions, got %d", page.TotalItems)
		}
		if page.Data[0].ID != tx.ID {
			t.Errorf("expected new transaction first, got %s", page.Data[0].ID)
		}
	})
}

func TestGetTransactions(t *testing.T) {
	t.Run("filter_by_type", func(t *testing.T) {
		st, _ := testutil.NewTestStore(t, store.SampleSeed())
		svc := NewTransactionService(st)

		income := models.TransactionTypeIncome
		page, err := svc.GetTransactions(TransactionFilter{Type: &income}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 2 {
			t.Fatalf("expected 2 income transactions, got %d", page.TotalItems)
		}
		for _, tx := range page.Data {
			if tx.Type != models.TransactionTypeIncome {
				t.Errorf("expected income, got %s", tx.Type)
			}
		}
	})

	t.Run("search_matches_description_and_category", func(t *testing.T) {
		st, _ := testutil.NewTestStore(t, store.SampleSeed())
		svc := NewTransactionService(st)

		page, err := svc.GetTransactions(TransactionFilter{Search: "  FOOD "}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 1 || page.Data[0].ID != "2" {
			t.Errorf("expected only transaction 2, got %+v", page.Data)
		}

		page, err = svc.GetTransactions(TransactionFilter{Search: "project"}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 1 || page.Data[0].ID != "5" {
			t.Errorf("expected only transaction 5, got %+v", page.Data)
		}
	})

	t.Run("no_match_returns_empty_page", func(t *testing.T) {
		st, _ := testutil.NewTestStore(t, store.SampleSeed())
		svc := NewTransactionService(st)

		page, err := svc.GetTransactions(TransactionFilter{Search: "yacht"}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 0 || len(page.Data) != 0 {
			t.Errorf("expected empty page, got %+v", page)
		}
		if page.Data == nil {
			t.Error("expected non-nil data slice")
		}
	})

	t.Run("pagination", func(t *testing.T) {
		st, _ := testutil.NewTestStore(t, store.SampleSeed())
		svc := NewTransactionService(st)

		page, err := svc.GetTransactions(TransactionFilter{}, pagination.PageRequest{Page: 2, PageSize: 2})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 5 {
			t.Errorf("expected 5 total items, got %d", page.TotalItems)
		}
		if page.TotalPages != 3 {
			t.Errorf("expected 3 total pages, got %d", page.TotalPages)
		}
		if len(page.Data) != 2 || page.Data[0].ID != "3" || page.Data[1].ID != "4" {
			t.Errorf("expected transactions 3 and 4, got %+v", page.Data)
		}
	})
}
