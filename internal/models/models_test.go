package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDate(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var v struct {
			D Date `json:"d"`
		}
		if err := json.Unmarshal([]byte(`{"d":"2024-02-29"}`), &v); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		out, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(out) != `{"d":"2024-02-29"}` {
			t.Errorf("unexpected json %s", out)
		}
	})

	t.Run("empty_string_is_zero", func(t *testing.T) {
		var d Date
		if err := json.Unmarshal([]byte(`""`), &d); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if !d.IsZero() {
			t.Errorf("expected zero date, got %s", d)
		}
	})

	t.Run("rejects_other_formats", func(t *testing.T) {
		var d Date
		if err := json.Unmarshal([]byte(`"29/02/2024"`), &d); err == nil {
			t.Error("expected error")
		}
		if err := json.Unmarshal([]byte(`20240229`), &d); err == nil {
			t.Error("expected error for number")
		}
	})

	t.Run("days_until_rounds_up", func(t *testing.T) {
		today := DateOf(time.Date(2024, 2, 1, 23, 59, 0, 0, time.UTC))
		if got := today.DaysUntil(MustParseDate("2024-03-01")); got != 29 {
			t.Errorf("expected 29, got %d", got)
		}
		if got := today.DaysUntil(MustParseDate("2024-01-31")); got != -1 {
			t.Errorf("expected -1, got %d", got)
		}
	})
}

func TestInvestmentValues(t *testing.T) {
	inv := Investment{Shares: dec("800"), PurchasePrice: dec("1.80"), CurrentPrice: dec("1.95")}

	if !inv.MarketValue().Equal(dec("1560")) {
		t.Errorf("expected market value 1560, got %s", inv.MarketValue())
	}
	if !inv.CostBasis().Equal(dec("1440")) {
		t.Errorf("expected cost basis 1440, got %s", inv.CostBasis())
	}
}

func TestInvestmentUpdateApply(t *testing.T) {
	inv := Investment{ID: "i", Symbol: "A", Shares: dec("1"), CurrentPrice: dec("2")}
	price := dec("3")
	InvestmentUpdate{CurrentPrice: &price}.Apply(&inv)

	if !inv.CurrentPrice.Equal(price) {
		t.Errorf("expected price 3, got %s", inv.CurrentPrice)
	}
	if inv.Symbol != "A" || !inv.Shares.Equal(dec("1")) {
		t.Errorf("expected untouched fields to survive, got %+v", inv)
	}
}

func TestPortfolio(t *testing.T) {
	t.Run("clone_copies_holdings", func(t *testing.T) {
		p := Portfolio{ID: "p", Investments: []Investment{{ID: "a"}}}
		c := p.Clone()
		c.Investments[0].ID = "changed"

		if p.Investments[0].ID != "a" {
			t.Error("expected original holdings untouched")
		}
	})

	t.Run("update_applies_non_nil_fields", func(t *testing.T) {
		p := Portfolio{Name: "Old", Provider: "DBS", TotalValue: dec("10")}
		name := "New"
		total := dec("999")
		PortfolioUpdate{Name: &name, TotalValue: &total}.Apply(&p)

		if p.Name != "New" || p.Provider != "DBS" || !p.TotalValue.Equal(total) {
			t.Errorf("unexpected portfolio %+v", p)
		}
	})

	t.Run("amounts_encode_as_numbers", func(t *testing.T) {
		out, err := json.Marshal(Budget{ID: "1", Allocated: dec("600"), Spent: dec("450.5"), Month: "2024-01"})
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		want := `{"id":"1","category":"","allocated":600,"spent":450.5,"month":"2024-01"}`
		if string(out) != want {
			t.Errorf("expected %s, got %s", want, out)
		}
	})
}
