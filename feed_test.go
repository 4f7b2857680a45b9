package wealth

import (
	"testing"
	"time"
)

const snapshotFeed = `{
	"as_of": "2026-03-01",
	"accounts": {"cash": 150000, "broker": "500000"},
	"loans": [{"type": "mortgage", "balance": 1200000}]
}`

func TestImportSnapshotFeed(t *testing.T) {
	mapping := SnapshotFeedMapping{
		Date:        "$.as_of",
		Cash:        "$.accounts.cash",
		Investments: "$.accounts.broker",
		Mortgage:    "$.loans[*].balance",
	}

	snapshot, err := ImportSnapshotFeed("p1", []byte(snapshotFeed), mapping, "SEK")
	if err != nil {
		t.Fatalf("ImportSnapshotFeed() failed: %v", err)
	}
	if !snapshot.Date.Equal(day(2026, time.March, 1)) {
		t.Errorf("snapshot date = %s, want 2026-03-01", snapshot.Date)
	}
	if !snapshot.Assets.Cash.Equal(SEK(150000)) {
		t.Errorf("cash = %s, want %s", snapshot.Assets.Cash, SEK(150000))
	}
	// String amounts parse the same as numbers.
	if !snapshot.Assets.Investments.Equal(SEK(500000)) {
		t.Errorf("investments = %s, want %s", snapshot.Assets.Investments, SEK(500000))
	}
	if !snapshot.Liabilities.Mortgage.Equal(SEK(1200000)) {
		t.Errorf("mortgage = %s, want %s", snapshot.Liabilities.Mortgage, SEK(1200000))
	}
	if !snapshot.NetWorth.Equal(SEK(-550000)) {
		t.Errorf("net worth = %s, want %s", snapshot.NetWorth, SEK(-550000))
	}
	if snapshot.Source != "feed" {
		t.Errorf("source = %q, want feed", snapshot.Source)
	}
}

func TestImportSnapshotFeedErrors(t *testing.T) {
	testCases := []struct {
		name    string
		data    string
		mapping SnapshotFeedMapping
	}{
		{"not json", "{", SnapshotFeedMapping{Date: "$.as_of"}},
		{"no date path", snapshotFeed, SnapshotFeedMapping{Cash: "$.accounts.cash"}},
		{"bad path", snapshotFeed, SnapshotFeedMapping{Date: "$.as_of", Cash: "$.accounts.missing"}},
		{"date not a string", snapshotFeed, SnapshotFeedMapping{Date: "$.accounts.cash"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ImportSnapshotFeed("p1", []byte(tc.data), tc.mapping, "SEK"); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

const transactionFeed = `{
	"transactions": [
		{"date": "2026-03-01", "amount": 45000, "category": "salary"},
		{"date": "2026-03-05", "amount": -6000, "category": "groceries"}
	]
}`

func TestImportTransactionFeed(t *testing.T) {
	mapping := TransactionFeedMapping{
		Items:    "$.transactions",
		Date:     "$.date",
		Amount:   "$.amount",
		Category: "$.category",
	}

	out, err := ImportTransactionFeed("p1", []byte(transactionFeed), mapping, "SEK")
	if err != nil {
		t.Fatalf("ImportTransactionFeed() failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("imported %d transactions, want 2", len(out))
	}
	if out[0].Type != Income || !out[0].Amount.Equal(SEK(45000)) || out[0].Category != "salary" {
		t.Errorf("first transaction = %+v, want income 45000 salary", out[0])
	}
	// Without a type path the sign decides, and the amount imports positive.
	if out[1].Type != Expense || !out[1].Amount.Equal(SEK(6000)) {
		t.Errorf("second transaction = %+v, want expense 6000", out[1])
	}
	if !out[1].Date.Equal(day(2026, time.March, 5)) {
		t.Errorf("second transaction date = %s, want 2026-03-05", out[1].Date)
	}
}

func TestImportTransactionFeedTypePath(t *testing.T) {
	feed := `{"items": [{"on": "2026-03-01", "value": 500, "kind": "expense"}]}`
	mapping := TransactionFeedMapping{
		Items:  "$.items",
		Date:   "$.on",
		Amount: "$.value",
		Type:   "$.kind",
	}

	out, err := ImportTransactionFeed("p1", []byte(feed), mapping, "SEK")
	if err != nil {
		t.Fatalf("ImportTransactionFeed() failed: %v", err)
	}
	if len(out) != 1 || out[0].Type != Expense {
		t.Fatalf("imported %+v, want one expense", out)
	}
}

func TestImportTransactionFeedErrors(t *testing.T) {
	testCases := []struct {
		name    string
		data    string
		mapping TransactionFeedMapping
	}{
		{"no items path", transactionFeed, TransactionFeedMapping{Date: "$.date", Amount: "$.amount"}},
		{"items not a list", `{"transactions": 3}`, TransactionFeedMapping{Items: "$.transactions", Date: "$.date", Amount: "$.amount"}},
		{"amount not a number", `{"transactions": [{"date": "2026-03-01", "amount": "45000"}]}`,
			TransactionFeedMapping{Items: "$.transactions", Date: "$.date", Amount: "$.amount"}},
		{"bad date", `{"transactions": [{"date": "yesterday-ish", "amount": 1}]}`,
			TransactionFeedMapping{Items: "$.transactions", Date: "$.date", Amount: "$.amount"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ImportTransactionFeed("p1", []byte(tc.data), tc.mapping, "SEK"); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
