package wealth

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// SnapshotFeedMapping maps fields of an external JSON feed onto snapshot line
// items, each as a JSONPath expression into the feed document. Unset paths
// leave their line item at zero.
type SnapshotFeedMapping struct {
	Date string `json:"date" yaml:"date"`

	Cash        string `json:"cash" yaml:"cash"`
	Investments string `json:"investments" yaml:"investments"`
	RealEstate  string `json:"real_estate" yaml:"real_estate"`
	OtherAssets string `json:"other_assets" yaml:"other_assets"`

	Mortgage   string `json:"mortgage" yaml:"mortgage"`
	Loans      string `json:"loans" yaml:"loans"`
	OtherDebts string `json:"other_debts" yaml:"other_debts"`
}

// extract evaluates one JSONPath against the parsed feed. A path matching a
// single-element array unwraps it, the usual shape of a filter expression.
func extract(jobj interface{}, path string) (interface{}, error) {
	value, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("path %q: %w", path, err)
	}
	if arr, ok := value.([]interface{}); ok {
		if len(arr) != 1 {
			return nil, fmt.Errorf("path %q: expected one value, got %d", path, len(arr))
		}
		value = arr[0]
	}
	return value, nil
}

// extractMoney evaluates a money field of the mapping. An empty path yields
// zero in the feed's currency.
func extractMoney(jobj interface{}, path, currency string) (Money, error) {
	if path == "" {
		return M(0, currency), nil
	}
	value, err := extract(jobj, path)
	if err != nil {
		return Money{}, err
	}
	switch v := value.(type) {
	case float64:
		return M(v, currency), nil
	case string:
		var m Money
		if err := json.Unmarshal([]byte(fmt.Sprintf(`{"amount":%q,"currency":%q}`, v, currency)), &m); err != nil {
			return Money{}, fmt.Errorf("path %q: cannot read amount %q: %w", path, v, err)
		}
		return m, nil
	default:
		return Money{}, fmt.Errorf("path %q: expected a number, got %T", path, value)
	}
}

// ImportSnapshotFeed parses an external provider's JSON document, pulls the
// mapped line items out of it, and aggregates them into a snapshot dated by
// the feed. The snapshot's source is marked "feed".
func ImportSnapshotFeed(profileID string, data []byte, mapping SnapshotFeedMapping, currency string) (*Snapshot, error) {
	var jobj interface{}
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("cannot parse feed document: %w", err)
	}

	if mapping.Date == "" {
		return nil, invalidf("date", "the feed mapping needs a date path")
	}
	rawDate, err := extract(jobj, mapping.Date)
	if err != nil {
		return nil, err
	}
	str, ok := rawDate.(string)
	if !ok {
		return nil, fmt.Errorf("path %q: expected a date string, got %T", mapping.Date, rawDate)
	}
	on, err := ParseDate(str)
	if err != nil {
		return nil, fmt.Errorf("path %q: %w", mapping.Date, err)
	}

	var assets Assets
	var liabilities Liabilities
	for _, item := range []struct {
		path string
		dst  *Money
	}{
		{mapping.Cash, &assets.Cash},
		{mapping.Investments, &assets.Investments},
		{mapping.RealEstate, &assets.RealEstate},
		{mapping.OtherAssets, &assets.Other},
		{mapping.Mortgage, &liabilities.Mortgage},
		{mapping.Loans, &liabilities.Loans},
		{mapping.OtherDebts, &liabilities.Other},
	} {
		m, err := extractMoney(jobj, item.path, currency)
		if err != nil {
			return nil, err
		}
		*item.dst = m
	}

	snapshot, err := ComputeNetWorth(profileID, on, assets, liabilities)
	if err != nil {
		return nil, err
	}
	snapshot.Source = "feed"
	return snapshot, nil
}

// TransactionFeedMapping maps an external JSON feed's transaction list onto
// transaction records. Items selects the list; the other paths are evaluated
// relative to each item. Type and Category are optional.
type TransactionFeedMapping struct {
	Items    string `json:"items" yaml:"items"`
	Date     string `json:"date" yaml:"date"`
	Amount   string `json:"amount" yaml:"amount"`
	Type     string `json:"type" yaml:"type"`
	Category string `json:"category" yaml:"category"`
}

// ImportTransactionFeed parses an external provider's JSON document and maps
// each item of the selected list onto a transaction. Without a type path,
// negative amounts import as expenses and positive ones as income.
func ImportTransactionFeed(profileID string, data []byte, mapping TransactionFeedMapping, currency string) ([]*Transaction, error) {
	var jobj interface{}
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("cannot parse feed document: %w", err)
	}
	if mapping.Items == "" || mapping.Date == "" || mapping.Amount == "" {
		return nil, invalidf("mapping", "items, date and amount paths are required")
	}

	raw, err := jsonpath.Get(mapping.Items, jobj)
	if err != nil {
		return nil, fmt.Errorf("path %q: %w", mapping.Items, err)
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("path %q: expected a list, got %T", mapping.Items, raw)
	}

	out := make([]*Transaction, 0, len(items))
	for i, item := range items {
		rawDate, err := extract(item, mapping.Date)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		str, ok := rawDate.(string)
		if !ok {
			return nil, fmt.Errorf("item %d: expected a date string, got %T", i, rawDate)
		}
		on, err := ParseDate(str)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		rawAmount, err := extract(item, mapping.Amount)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		f, ok := rawAmount.(float64)
		if !ok {
			return nil, fmt.Errorf("item %d: expected a number, got %T", i, rawAmount)
		}

		kind := Income
		if mapping.Type != "" {
			rawType, err := extract(item, mapping.Type)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			str, ok := rawType.(string)
			if !ok {
				return nil, fmt.Errorf("item %d: expected a type string, got %T", i, rawType)
			}
			if kind, err = ParseTransactionType(str); err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		} else if f < 0 {
			kind = Expense
			f = -f
		}

		category := ""
		if mapping.Category != "" {
			if rawCat, err := extract(item, mapping.Category); err == nil {
				category, _ = rawCat.(string)
			}
		}

		t, err := NewTransaction(profileID, on, M(f, currency), kind, category)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, t)
	}
	return out, nil
}
