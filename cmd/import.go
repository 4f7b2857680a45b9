package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sparhok/wealth"
	"gopkg.in/yaml.v3"
)

// importCmd imports snapshots or transactions from an external JSON feed.
type importCmd struct {
	feed    string
	mapping string
	kind    string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import data from an external JSON feed" }
func (*importCmd) Usage() string {
	return `sparhok import -feed <file> -mapping <file> [-type snapshot|transactions]

  Reads an external provider's JSON document and maps its fields onto
  store records. The mapping file pairs each record field with a JSONPath
  expression into the feed.

Usage Examples:
# A bank export mapped onto a snapshot.
$ sparhok import -feed bank.json -mapping bank-mapping.yaml -type snapshot

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.feed, "feed", "", "JSON feed file to import")
	f.StringVar(&c.mapping, "mapping", "", "YAML mapping file")
	f.StringVar(&c.kind, "type", "snapshot", "Kind of records to import (snapshot, transactions)")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.feed == "" || c.mapping == "" {
		return fail(fmt.Errorf("both -feed and -mapping are required"))
	}
	data, err := os.ReadFile(c.feed)
	if err != nil {
		return fail(err)
	}
	mappingData, err := os.ReadFile(c.mapping)
	if err != nil {
		return fail(err)
	}
	store, err := LoadStore()
	if err != nil {
		return fail(err)
	}
	cur := store.Profile.Currency

	switch c.kind {
	case "snapshot":
		var mapping wealth.SnapshotFeedMapping
		if err := yaml.Unmarshal(mappingData, &mapping); err != nil {
			return fail(fmt.Errorf("cannot parse mapping file %q: %w", c.mapping, err))
		}
		snapshot, err := wealth.ImportSnapshotFeed(store.Profile.ID, data, mapping, cur)
		if err != nil {
			return fail(err)
		}
		store.Snapshots = append(store.Snapshots, snapshot)
		fmt.Printf("Imported snapshot of %s on %s\n", snapshot.NetWorth, snapshot.Date)

	case "transactions":
		var mapping wealth.TransactionFeedMapping
		if err := yaml.Unmarshal(mappingData, &mapping); err != nil {
			return fail(fmt.Errorf("cannot parse mapping file %q: %w", c.mapping, err))
		}
		transactions, err := wealth.ImportTransactionFeed(store.Profile.ID, data, mapping, cur)
		if err != nil {
			return fail(err)
		}
		store.Transactions = append(store.Transactions, transactions...)
		fmt.Printf("Imported %d transactions\n", len(transactions))

	default:
		return fail(fmt.Errorf("unknown import type %q", c.kind))
	}

	if err := SaveStore(store); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
