// Package cmd implements the CLI application to track personal wealth.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/sparhok/wealth"
)

// Commands lists every subcommand. A main package registers them on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&initCmd{},
	&networthCmd{},
	&trendCmd{},
	&addGoalCmd{},
	&saveCmd{},
	&progressCmd{},
	&addDebtCmd{},
	&payCmd{},
	&payoffCmd{},
	&fireCmd{},
	&healthCmd{},
	&txCmd{},
	&addRecurringCmd{},
	&processCmd{},
	&reportCmd{},
	&badgesCmd{},
	&pensionCmd{},
	&importCmd{},
	&topicCmd{},
	&adviseCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("store-file", "sparhok.jsonl", "Path to the wealth store file (JSONL format)")

// LoadStore reads the app store file. A missing file yields an empty store
// with a fresh profile so first runs work without an init step.
func LoadStore() (s *wealth.Store, err error) {
	f, err := os.Open(*storeFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, store does not exist, starting from an empty one instead")
		return wealth.NewStore(wealth.NewProfile("local", "SEK")), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err = wealth.DecodeStore(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read store %q: %w", *storeFile, err)
	}
	if s.Profile == nil {
		s.Profile = wealth.NewProfile("local", "SEK")
	}
	if s.Level == nil {
		s.Level = wealth.NewUserLevel(s.Profile.ID)
	}
	return s, nil
}

// SaveStore writes the app store file back in full.
func SaveStore(s *wealth.Store) error {
	f, err := os.Create(*storeFile)
	if err != nil {
		return fmt.Errorf("cannot write store %q: %w", *storeFile, err)
	}
	defer f.Close()
	return s.Encode(f)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "dark")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// parseDateFlag parses a -d flag value, empty meaning today.
func parseDateFlag(value string) (wealth.Date, error) {
	if value == "" {
		return wealth.Today(), nil
	}
	return wealth.ParseDate(value)
}

// fail prints an error and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
