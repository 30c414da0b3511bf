package main

import (
	"context"
	"fmt"

	"mini-foerderportal/internal/adapters/persistence/store"
	"mini-foerderportal/internal/config"
	"mini-foerderportal/internal/fixtures"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
)

const outFlag = "out"

var seedFlags = map[string]cobraflags.Flag{
	outFlag: &cobraflags.StringFlag{
		Name:  outFlag,
		Value: "mocks/db.json",
		Usage: "File the dataset is written to",
	},
}

func newSeedCommand() *cobra.Command {
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the fixture dataset as JSON",
		Long: `Seed an in-memory store with the built-in fixtures and write its export
to a JSON file. The server boots from such a file when FIXTURES_PATH is set.

Examples:
  portalctl seed                       # writes mocks/db.json
  portalctl seed --out /tmp/db.json`,
		RunE: seedCommand,
	}

	cobraflags.RegisterMap(seedCmd, seedFlags)
	return seedCmd
}

func seedCommand(cmd *cobra.Command, _ []string) error {
	out := seedFlags[outFlag].GetString()
	ctx := context.Background()

	db, err := config.OpenInMemory()
	if err != nil {
		return err
	}

	st, err := store.New(db)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Seed(ctx); err != nil {
		return fmt.Errorf("error seeding store: %w", err)
	}

	dataset, err := st.Export(ctx)
	if err != nil {
		return fmt.Errorf("error exporting store: %w", err)
	}

	if err := fixtures.Write(out, dataset); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %s with %d users, %d programs, %d applications\n",
		out, len(dataset.Users), len(dataset.Programs), len(dataset.Applications))
	return nil
}
