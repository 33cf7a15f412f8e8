package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/mrlokans/bookreviews/internal/config"
	"github.com/mrlokans/bookreviews/internal/database"
)

// MigrateCommand applies, reverts or lists schema migrations against the
// configured database.
type MigrateCommand struct {
	Down   int
	Status bool

	cfg config.Database
	out io.Writer
}

func NewMigrateCommand(cfg config.Database) *MigrateCommand {
	return &MigrateCommand{cfg: cfg, out: os.Stdout}
}

func (cmd *MigrateCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)

	fs.IntVar(&cmd.Down, "down", 0, "Revert the given number of most recent migrations")
	fs.BoolVar(&cmd.Status, "status", false, "List migrations and whether they are applied")
	fs.StringVar(&cmd.cfg.Driver, "driver", cmd.cfg.Driver, "Database driver (sqlite or postgres)")
	fs.StringVar(&cmd.cfg.Path, "db", cmd.cfg.Path, "Path to the SQLite database file")
	fs.StringVar(&cmd.cfg.DSN, "dsn", cmd.cfg.DSN, "Postgres connection string")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s migrate [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Apply pending schema migrations (default), revert applied ones or show their status.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s migrate\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s migrate -status\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s migrate -down 1 -db ./bookreviews.db\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Down < 0 {
		return fmt.Errorf("-down must not be negative")
	}
	if cmd.Down > 0 && cmd.Status {
		return fmt.Errorf("-down and -status cannot be combined")
	}

	return nil
}

func (cmd *MigrateCommand) Run() error {
	cfg := cmd.cfg
	cfg.AutoMigrate = false

	db, err := database.NewDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	migrator := database.NewMigrator(db.DB)

	switch {
	case cmd.Status:
		return cmd.printStatus(ctx, migrator)
	case cmd.Down > 0:
		reverted, err := migrator.Down(ctx, cmd.Down)
		for _, id := range reverted {
			fmt.Fprintf(cmd.out, "Reverted %s\n", id)
		}
		if err != nil {
			return err
		}
		if len(reverted) == 0 {
			fmt.Fprintln(cmd.out, "Nothing to revert")
		}
	default:
		applied, err := migrator.Up(ctx)
		for _, id := range applied {
			fmt.Fprintf(cmd.out, "Applied %s\n", id)
		}
		if err != nil {
			return err
		}
		if len(applied) == 0 {
			fmt.Fprintln(cmd.out, "Database is up to date")
		}
	}
	return nil
}

func (cmd *MigrateCommand) printStatus(ctx context.Context, migrator *database.Migrator) error {
	statuses, err := migrator.Status(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VERSION\tNAME\tAPPLIED AT")
	for _, s := range statuses {
		appliedAt := "pending"
		if s.Applied {
			appliedAt = s.AppliedAt.UTC().Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.Version, s.Name, appliedAt)
	}
	return w.Flush()
}
