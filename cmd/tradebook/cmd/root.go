package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/config"
	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/pkg/logger"
	"github.com/rustyeddy/tradebook/storage"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfgFile string
	account string

	cfg   *config.Config
	log   zerolog.Logger
	kv    storage.KV
	store *journal.Store
}

// NewRootCmd builds the tradebook command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "tradebook",
		Short: "A personal trading journal",
		Long: `Tradebook records trades, deposits and withdrawals for a real and a
demo account and derives balance, win rate and equity statistics from them.

Everything is kept in one JSON document stored in a SQLite database, a
directory of files or memory, as chosen by the configuration.

Examples:
  tradebook trade add --symbol EURUSD --type buy --profit 120 --fees 4
  tradebook stats --account demo
  tradebook export full -o backup.json`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (YAML or JSON)")
	root.PersistentFlags().StringVar(&a.account, "account", "", "account to act on: real or demo (default from settings)")

	root.AddCommand(
		newTradeCmd(a),
		newDepositCmd(a),
		newCategoryCmd(a),
		newSettingsCmd(a),
		newStatsCmd(a),
		newEquityCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// open loads the configuration and the journal on first use.
func (a *app) open(cmd *cobra.Command) (*journal.Store, error) {
	if a.store != nil {
		return a.store, nil
	}

	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return nil, err
	}
	a.cfg = cfg
	a.log = logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
		Output: cmd.ErrOrStderr(),
	})
	logger.SetGlobalLogger(a.log)

	kv, err := storage.Open(cfg.Storage.Type, cfg.Storage.Path, a.log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	a.kv = kv

	s, err := journal.Open(journal.NewKVBackend(kv, cfg.Storage.Key), journal.WithLogger(a.log))
	if err != nil {
		_ = a.close()
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if a.account != "" {
		if err := s.SwitchAccount(journal.AccountKey(a.account)); err != nil {
			_ = a.close()
			return nil, err
		}
	}
	a.store = s
	return s, nil
}

type storeRunFunc func(cmd *cobra.Command, s *journal.Store, args []string) error

// withStore adapts fn into a RunE that opens the journal and closes the
// underlying storage afterwards.
func (a *app) withStore(fn storeRunFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := a.open(cmd)
		if err != nil {
			return err
		}
		defer a.close()
		return fn(cmd, s, args)
	}
}

func (a *app) close() error {
	if a.kv == nil {
		return nil
	}
	err := a.kv.Close()
	a.kv, a.store = nil, nil
	return err
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseTime accepts RFC 3339 or a local date with an optional minute-precision
// time.
func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q (want YYYY-MM-DD[ HH:MM] or RFC3339)", s)
}

// parseSide matches s case-insensitively and returns the stored spelling.
func parseSide(s string) (journal.Side, error) {
	for _, side := range []journal.Side{journal.Buy, journal.Sell} {
		if strings.EqualFold(s, string(side)) {
			return side, nil
		}
	}
	return "", fmt.Errorf("type must be buy or sell, got %q", s)
}

func parseDepositType(s string) (journal.DepositType, error) {
	for _, typ := range []journal.DepositType{journal.DepositIn, journal.Withdrawal} {
		if strings.EqualFold(s, string(typ)) {
			return typ, nil
		}
	}
	return "", fmt.Errorf("type must be deposit or withdrawal, got %q", s)
}

func displayTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[len(id)-8:]
}
