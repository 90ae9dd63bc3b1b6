package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"mindful/internal/backend"
	"mindful/internal/cli"
	"mindful/internal/config"
	"mindful/internal/core"
	"mindful/internal/format"
	"mindful/internal/ledger"
	"mindful/internal/log"
)

// app carries what every command needs once the journal is open.
type app struct {
	cfg     *config.Config
	logger  *log.Logger
	money   format.Money
	session *cli.Session
}

func (a *app) journal() *ledger.Journal {
	return a.session.Journal
}

// month resolves a --month flag value, defaulting to the active month.
func (a *app) month(flagValue string) (core.MonthKey, error) {
	if flagValue == "" {
		return a.journal().Month(), nil
	}
	return core.ParseMonthKey(flagValue)
}

// close releases the session opened by the last command, if any.
func (a *app) close() error {
	if a.session == nil {
		return nil
	}
	err := a.session.Close()
	a.session = nil
	return err
}

// newRootCmd builds the command tree. The returned func closes whatever the
// executed command opened and must run even when the command fails.
func newRootCmd(cfg *config.Config, logger *log.Logger) (*cobra.Command, func() error) {
	a := &app{
		cfg:    cfg,
		logger: logger,
		money:  format.NewMoney(cfg.Locale, cfg.Currency),
	}

	root := &cobra.Command{
		Use:           "mindful",
		Short:         "A spending journal that tracks purchases against personal values",
		Long:          rootLong(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := cli.OpenJournal(cmd.Context(), logger, cfg)
			if err != nil {
				return err
			}
			a.session = s
			return nil
		},
	}

	root.AddCommand(
		newSeedCmd(a),
		newAddCmd(a),
		newEditCmd(a),
		newDeleteCmd(a),
		newToggleTagCmd(a),
		newListCmd(a),
		newSummaryCmd(a),
		newBudgetsCmd(a),
		newRetroCmd(a),
		newCategoryCmd(a),
		newTagCmd(a),
		newTagsCmd(a),
		newNoteCmd(a),
		newMonthCmd(a),
		newNextCmd(a),
		newPrevCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newWatchCmd(a),
	)

	return root, a.close
}

func rootLong() string {
	return "A spending journal that tracks purchases against personal values.\n\n" +
		"Configuration comes from the environment or a .env file. DATA_BACKEND selects\n" +
		"the store: " + strings.Join(backend.GetBackendTypeStrings(), ", ") + "."
}

// execute runs root, releases the session and prints a failing command's
// error to errOut.
func execute(ctx context.Context, root *cobra.Command, closeFn func() error, errOut io.Writer) error {
	err := root.ExecuteContext(ctx)
	err = errors.Join(err, closeFn())
	if err != nil {
		fmt.Fprintln(errOut, "mindful:", err)
	}
	return err
}
