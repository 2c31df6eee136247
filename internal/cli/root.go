// Package cli implements the contacts command line client.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/contactbook/internal/app"
	"github.com/heartmarshall/contactbook/internal/config"
	"github.com/heartmarshall/contactbook/pkg/ctxutil"
)

// Loader builds the application for a command that needs it.
type Loader func(ctx context.Context) (*app.App, error)

// DefaultLoader reads configuration, installs the logger and wires the app.
func DefaultLoader(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return app.New(ctx, cfg, app.NewLogger(cfg.Log))
}

type runtime struct {
	out    io.Writer
	errOut io.Writer
	load   Loader
}

// withApp builds the app, runs fn and releases the app afterwards.
func (r *runtime) withApp(ctx context.Context, fn func(a *app.App) error) error {
	a, err := r.load(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

func (r *runtime) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *runtime) warnf(format string, args ...any) {
	fmt.Fprintf(r.errOut, format, args...)
}

// NewRootCommand assembles the command tree.
func NewRootCommand(out, errOut io.Writer, load Loader) *cobra.Command {
	r := &runtime{out: out, errOut: errOut, load: load}

	root := &cobra.Command{
		Use:   "contacts",
		Short: "Manage your contacts from the terminal",
		Long: `contacts is a client for the contacts backend.

Sign in with "contacts login", then list, search, edit and organise your
contacts. Contacts can be moved between the active list, the blocked list
and the bin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmd.SetContext(ctxutil.WithCommand(cmd.Context(), cmd.CommandPath()))
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.AddCommand(
		newLoginCommand(r),
		newRegisterCommand(r),
		newLogoutCommand(r),
		newWhoamiCommand(r),
		newListCommand(r),
		newShowCommand(r),
		newAddCommand(r),
		newEditCommand(r),
		newDeleteCommand(r),
		newFavoriteCommand(r),
		newStatusCommand(r),
		newDashboardCommand(r),
		newActivityCommand(r),
		newCategoriesCommand(r),
		newExportCommand(r),
		newVersionCommand(r),
	)

	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) int {
	root := NewRootCommand(out, errOut, DefaultLoader)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(errOut, Message(err))
		return 1
	}
	return 0
}
