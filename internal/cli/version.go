package cli

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/contactbook/internal/app"
)

func newVersionCommand(r *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			r.printf("contacts %s\n", app.BuildVersion())
		},
	}
}
