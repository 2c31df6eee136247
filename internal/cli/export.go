package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/contactbook/internal/app"
	"github.com/heartmarshall/contactbook/internal/domain"
	"github.com/heartmarshall/contactbook/internal/service/derive"
)

type exportDocument struct {
	ExportedAt time.Time             `json:"exportedAt" yaml:"exported_at"`
	Owner      string                `json:"owner"      yaml:"owner"`
	Contacts   []domain.Contact      `json:"contacts"   yaml:"contacts"`
	Activities []domain.UserActivity `json:"activities" yaml:"activities"`
}

func newExportCommand(r *runtime) *cobra.Command {
	var format, route string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write contacts and the activity log as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if format != "json" && format != "yaml" {
				return domain.NewValidationError("format", "must be json or yaml")
			}

			return r.withApp(cmd.Context(), func(a *app.App) error {
				if err := r.sync(cmd.Context(), a); err != nil {
					return err
				}

				contacts := a.Contacts.Contacts()
				if route != "" {
					contacts = derive.PartitionByStatus(contacts).Group(domain.PageConfigFor(route).StatusFilter)
				}

				doc := exportDocument{
					ExportedAt: time.Now().UTC(),
					Owner:      a.Session.User().Email,
					Contacts:   contacts.Items(),
					Activities: a.Contacts.Activities().Items(),
				}
				return writeExport(r.out, format, doc)
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	cmd.Flags().StringVar(&route, "route", "", `export only one page: "/", "/blocked" or "/bin"`)
	return cmd
}

func writeExport(w io.Writer, format string, doc exportDocument) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("export: encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("export: encode json: %w", err)
		}
		return nil
	}
}
