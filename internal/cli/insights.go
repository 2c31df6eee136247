package cli

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/contactbook/internal/app"
	"github.com/heartmarshall/contactbook/internal/domain"
	"github.com/heartmarshall/contactbook/internal/service/derive"
)

func newDashboardCommand(r *runtime) *cobra.Command {
	var route string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show contact totals, top categories and recent activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page := domain.PageConfigFor(route)

			return r.withApp(cmd.Context(), func(a *app.App) error {
				if err := r.sync(cmd.Context(), a); err != nil {
					return err
				}
				if page.StatusFilter != domain.ContactStatusActive {
					r.printf("%s\n%s\n", renderHeading(page.Title, page.Description),
						mutedStyle.Render("The dashboard is only available for active contacts."))
					return nil
				}

				parts := derive.PartitionByStatus(a.Contacts.Contacts())
				d := derive.Dashboard(page.StatusFilter, parts.Active, a.Contacts.Activities(), a.DeriveOptions())
				r.printf("%s\n\n%s\n", renderHeading(page.Title, page.Description), renderDashboard(d))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&route, "route", "/", `page context: "/", "/blocked" or "/bin"`)
	return cmd
}

func newActivityCommand(r *runtime) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show the most recent actions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return domain.NewValidationError("limit", "must be >= 0")
			}

			return r.withApp(cmd.Context(), func(a *app.App) error {
				if err := r.sync(cmd.Context(), a); err != nil {
					return err
				}
				n := limit
				if n == 0 {
					n = a.Config.View.ActivityLimit
				}
				recent := derive.RecentActivity(a.Contacts.Activities(), n)
				r.printf("%s\n", renderActivities(recent.Items()))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "number of entries (default from config)")
	return cmd
}

func newCategoriesCommand(r *runtime) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Show how contacts are spread over categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withApp(cmd.Context(), func(a *app.App) error {
				if err := r.sync(cmd.Context(), a); err != nil {
					return err
				}
				active := derive.PartitionByStatus(a.Contacts.Contacts()).Active

				top := a.Config.View.TopCategories
				if all {
					top = len(derive.Categories(active))
				}
				r.printf("%s\n", renderDistribution(derive.CategoryDistribution(active, top)))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "list every category instead of folding the rest into Other")
	return cmd
}
