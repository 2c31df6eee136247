package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/contactbook/internal/app"
	"github.com/heartmarshall/contactbook/internal/domain"
	"github.com/heartmarshall/contactbook/internal/service/contact"
	"github.com/heartmarshall/contactbook/internal/service/derive"
	"github.com/heartmarshall/contactbook/internal/service/view"
)

// sync loads the collection. Falling back to the snapshot is reported on
// stderr and is not an error.
func (r *runtime) sync(ctx context.Context, a *app.App) error {
	err := a.Contacts.Load(ctx)
	if errors.Is(err, contact.ErrUsingSnapshot) {
		r.warnf("Backend unreachable, showing saved contacts.\n")
		return nil
	}
	return err
}

func newListCommand(r *runtime) *cobra.Command {
	var (
		route     string
		search    string
		category  string
		sortBy    string
		favorites bool
		recent    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts",
		Long: `List the contacts of a page.

Pages are selected with --route: "/" (active), "/blocked" or "/bin".
Search matches name, email or phone. --favorites and --recent narrow the
active list before search, category and sort are applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page := domain.PageConfigFor(route)
			sort, err := view.ParseSort(sortBy)
			if err != nil {
				return err
			}
			if recent < 0 {
				return domain.NewValidationError("recent", "must be >= 0")
			}

			return r.withApp(cmd.Context(), func(a *app.App) error {
				if err := r.sync(cmd.Context(), a); err != nil {
					return err
				}

				all := a.Contacts.Contacts()
				parts := derive.PartitionByStatus(all)
				source := all
				title, description := page.Title, page.Description

				switch {
				case favorites:
					source = derive.Favorites(parts.Active)
					title, description = "Favorites", ""
				case recent > 0:
					source = derive.Recent(parts.Active, recent)
					title, description = "Recent Contacts", ""
				}
				if favorites || recent > 0 {
					page.StatusFilter = domain.ContactStatusActive
				}

				shown := a.Composer.Compose(source, view.Query{
					Status:   page.StatusFilter,
					Search:   search,
					Category: category,
					Sort:     sort,
				})

				counts := derive.StatusCounts(parts)
				r.printf("%s\n%s\n%s\n",
					renderHeading(title, description),
					mutedStyle.Render(fmt.Sprintf("active %d, blocked %d, bin %d",
						counts[domain.ContactStatusActive],
						counts[domain.ContactStatusBlocked],
						counts[domain.ContactStatusBin])),
					renderContacts(shown.Items()),
				)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&route, "route", "/", `page to show: "/", "/blocked" or "/bin"`)
	cmd.Flags().StringVarP(&search, "search", "s", "", "match name, email or phone")
	cmd.Flags().StringVarP(&category, "category", "c", "", "only contacts with this category")
	cmd.Flags().StringVar(&sortBy, "sort", "recent", "sort order: name, category or recent")
	cmd.Flags().BoolVar(&favorites, "favorites", false, "only favorite active contacts")
	cmd.Flags().IntVar(&recent, "recent", 0, "only the first N active contacts in backend order")
	return cmd
}

func newShowCommand(r *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd.Context(), func(a *app.App) error {
				c, err := a.Contacts.GetContact(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				r.printf("%s\n", renderContact(c))
				return nil
			})
		},
	}
}

func newAddCommand(r *runtime) *cobra.Command {
	var (
		in     contact.CreateContactInput
		avatar string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a contact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("avatar") {
				in.Avatar = &avatar
			}
			if err := in.Validate(); err != nil {
				return err
			}
			return r.withApp(cmd.Context(), func(a *app.App) error {
				if err := r.sync(cmd.Context(), a); err != nil {
					return err
				}
				c, err := a.Contacts.CreateContact(cmd.Context(), in)
				if err != nil {
					return err
				}
				r.printf("Added %s (%s).\n", c.Name, c.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "full name")
	cmd.Flags().StringVar(&in.Email, "email", "", "email address")
	cmd.Flags().StringVar(&in.Phone, "phone", "", "phone number")
	cmd.Flags().StringSliceVar(&in.Categories, "category", nil, "category label, repeatable ("+strings.Join(domain.PredefinedCategories, ", ")+" or any text)")
	cmd.Flags().StringVar(&avatar, "avatar", "", "avatar image URL")
	return cmd
}

func newEditCommand(r *runtime) *cobra.Command {
	var (
		name, email, phone, avatar string
		categories                 []string
	)

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change fields of a contact",
		Long: `Change fields of a contact. Only the flags you pass are changed.
Pass --phone "" to clear the phone number and --category "" to clear all categories.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := contact.UpdateContactInput{ID: args[0]}
			flags := cmd.Flags()
			if flags.Changed("name") {
				in.Name = &name
			}
			if flags.Changed("email") {
				in.Email = &email
			}
			if flags.Changed("phone") {
				in.Phone = &phone
			}
			if flags.Changed("avatar") {
				in.Avatar = &avatar
			}
			if flags.Changed("category") {
				in.Categories = append([]string{}, categories...)
			}
			if err := in.Validate(); err != nil {
				return err
			}

			return r.withApp(cmd.Context(), func(a *app.App) error {
				if err := r.sync(cmd.Context(), a); err != nil {
					return err
				}
				c, err := a.Contacts.UpdateContact(cmd.Context(), in)
				if err != nil {
					return err
				}
				r.printf("Updated %s.\n", c.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "replace categories, repeatable")
	cmd.Flags().StringVar(&avatar, "avatar", "", "avatar image URL")
	return cmd
}

func newDeleteCommand(r *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a contact permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd.Context(), func(a *app.App) error {
				if err := r.sync(cmd.Context(), a); err != nil {
					return err
				}
				name := contactName(a, args[0])
				if err := a.Contacts.DeleteContact(cmd.Context(), args[0]); err != nil {
					return err
				}
				r.printf("Deleted %s.\n", name)
				return nil
			})
		},
	}
}

func newFavoriteCommand(r *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "favorite ID",
		Short: "Toggle the favorite mark of a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd.Context(), func(a *app.App) error {
				if err := r.sync(cmd.Context(), a); err != nil {
					return err
				}
				if c, ok := findContact(a, args[0]); ok && c.EffectiveStatus() != domain.ContactStatusActive {
					r.warnf("Warning: %s is %s. Favorites are only shown for active contacts.\n", c.Name, c.EffectiveStatus())
				}
				favorite, err := a.Contacts.ToggleFavorite(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				name := contactName(a, args[0])
				if favorite {
					r.printf("Added %s to favorites.\n", name)
				} else {
					r.printf("Removed %s from favorites.\n", name)
				}
				return nil
			})
		},
	}
}

func newStatusCommand(r *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Move a contact to active, blocked or bin",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := domain.ParseContactStatus(strings.ToLower(strings.TrimSpace(args[1])))
			in := contact.SetStatusInput{ID: args[0], Status: status}
			if err := in.Validate(); err != nil {
				return err
			}

			return r.withApp(cmd.Context(), func(a *app.App) error {
				if err := r.sync(cmd.Context(), a); err != nil {
					return err
				}
				if c, ok := findContact(a, args[0]); ok {
					r.checkTransition(c, status)
				}
				if err := a.Contacts.SetStatus(cmd.Context(), in); err != nil {
					return err
				}
				r.printf("Moved %s to %s.\n", contactName(a, args[0]), status)
				return nil
			})
		},
	}
}

// checkTransition warns when a status change is not one of the actions
// offered for the contact's current status.
func (r *runtime) checkTransition(c domain.Contact, to domain.ContactStatus) {
	from := c.EffectiveStatus()
	if from == to {
		r.warnf("Warning: %s is already %s.\n", c.Name, to)
		return
	}
	offered := from.Transitions()
	if !slices.Contains(offered, to) {
		r.warnf("Warning: %s contacts are moved to %s, not %s.\n", from, joinStatuses(offered, " or "), to)
	}
}

func findContact(a *app.App, id string) (domain.Contact, bool) {
	return a.Contacts.Contacts().Find(func(c domain.Contact) bool { return c.ID == id })
}

func contactName(a *app.App, id string) string {
	c, ok := findContact(a, id)
	if !ok {
		return id
	}
	return c.Name
}
