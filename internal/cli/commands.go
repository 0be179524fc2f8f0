package cli

import (
	"fmt"
	"strings"

	"github.com/mtmgroup/dashboards-ui/internal/app/types"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/filter"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/form"
	"github.com/mtmgroup/dashboards-ui/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newWhoAmICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := app.authorize(cmd)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, id)
		},
	}
}

func newOptionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Show the distinct values used for suggestions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.authorize(cmd); err != nil {
				return err
			}
			opts, err := app.deps.Service.GetOptions(cmd.Context())
			if err != nil {
				return err
			}
			return writeOut(cmd, app, opts)
		},
	}
}

func newListCmd(app *App) *cobra.Command {
	values := make(map[filter.Field]*string, len(filter.Fields))

	cmd := &cobra.Command{
		Use:   "list [field=value ...]",
		Short: "List dashboards matching the filters",
		Long: "Filters are given as flags or as field=value arguments, e.g. created-by=ann.\n" +
			"Arguments win over flags for the same field.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var st filter.State
			for _, f := range filter.Fields {
				st = filter.Reduce(st, filter.SetFilter{Field: f, Value: *values[f]})
			}
			st, err := applyFilterArgs(st, args)
			if err != nil {
				return err
			}

			if _, err := app.authorize(cmd); err != nil {
				return err
			}

			list, err := app.deps.Service.ListDashboards(cmd.Context(), st.Query())
			if err != nil {
				return err
			}
			if st.IsEmpty() {
				logger.Debug("listing all dashboards", zap.Int("count", len(list)))
			}
			return writeOut(cmd, app, list)
		},
	}

	for _, f := range filter.Fields {
		values[f] = cmd.Flags().String(flagName(string(f)), "", fmt.Sprintf("Filter by %s", labelOf(string(f))))
	}
	return cmd
}

// applyFilterArgs reduces field=value arguments onto st.
func applyFilterArgs(st filter.State, args []string) (filter.State, error) {
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return st, types.NewErrInvalidRequestField(fmt.Sprintf("expected field=value, got %q", arg))
		}
		f, err := filter.ParseField(name)
		if err != nil {
			return st, err
		}
		st = filter.Reduce(st, filter.SetFilter{Field: f, Value: value})
	}
	return st, nil
}

func newCreateCmd(app *App) *cobra.Command {
	values := make(map[string]*string, len(form.CreateFields))

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := app.authorize(cmd)
			if err != nil {
				return err
			}

			p := app.newPage(cmd, id)
			p.OpenCreate()
			dialog := p.CreateDialog()
			for _, f := range form.CreateFields {
				if err := dialog.Edit(f, *values[f]); err != nil {
					return err
				}
			}

			if o := p.SubmitCreate(cmd.Context()); o != form.OutcomeSucceeded {
				return formError{Message: dialog.State().Error}
			}
			return writeOut(cmd, app, types.CreatedID{ID: dialog.LastCreatedID()})
		},
	}

	for _, f := range form.CreateFields {
		values[f] = cmd.Flags().String(flagName(f), "", usageOf(f))
	}
	return cmd
}

func newUpdateCmd(app *App) *cobra.Command {
	values := make(map[string]*string, len(form.UpdateFields))

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update the editable fields of a dashboard",
		Long:  "Fields that are not given keep their current values.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dashboardID, err := types.ParseDashboardID(args[0])
			if err != nil {
				return err
			}

			id, err := app.authorize(cmd)
			if err != nil {
				return err
			}

			current, err := app.deps.Service.GetDashboard(cmd.Context(), dashboardID)
			if err != nil {
				return err
			}

			p := app.newPage(cmd, id)
			dialog := p.UpdateDialog()
			dialog.Open(current)
			for _, f := range form.UpdateFields {
				if !cmd.Flags().Changed(flagName(f)) {
					continue
				}
				if err := dialog.Edit(f, *values[f]); err != nil {
					return err
				}
			}

			if o := p.SubmitUpdate(cmd.Context()); o != form.OutcomeSucceeded {
				return formError{Message: dialog.State().Error}
			}

			if updated, ok := p.Snapshot().Dashboards.Find(dashboardID); ok {
				current = updated
			}
			return writeOut(cmd, app, current)
		},
	}

	for _, f := range form.UpdateFields {
		values[f] = cmd.Flags().String(flagName(f), "", usageOf(f))
	}
	return cmd
}

func flagName(field string) string {
	return strings.ReplaceAll(field, "_", "-")
}

func labelOf(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

func usageOf(field string) string {
	if form.IsDateField(field) {
		return fmt.Sprintf("Dashboard %s (YYYY-MM-DD)", labelOf(field))
	}
	return fmt.Sprintf("Dashboard %s", labelOf(field))
}
