package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wisp-ui/wisp/internal/toast"
	"github.com/wisp-ui/wisp/internal/ui"
	"github.com/wisp-ui/wisp/internal/ui/components"
)

func newThemeCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "theme [name]",
		Short:     "Preview a theme's palette and variants",
		Long:      "Preview a built-in theme. Without a name the configured theme is shown.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: components.ThemeNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			theme := a.theme
			if len(args) == 1 {
				theme, err = components.ThemeByName(args[0])
				if err != nil {
					return fmt.Errorf("%w (available: %s)", err, strings.Join(components.ThemeNames(), ", "))
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderThemePreview(theme))
			return nil
		},
	}

	return cmd
}

func renderThemePreview(theme components.Theme) string {
	ctx := components.DefaultContext().WithTheme(theme)

	swatches := make([]ui.Renderable, 0, len(components.NamedSlots()))
	for _, slot := range components.NamedSlots() {
		swatches = append(swatches, components.NewBadge(slot.Name).WithAppliers(
			components.Background(slot.Slot),
			components.PaddingX(components.SpacingSizeSmall),
		))
	}

	badges := components.HStack(
		components.NewBadge("default"),
		components.SuccessBadge("success"),
		components.WarningBadge("warning"),
		components.ErrorBadge("error"),
		components.InfoBadge("info"),
	).WithGap(1)

	toasts := make([]ui.Renderable, 0, len(toast.Variants()))
	for _, v := range toast.Variants() {
		rec := toast.Record{ID: string(v), Title: strings.ToUpper(string(v[:1])) + string(v[1:]), Variant: v}
		toasts = append(toasts, components.NewToast(rec, nil).WithWidth(28))
	}

	return components.VStack(
		components.TitleText("Theme: "+theme.Name),
		components.NewDivider(),
		components.CaptionText("palette"),
		components.HStack(swatches...).WithGap(1),
		components.CaptionText("badges"),
		badges,
		components.CaptionText("toasts"),
		components.VStack(toasts...),
	).WithGap(1).ViewWithContext(ctx)
}
