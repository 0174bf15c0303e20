package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wisp-ui/wisp/internal/toast"
	"github.com/wisp-ui/wisp/internal/ui/components"
)

type toastFlags struct {
	title       string
	description string
	variant     string
	icon        string
	action      string
	duration    time.Duration
	width       int
}

func newToastCmd(root *rootFlags) *cobra.Command {
	flags := &toastFlags{}

	cmd := &cobra.Command{
		Use:   "toast",
		Short: "Render a single toast to stdout",
		Example: `  wisp toast --title Saved --description "All changes stored" --variant success
  wisp toast --title "Build failed" --variant error --action Retry`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToast(cmd, root, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.title, "title", "t", "", "Toast title")
	cmd.Flags().StringVarP(&flags.description, "description", "d", "", "Toast description")
	cmd.Flags().StringVar(&flags.variant, "variant", string(toast.VariantDefault), "Variant: "+variantNames())
	cmd.Flags().StringVar(&flags.icon, "icon", "", "Override the variant icon")
	cmd.Flags().StringVar(&flags.action, "action", "", "Label of an action button")
	cmd.Flags().DurationVar(&flags.duration, "duration", toast.DefaultDuration, "Time-to-live; 0 keeps the toast until dismissed")
	cmd.Flags().IntVar(&flags.width, "width", components.DefaultToastWidth, "Toast width in cells")

	return cmd
}

func runToast(cmd *cobra.Command, root *rootFlags, flags *toastFlags) error {
	if flags.title == "" && flags.description == "" {
		return fmt.Errorf("toast needs a --title or --description")
	}

	variant, ok := toast.ParseVariant(flags.variant)
	if !ok {
		return fmt.Errorf("unknown variant %q (want one of %s)", flags.variant, variantNames())
	}

	a, err := newApp(root, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	q := a.newQueue(cmd.Context())
	defer q.Close()

	opts := toast.Options{
		Title:       flags.title,
		Description: flags.description,
		Variant:     variant,
		Icon:        flags.icon,
		Duration:    toast.Duration(flags.duration),
	}
	if flags.action != "" {
		opts.Action = toast.Action{Label: flags.action, ID: strings.ToLower(flags.action)}
	}

	rec, _ := q.Get(q.Enqueue(opts))
	ctx := components.DefaultContext().WithTheme(a.theme)
	fmt.Fprintln(cmd.OutOrStdout(), components.NewToast(rec, nil).WithWidth(flags.width).ViewWithContext(ctx))
	return nil
}

func variantNames() string {
	names := make([]string, 0, len(toast.Variants()))
	for _, v := range toast.Variants() {
		names = append(names, string(v))
	}
	return strings.Join(names, "|")
}
