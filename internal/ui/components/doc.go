// Package components is the Wisp design system: theme tokens, variant-resolved
// style strategies, and the presentational components built on them.
//
// Themes are immutable values passed through a RenderContext:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	out := components.NewToast(record, nil).ViewWithContext(ctx)
//
// View renders with DefaultTheme.
//
// Components take theme-aware StyleFuncs through WithAppliers:
//
//	badge := components.NewBadge("beta").WithAppliers(
//		components.Background(components.PaletteSecondary),
//		components.PaddingX(components.SpacingSizeSmall),
//	)
//
// Variants (badge, alert, toast) are resolved through the theme's
// VariantRegistry, so a theme owns the look of every variant.
//
// Toast renders a toast.Record and hands dismissal back to its owner through
// the callback given to NewToast. It never reaches into a queue.
package components
