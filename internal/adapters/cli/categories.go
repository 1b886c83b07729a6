package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/docbridge/docbridge/internal/core/domain"
	"github.com/docbridge/docbridge/internal/infrastructure/validate"
)

func (a *App) category(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("category needs a subcommand: list, add, edit, rm")
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		return a.categoryList(ctx)
	case "add":
		return a.categoryAdd(ctx, rest)
	case "edit":
		return a.categoryEdit(ctx, rest)
	case "rm":
		return a.categoryRemove(ctx, rest)
	default:
		return fmt.Errorf("unknown category subcommand %q", sub)
	}
}

func (a *App) categoryList(ctx context.Context) error {
	categories, err := a.categories.List(ctx)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		fmt.Fprintln(a.out, "No categories.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCOLOR\tICON")
	for _, c := range categories {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Color, c.Icon)
	}
	return w.Flush()
}

func (a *App) categoryAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("category add", flag.ContinueOnError)
	fs.SetOutput(a.out)
	name := fs.String("name", "", "category name")
	color := fs.String("color", "#3366ff", "hex color")
	icon := fs.String("icon", "tag", "icon name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := validate.Category(validate.CategoryInput{
		Name:  *name,
		Color: *color,
		Icon:  *icon,
	}); err != nil {
		return err
	}

	created, err := a.categories.Create(ctx, domain.Category{
		Name:  *name,
		Color: *color,
		Icon:  domain.ResolveIcon(*icon),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created category %s (%s)\n", created.Name, created.ID)
	return nil
}

func (a *App) categoryEdit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("category edit", flag.ContinueOnError)
	fs.SetOutput(a.out)
	name := fs.String("name", "", "new name (empty keeps the current one)")
	color := fs.String("color", "", "new hex color")
	icon := fs.String("icon", "", "new icon name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("category edit needs exactly one category id")
	}

	current, err := a.categories.Get(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	if *name != "" {
		current.Name = *name
	}
	if *color != "" {
		current.Color = *color
	}
	if *icon != "" {
		current.Icon = domain.ResolveIcon(*icon)
	}

	if err := validate.Category(validate.CategoryInput{
		Name:  current.Name,
		Color: current.Color,
		Icon:  string(current.Icon),
	}); err != nil {
		return err
	}

	updated, err := a.categories.Update(ctx, *current)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated category %s (%s)\n", updated.Name, updated.ID)
	return nil
}

func (a *App) categoryRemove(ctx context.Context, args []string) error {
	id, err := requireID("category rm", args)
	if err != nil {
		return err
	}
	if err := a.categories.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted category %s\n", id)
	return nil
}
