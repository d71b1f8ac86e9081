package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/reclist"
	"github.com/hupe1980/reclist/filter"
	"github.com/hupe1980/reclist/order"
	"github.com/hupe1980/reclist/record"
	"github.com/hupe1980/reclist/source"
)

type viewFlags struct {
	files               []string
	dir                 string
	orders              []string
	filters             []string
	normalizeDiacritics bool
	page                int
	pageSize            int
	locale              string
	selects             []string
	rangeTo             string
	multi               bool
	concurrency         int
}

type viewOutput struct {
	Stats    reclist.Stats    `json:"stats"`
	Order    []string         `json:"order"`
	Filters  []string         `json:"filters"`
	Selected []string         `json:"selected"`
	Pivot    string           `json:"pivot,omitempty"`
	Items    []map[string]any `json:"items"`
}

func newViewCmd(app *App) *cobra.Command {
	var f viewFlags

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Load record files and print one page of the list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, app, &f)
		},
	}

	cmd.Flags().StringArrayVarP(&f.files, "file", "f", nil, "Record file (.json, .jsonl, optionally .zst/.gz/.lz4); repeatable")
	cmd.Flags().StringVar(&f.dir, "dir", "", "Directory relative file names are resolved against (default from config)")
	cmd.Flags().StringArrayVar(&f.orders, "order", nil, "Order rule field[:asc|desc]; repeatable")
	cmd.Flags().StringArrayVar(&f.filters, "filter", nil, "Filter rule \"field operator value\"; repeatable")
	cmd.Flags().BoolVar(&f.normalizeDiacritics, "normalize-diacritics", false, "Match accented letters by their base letter in like filters")
	cmd.Flags().IntVar(&f.page, "page", 0, "Page to print (default: page of the active record, else 1)")
	cmd.Flags().IntVar(&f.pageSize, "page-size", 0, "Page size (default from config)")
	cmd.Flags().StringVar(&f.locale, "locale", "", "Collation locale (default from config)")
	cmd.Flags().StringArrayVar(&f.selects, "select", nil, "Select record id; repeatable with --multi")
	cmd.Flags().StringVar(&f.rangeTo, "range-to", "", "Extend the selection from the pivot to this id")
	cmd.Flags().BoolVar(&f.multi, "multi", false, "Use multi selection mode")
	cmd.Flags().IntVar(&f.concurrency, "concurrency", 0, "Number of files read at once (default from config)")

	return cmd
}

func runView(cmd *cobra.Command, app *App, f *viewFlags) error {
	if len(f.files) == 0 {
		return errors.New("at least one --file is required")
	}
	cfg := app.Config
	if f.dir != "" {
		cfg.Load.Dir = f.dir
	}
	if f.pageSize != 0 {
		cfg.PageSize = f.pageSize
	}
	if f.locale != "" {
		cfg.Locale = f.locale
	}
	if f.concurrency != 0 {
		cfg.Load.Concurrency = f.concurrency
	}

	orders := make([]order.Rule, 0, len(f.orders))
	for _, s := range f.orders {
		r, err := parseOrder(s)
		if err != nil {
			return err
		}
		orders = append(orders, r)
	}
	filters := make([]filter.Rule, 0, len(f.filters))
	for _, s := range f.filters {
		r, err := parseFilter(s, f.normalizeDiacritics)
		if err != nil {
			return err
		}
		filters = append(filters, r)
	}

	mode := reclist.SingleSelect
	if f.multi {
		mode = reclist.MultiSelect
	} else if len(f.selects) > 1 {
		return errors.New("selecting several ids requires --multi")
	}

	l, err := reclist.New(
		reclist.WithPageSize(cfg.PageSize),
		reclist.WithLocale(cfg.Locale),
		reclist.WithSelectionMode(mode),
		reclist.WithHighlightClass(cfg.Highlight.Class),
		reclist.WithHighlightTag(cfg.Highlight.Tag),
		reclist.WithLogger(app.Logger),
	)
	if err != nil {
		return err
	}

	maps, err := source.LoadAll(cmd.Context(), source.NewLocalStore(cfg.Load.Dir), f.files, cfg.Load.Concurrency)
	if err != nil {
		return err
	}
	if _, err := l.LoadMaps(maps); err != nil {
		return err
	}

	l.SetOrder(orders...)
	l.SetFilters(filters...)
	l.AddMany(f.selects)
	if f.rangeTo != "" {
		l.SelectRangeFromPivotTo(f.rangeTo)
	}
	switch {
	case f.page != 0:
		if !l.SetPage(f.page) {
			return fmt.Errorf("page %d out of range [1, %d]", f.page, l.NumPages())
		}
	case l.ActiveID() != "":
		l.SetPage(l.PageOf(l.ActiveID()))
	}

	out := viewOutput{
		Stats:    l.Stats(),
		Order:    make([]string, 0, len(orders)),
		Filters:  make([]string, 0, len(filters)),
		Selected: l.SelectedIDs(),
		Pivot:    l.Pivot(),
		Items:    make([]map[string]any, 0, l.NumVisibleItems()),
	}
	for _, r := range l.Order() {
		out.Order = append(out.Order, r.Field+":"+r.Direction.String())
	}
	for _, r := range l.Filters() {
		out.Filters = append(out.Filters, fmt.Sprintf("%s %s %s", r.Field, r.Operator, r.Value))
	}
	for _, rec := range l.VisibleItems() {
		out.Items = append(out.Items, record.ToMap(rec))
	}
	return writeJSON(cmd.OutOrStdout(), out, app.PrettyJSON)
}
