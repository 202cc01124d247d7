package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	service "github.com/okian/collegerank/internal/app"
	"github.com/okian/collegerank/internal/domain/query"
)

type listFlags struct {
	search    string
	category  string
	region    string
	city      string
	bounds    map[string]*string
	sort      string
	order     string
	page      int
	selection []int
}

var boundFlags = []struct { //nolint:gochecknoglobals // fixed flag table
	name  string
	field query.Field
	edge  query.Edge
}{
	{"quality-min", query.FieldQuality, query.Min},
	{"quality-max", query.FieldQuality, query.Max},
	{"rank-min", query.FieldRank, query.Min},
	{"rank-max", query.FieldRank, query.Max},
	{"placement-min", query.FieldPlacement, query.Min},
	{"placement-max", query.FieldPlacement, query.Max},
}

func newListCommand(opts *options) *cobra.Command {
	f := &listFlags{bounds: map[string]*string{}}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show one page of the filtered, sorted listing",
		Example: `  rankctl list --search IIT --category Government
  rankctl list --rank-min 1 --rank-max 10 --sort nationalRank --order asc
  rankctl list --select 1,3,5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd.Context(), cmd, opts, func(svc *service.Service) error {
				return runList(cmd, svc, f)
			})
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.search, "search", "", "case-insensitive name substring")
	fl.StringVar(&f.category, "category", "", "Government, Private or Autonomous")
	fl.StringVar(&f.region, "region", "", "state or province")
	fl.StringVar(&f.city, "city", "", "city within --region")
	for _, b := range boundFlags {
		f.bounds[b.name] = fl.String(b.name, "", fmt.Sprintf("%s %s bound; unparsable values keep the default", b.field, b.edge))
	}
	fl.StringVar(&f.sort, "sort", "", "overallScore, nationalRank, placementRate or qualityScore")
	fl.StringVar(&f.order, "order", "", "asc or desc (default desc)")
	fl.IntVar(&f.page, "page", 1, "page number, clamped to the last page")
	fl.IntSliceVar(&f.selection, "select", nil, "college ids to mark for comparison, at most three")
	return cmd
}

// actions turns the flags into the same actions the listing controls emit.
func (f *listFlags) actions(cmd *cobra.Command) []query.Action {
	var out []query.Action
	if f.search != "" {
		out = append(out, query.Action{Type: query.ActionSearch, Value: f.search})
	}
	if f.category != "" {
		out = append(out, query.Action{Type: query.ActionCategory, Value: f.category})
	}
	if f.region != "" {
		out = append(out, query.Action{Type: query.ActionRegion, Value: f.region})
	}
	if f.city != "" {
		out = append(out, query.Action{Type: query.ActionCity, Value: f.city})
	}
	for _, b := range boundFlags {
		if cmd.Flags().Changed(b.name) {
			out = append(out, query.Action{Type: query.ActionBound, Field: string(b.field), Edge: string(b.edge), Value: *f.bounds[b.name]})
		}
	}
	for _, id := range f.selection {
		out = append(out, query.Action{Type: query.ActionSelect, ID: id})
	}
	return out
}

func runList(cmd *cobra.Command, svc *service.Service, f *listFlags) error {
	ctx := cmd.Context()
	entities, err := svc.Colleges(ctx)
	if err != nil {
		return err
	}

	st := query.NewState()
	out := cmd.OutOrStdout()
	for _, a := range f.actions(cmd) {
		outcome, err := query.Apply(entities, st, a)
		if err != nil {
			return err
		}
		if outcome == query.Ignored {
			fmt.Fprintln(out, ignoredNote(a))
		}
	}
	if f.sort != "" {
		k, ok := query.ParseSortKey(f.sort)
		if !ok {
			return fmt.Errorf("%w: %q", query.ErrUnknownSortKey, f.sort)
		}
		st.SortKey = k
	}
	if f.order != "" {
		d, ok := query.ParseDirection(f.order)
		if !ok {
			return fmt.Errorf("unknown order %q", f.order)
		}
		st.Direction = d
	}
	st.Page = max(f.page, 1)

	v, err := svc.Query(ctx, st)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, renderView(v, st))
	fmt.Fprintln(out, v.Summary())
	fmt.Fprint(out, renderFooter(v, st))
	return nil
}

func ignoredNote(a query.Action) string {
	switch a.Type {
	case query.ActionSelect:
		return fmt.Sprintf("selection full, %d not added", a.ID)
	case query.ActionBound:
		return fmt.Sprintf("%s %s %q is not a number, keeping the default", a.Field, a.Edge, a.Value)
	case query.ActionCity:
		return fmt.Sprintf("city %q is not in the selected region, ignored", a.Value)
	}
	return fmt.Sprintf("%s ignored", a.Type)
}
