package query

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/okian/collegerank/internal/domain/model"
)

// Regions returns the distinct regions of entities in collation order.
func Regions(entities []model.College) []string {
	return distinct(entities, nil, func(c model.College) string { return c.Region })
}

// Cities returns the distinct cities of the given region in collation order.
// With no region selected there are no city choices.
func Cities(entities []model.College, region string) []string {
	if region == "" {
		return []string{}
	}
	return distinct(entities,
		func(c model.College) bool { return c.Region == region },
		func(c model.College) string { return c.City },
	)
}

func distinct(entities []model.College, keep func(model.College) bool, key func(model.College) string) []string {
	seen := make(map[string]struct{}, len(entities))
	out := make([]string, 0, len(entities))
	for _, c := range entities {
		if keep != nil && !keep(c) {
			continue
		}
		k := key(c)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	collate.New(language.English).SortStrings(out)
	return out
}
