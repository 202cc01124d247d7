// Package model contains domain models passed between layers.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// Category classifies how an institution is run.
type Category string

// Known categories.
const (
	Government Category = "Government"
	Private    Category = "Private"
	Autonomous Category = "Autonomous"
)

// ErrUnknownCategory is returned when a category name is not one of the known values.
var ErrUnknownCategory = errors.New("unknown category")

// Categories lists every known category in display order.
func Categories() []Category {
	return []Category{Government, Private, Autonomous}
}

// ParseCategory resolves a category name case-insensitively.
// An empty string resolves to the empty Category, meaning "no restriction".
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case Government, Private, Autonomous:
		return true
	}
	return false
}

// College is one ranked institution record. Records are immutable once loaded.
type College struct {
	ID            int      `json:"id" koanf:"id"`
	Name          string   `json:"name" koanf:"name"`
	City          string   `json:"city" koanf:"city"`
	Region        string   `json:"region" koanf:"region"`
	Category      Category `json:"category" koanf:"category"`
	QualityScore  float64  `json:"quality_score" koanf:"quality_score"`   // NAAC, 0..4
	NationalRank  int      `json:"national_rank" koanf:"national_rank"`   // NIRF, lower is better
	PlacementRate float64  `json:"placement_rate" koanf:"placement_rate"` // percent, 0..100
	OverallScore  float64  `json:"overall_score" koanf:"overall_score"`
}

// Range bounds of the metric domains.
const (
	MinQuality   = 0.0
	MaxQuality   = 4.0
	MinRank      = 1
	MaxRank      = 500
	MinPlacement = 0.0
	MaxPlacement = 100.0
)

// Validate checks a record against the field domains.
func (c College) Validate() error {
	switch {
	case c.ID < 1:
		return fmt.Errorf("id %d must be positive", c.ID)
	case strings.TrimSpace(c.Name) == "":
		return fmt.Errorf("college %d: missing name", c.ID)
	case !c.Category.Valid():
		return fmt.Errorf("college %d: %w: %q", c.ID, ErrUnknownCategory, c.Category)
	case c.QualityScore < MinQuality || c.QualityScore > MaxQuality:
		return fmt.Errorf("college %d: quality score %.2f outside [0,4]", c.ID, c.QualityScore)
	case c.NationalRank < MinRank:
		return fmt.Errorf("college %d: national rank %d must be positive", c.ID, c.NationalRank)
	case c.PlacementRate < MinPlacement || c.PlacementRate > MaxPlacement:
		return fmt.Errorf("college %d: placement rate %.2f outside [0,100]", c.ID, c.PlacementRate)
	}
	return nil
}
