// Package seed supplies the college catalog: the built-in records and an
// optional YAML catalog file.
package seed

import (
	"errors"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/collegerank/internal/domain/model"
)

// Sentinel kinds for catalog loading.
var (
	ErrLoadCatalog  = errors.New("load catalog failed")
	ErrEmptyCatalog = errors.New("catalog has no colleges")
)

// Default returns a fresh copy of the built-in catalog.
func Default() []model.College {
	return []model.College{
		{ID: 1, Name: "IIT Bombay", City: "Mumbai", Region: "Maharashtra", Category: model.Government, QualityScore: 3.8, NationalRank: 3, PlacementRate: 95, OverallScore: 98.5},
		{ID: 2, Name: "IIT Delhi", City: "Delhi", Region: "Delhi", Category: model.Government, QualityScore: 3.7, NationalRank: 2, PlacementRate: 94, OverallScore: 97.2},
		{ID: 3, Name: "IIT Madras", City: "Chennai", Region: "Tamil Nadu", Category: model.Government, QualityScore: 3.8, NationalRank: 1, PlacementRate: 96, OverallScore: 96.8},
		{ID: 4, Name: "BITS Pilani", City: "Pilani", Region: "Rajasthan", Category: model.Private, QualityScore: 3.6, NationalRank: 30, PlacementRate: 92, OverallScore: 95.4},
		{ID: 5, Name: "IIT Kanpur", City: "Kanpur", Region: "Uttar Pradesh", Category: model.Government, QualityScore: 3.7, NationalRank: 4, PlacementRate: 93, OverallScore: 94.9},
		{ID: 6, Name: "Anna University", City: "Chennai", Region: "Tamil Nadu", Category: model.Government, QualityScore: 3.5, NationalRank: 45, PlacementRate: 85, OverallScore: 89.5},
		{ID: 7, Name: "VIT Vellore", City: "Vellore", Region: "Tamil Nadu", Category: model.Private, QualityScore: 3.3, NationalRank: 15, PlacementRate: 88, OverallScore: 88.2},
		{ID: 8, Name: "NIT Trichy", City: "Tiruchirappalli", Region: "Tamil Nadu", Category: model.Government, QualityScore: 3.6, NationalRank: 10, PlacementRate: 90, OverallScore: 91.3},
		{ID: 9, Name: "Delhi University", City: "Delhi", Region: "Delhi", Category: model.Government, QualityScore: 3.4, NationalRank: 11, PlacementRate: 82, OverallScore: 87.6},
		{ID: 10, Name: "Manipal Institute", City: "Manipal", Region: "Karnataka", Category: model.Private, QualityScore: 3.2, NationalRank: 48, PlacementRate: 80, OverallScore: 84.5},
		{ID: 11, Name: "IIT Kharagpur", City: "Kharagpur", Region: "West Bengal", Category: model.Government, QualityScore: 3.7, NationalRank: 5, PlacementRate: 92, OverallScore: 94.2},
		{ID: 12, Name: "IIIT Hyderabad", City: "Hyderabad", Region: "Telangana", Category: model.Government, QualityScore: 3.5, NationalRank: 25, PlacementRate: 89, OverallScore: 90.1},
	}
}

// LoadFile reads a YAML catalog of the form:
//
//	colleges:
//	  - id: 1
//	    name: IIT Bombay
//	    ...
//
// Records are returned in file order and are not validated here.
func LoadFile(path string) ([]model.College, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadCatalog, path, err)
	}
	var out []model.College
	if err := k.UnmarshalWithConf("colleges", &out, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadCatalog, path, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyCatalog, path)
	}
	return out, nil
}

// Load returns the catalog at path, or the built-in one when path is empty.
func Load(path string) ([]model.College, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
