// Package profile builds the details view of a college and the metrics
// derived from its accreditation and ranking blocks.
package profile

import (
	"math"
	"slices"

	"github.com/okian/collegerank/internal/domain/model"
)

// Quality levels of a score on the 0..4 accreditation scale.
const (
	LevelExcellent = "Excellent"
	LevelVeryGood  = "Very Good"
	LevelGood      = "Good"
	LevelAverage   = "Average"
)

// highDemandCutoff is the general closing rank under which a course counts as high demand.
const highDemandCutoff = 200

// CriterionView is one accreditation criterion with its display metrics.
type CriterionView struct {
	model.Criterion
	Percentage float64 `json:"percentage"`
	Strongest  bool    `json:"strongest"`
	Level      string  `json:"level"`
}

// CutoffView is one course cutoff with its display metrics.
type CutoffView struct {
	model.Cutoff
	BarWidth   float64 `json:"bar_width"`
	HighDemand bool    `json:"high_demand"`
}

// Details is a profile plus its derived metrics.
type Details struct {
	model.Profile
	AcademicIndex   float64 `json:"academic_index"`
	CareerScore     float64 `json:"career_score"`
	ReputationScore float64 `json:"reputation_score"`
	// AcademicLevel grades AcademicIndex, InfrastructureLevel the campus score.
	AcademicLevel       string          `json:"academic_level"`
	InfrastructureLevel string          `json:"infrastructure_level"`
	Criteria            []CriterionView `json:"criteria_view"`
	CutoffViews         []CutoffView    `json:"cutoffs_view"`
}

// QualityLevel buckets a 0..4 score.
func QualityLevel(score float64) string {
	switch {
	case score >= 3.7:
		return LevelExcellent
	case score >= 3.4:
		return LevelVeryGood
	case score >= 3.0:
		return LevelGood
	default:
		return LevelAverage
	}
}

// AcademicIndex averages teaching, research and governance. Zero when the
// breakdown is incomplete.
func AcademicIndex(criteria []model.Criterion) float64 {
	return meanOf(criteria, 0, 2, 4)
}

// CareerScore averages student support, research and infrastructure.
func CareerScore(criteria []model.Criterion) float64 {
	return meanOf(criteria, 3, 2, 1)
}

// ReputationScore blends the accreditation score with the national rank.
func ReputationScore(naac float64, rank int) float64 {
	return round((naac*2+(100-float64(rank))/10)/3, 1)
}

// Derive computes every derived metric of p.
func Derive(p model.Profile) Details {
	d := Details{
		Profile:             p,
		AcademicIndex:       AcademicIndex(p.Accreditation.Criteria),
		CareerScore:         CareerScore(p.Accreditation.Criteria),
		ReputationScore:     ReputationScore(p.Accreditation.Score, p.Ranking.Rank),
		InfrastructureLevel: QualityLevel(p.Infrastructure.Score),
		Criteria:            make([]CriterionView, 0, len(p.Accreditation.Criteria)),
		CutoffViews:         make([]CutoffView, 0, len(p.Cutoffs)),
	}
	d.AcademicLevel = QualityLevel(d.AcademicIndex)

	best := math.Inf(-1)
	for _, c := range p.Accreditation.Criteria {
		best = math.Max(best, c.Score)
	}
	for _, c := range p.Accreditation.Criteria {
		d.Criteria = append(d.Criteria, CriterionView{
			Criterion:  c,
			Percentage: round(c.Score/model.MaxQuality*100, 1),
			Strongest:  c.Score == best,
			Level:      QualityLevel(c.Score),
		})
	}

	widest := 0
	for _, c := range p.Cutoffs {
		widest = max(widest, c.General)
	}
	for _, c := range p.Cutoffs {
		cv := CutoffView{Cutoff: c, HighDemand: c.General < highDemandCutoff}
		if widest > 0 {
			cv.BarWidth = round(float64(c.General)/float64(widest)*100, 1)
		}
		d.CutoffViews = append(d.CutoffViews, cv)
	}
	return d
}

func meanOf(criteria []model.Criterion, idx ...int) float64 {
	sum := 0.0
	for _, i := range idx {
		if i >= len(criteria) {
			return 0
		}
		sum += criteria[i].Score
	}
	return round(sum/float64(len(idx)), 2)
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// Strongest returns the names of the criteria sharing the top score.
func Strongest(d Details) []string {
	out := []string{}
	for _, c := range d.Criteria {
		if c.Strongest {
			out = append(out, c.Name)
		}
	}
	slices.Sort(out)
	return out
}
