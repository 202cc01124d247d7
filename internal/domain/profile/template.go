package profile

import "github.com/okian/collegerank/internal/domain/model"

// For builds the details profile of c. Accreditation breakdown, cutoffs and
// infrastructure come from a fixed template; the header is taken from c.
func For(c model.College) model.Profile {
	p := template()
	p.CollegeID = c.ID
	p.Name = c.Name
	p.Location = c.City + ", " + c.Region
	p.Category = c.Category
	p.Ranking.Rank = c.NationalRank
	p.Accreditation.Score = c.QualityScore
	p.Accreditation.Grade = grade(c.QualityScore)
	return p
}

// grade maps a NAAC score to its letter grade.
func grade(score float64) string {
	switch {
	case score >= 3.51:
		return "A++"
	case score >= 3.26:
		return "A+"
	case score >= 3.01:
		return "A"
	case score >= 2.76:
		return "B++"
	case score >= 2.51:
		return "B+"
	case score >= 2.01:
		return "B"
	case score >= 1.51:
		return "C"
	default:
		return "D"
	}
}

func template() model.Profile {
	return model.Profile{
		Website:     "https://www.iitm.ac.in",
		Established: 1959,
		Ranking: model.Ranking{
			Rank:     1,
			Year:     2024,
			Category: "Engineering Institutions",
			Score:    89.93,
		},
		Accreditation: model.Accreditation{
			Grade: "A++",
			Score: 3.9,
			Cycle: "4th Cycle",
			Criteria: []model.Criterion{
				{Name: "Teaching-Learning & Evaluation", Score: 3.8},
				{Name: "Infrastructure & Learning Resources", Score: 3.9},
				{Name: "Research & Innovation", Score: 4.0},
				{Name: "Student Support & Progression", Score: 3.7},
				{Name: "Governance & Leadership", Score: 3.9},
				{Name: "Institutional Values", Score: 3.8},
			},
		},
		Cutoffs: []model.Cutoff{
			{Course: "Computer Science & Engineering", General: 65, Trend: model.TrendUp},
			{Course: "Electronics & Communication", General: 145, Trend: model.TrendStable},
			{Course: "Mechanical Engineering", General: 320, Trend: model.TrendDown},
			{Course: "Civil Engineering", General: 580, Trend: model.TrendStable},
		},
		Infrastructure: model.Infrastructure{
			Score:      3.9,
			Facilities: map[string]string{
				"laboratories": "Available",
				"library":      "Central library present",
				"hostel":       "Separate hostel facilities",
				"sports":       "Advanced",
			},
		},
	}
}
