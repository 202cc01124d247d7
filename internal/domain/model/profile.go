package model

// Trend describes how a course cutoff moved against the previous cycle.
type Trend string

// Cutoff trends.
const (
	TrendUp     Trend = "up"
	TrendStable Trend = "stable"
	TrendDown   Trend = "down"
)

// Criterion is one row of the accreditation breakdown.
type Criterion struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Accreditation is the NAAC block of a profile.
type Accreditation struct {
	Grade    string      `json:"grade"`
	Score    float64     `json:"score"`
	Cycle    string      `json:"cycle"`
	Criteria []Criterion `json:"criteria"`
}

// Ranking is the NIRF block of a profile.
type Ranking struct {
	Rank     int     `json:"rank"`
	Year     int     `json:"year"`
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

// Cutoff is a course closing rank for the general category.
type Cutoff struct {
	Course  string `json:"course"`
	General int    `json:"general"`
	Trend   Trend  `json:"trend"`
}

// Infrastructure summarises campus facilities.
type Infrastructure struct {
	Score      float64           `json:"score"`
	Facilities map[string]string `json:"facilities"`
}

// Profile is the details view of a college.
type Profile struct {
	CollegeID      int            `json:"college_id"`
	Name           string         `json:"name"`
	Location       string         `json:"location"`
	Category       Category       `json:"category"`
	Website        string         `json:"website"`
	Established    int            `json:"established"`
	Ranking        Ranking        `json:"ranking"`
	Accreditation  Accreditation  `json:"accreditation"`
	Cutoffs        []Cutoff       `json:"cutoffs"`
	Infrastructure Infrastructure `json:"infrastructure"`
}
