// Package types contains common types used across the application
package types

// Entry is one row of the landing-page top board.
type Entry struct {
	Rank   int     `json:"rank"`
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	City   string  `json:"city"`
	Region string  `json:"region"`
	Score  float64 `json:"score"`
}

// Location renders "City, Region".
func (e Entry) Location() string {
	switch {
	case e.City == "":
		return e.Region
	case e.Region == "":
		return e.City
	}
	return e.City + ", " + e.Region
}
