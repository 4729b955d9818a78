package domain

import "time"

// FraudCase is a single reported jeonse-fraud incident tied to a region.
type FraudCase struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	City         string    `json:"city" bson:"city"`
	District     string    `json:"district" bson:"district"`
	Neighborhood string    `json:"neighborhood" bson:"neighborhood"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
	CaseDate     time.Time `json:"case_date" bson:"case_date"`
}

// FraudStat is an aggregated yearly fraud count for a district.
type FraudStat struct {
	Year     int    `json:"year" bson:"year"`
	City     string `json:"city" bson:"city"`
	District string `json:"district" bson:"district"`
	Count    int    `json:"count" bson:"count"`
}
