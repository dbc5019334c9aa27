package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// JuryReport holds the structure for the juryreports collection in mongo
type JuryReport struct {
	ReportMeta `bson:",inline"`

	Term       string     `json:"term" bson:"term"`
	Year       string     `json:"year" bson:"year"`
	JudgeName  string     `json:"judgeName" bson:"judgeName"`
	JuryType   string     `json:"juryType" bson:"juryType"` // Grand Jury or Petit Jury
	ClerkCourt string     `json:"clerkCourt" bson:"clerkCourt"`
	Cases      []JuryCase `json:"cases" bson:"cases"`
}

// JuryCase is one case a jury sat on, with its juror payroll
type JuryCase struct {
	CaseCaption string             `json:"caseCaption" bson:"caseCaption"`
	StartDate   primitive.DateTime `json:"startDate" bson:"startDate"`
	EndDate     primitive.DateTime `json:"endDate" bson:"endDate"`
	Jurors      []Juror            `json:"jurors" bson:"jurors"`
}

// Juror is a single juror payroll line
type Juror struct {
	JurorName    string  `json:"jurorName" bson:"jurorName"`
	ContactNo    string  `json:"contactNo" bson:"contactNo"`
	DaysAttended int     `json:"daysAttended" bson:"daysAttended"`
	AmountPerDay float64 `json:"amountPerDay" bson:"amountPerDay"`
	JurorID      string  `json:"jurorId" bson:"jurorId"`
	JurorType    string  `json:"jurorType" bson:"jurorType"` // Regular or Alternative
}

// Court returns the scoping court for reviewer queues
func (j *JuryReport) Court() string { return j.ClerkCourt }

// SetCourt stamps the authoring clerk's home court
func (j *JuryReport) SetCourt(court string) { j.ClerkCourt = court }

// Normalize has nothing to fix up for jury reports
func (j *JuryReport) Normalize() {}
