package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CriminalDocket holds the structure for the criminaldockets collection in mongo
type CriminalDocket struct {
	ReportMeta `bson:",inline"`

	Term      string         `json:"term" bson:"term"`
	Year      string         `json:"year" bson:"year"`
	JudgeName string         `json:"judgeName" bson:"judgeName"`
	ClerkName string         `json:"clerkName" bson:"clerkName"`
	CourtName string         `json:"court" bson:"court"`
	Cases     []CriminalCase `json:"cases" bson:"cases"`
}

// CriminalCase is a single case entry on a criminal docket
type CriminalCase struct {
	Plaintiff       string             `json:"plaintiff" bson:"plaintiff"`
	Defendant       string             `json:"defendant" bson:"defendant"`
	Crime           string             `json:"crime" bson:"crime"`
	DateFiled       primitive.DateTime `json:"dateFiled" bson:"dateFiled"`
	CaseNumber      string             `json:"caseNumber,omitempty" bson:"caseNumber,omitempty"`
	AmountDeposited float64            `json:"amountDeposited" bson:"amountDeposited"`
}

// Court returns the scoping court for reviewer queues
func (d *CriminalDocket) Court() string { return d.CourtName }

// SetCourt stamps the authoring clerk's home court
func (d *CriminalDocket) SetCourt(court string) { d.CourtName = court }

// Normalize has nothing to fix up for criminal dockets
func (d *CriminalDocket) Normalize() {}
