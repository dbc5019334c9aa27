package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CivilDocket holds the structure for the civildockets collection in mongo
type CivilDocket struct {
	ReportMeta `bson:",inline"`

	Term      string      `json:"term" bson:"term"`
	Year      string      `json:"year" bson:"year"`
	JudgeName string      `json:"judgeName" bson:"judgeName"`
	ClerkName string      `json:"clerkName" bson:"clerkName"`
	CourtName string      `json:"court" bson:"court"`
	Cases     []CivilCase `json:"cases" bson:"cases"`
}

// CivilCase is a single case entry on a civil docket
type CivilCase struct {
	Plaintiff       string             `json:"plaintiff" bson:"plaintiff"`
	Defendant       string             `json:"defendant" bson:"defendant"`
	Action          string             `json:"action" bson:"action"`
	DateFiled       primitive.DateTime `json:"dateFiled" bson:"dateFiled"`
	CaseNumber      string             `json:"caseNumber,omitempty" bson:"caseNumber,omitempty"`
	AmountDeposited float64            `json:"amountDeposited" bson:"amountDeposited"`
}

// Court returns the scoping court for reviewer queues
func (d *CivilDocket) Court() string { return d.CourtName }

// SetCourt stamps the authoring clerk's home court
func (d *CivilDocket) SetCourt(court string) { d.CourtName = court }

// Normalize has nothing to fix up for civil dockets
func (d *CivilDocket) Normalize() {}
