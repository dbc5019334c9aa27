package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CourtFee holds the structure for the courtfees collection in mongo.
// CourtName is the court the fees were collected at; ClerkCourt scopes
// reviewer queues.
type CourtFee struct {
	ReportMeta `bson:",inline"`

	Term       string     `json:"term" bson:"term"`
	Year       string     `json:"year" bson:"year"`
	JudgeName  string     `json:"judgeName" bson:"judgeName"`
	CourtName  string     `json:"court" bson:"court"`
	ClerkCourt string     `json:"clerkCourt" bson:"clerkCourt"`
	Entries    []FeeEntry `json:"entries" bson:"entries"`
}

// FeeEntry is one fee line on a court fee report
type FeeEntry struct {
	PayeeName     string             `json:"payeeName" bson:"payeeName"`
	Amount        float64            `json:"amount" bson:"amount"`
	BankName      string             `json:"bankName" bson:"bankName"`
	ReceiptNumber string             `json:"receiptNumber" bson:"receiptNumber"`
	Type          string             `json:"type" bson:"type"` // Fine, Fee or Cost
	Date          primitive.DateTime `json:"date" bson:"date"`
}

// Court returns the scoping court for reviewer queues
func (c *CourtFee) Court() string { return c.ClerkCourt }

// SetCourt stamps the authoring clerk's home court
func (c *CourtFee) SetCourt(court string) { c.ClerkCourt = court }

// Normalize has nothing to fix up for court fee reports
func (c *CourtFee) Normalize() {}
