package models

// ReturnsAssignment holds the structure for the returnsassignments
// collection in mongo. This is the one kind that enforces finalization
// before submission and hides clerk-removed reports from the clerk's list.
type ReturnsAssignment struct {
	ReportMeta `bson:",inline"`

	Term         string        `json:"term" bson:"term"`
	Year         string        `json:"year" bson:"year"`
	JudgeName    string        `json:"judgeName" bson:"judgeName"`
	CircuitCourt string        `json:"circuitCourt" bson:"circuitCourt"`
	Cases        []ReturnsCase `json:"cases" bson:"cases"`
}

// ReturnsCase is one disposed case on a returns assignment
type ReturnsCase struct {
	CaseType      string `json:"caseType" bson:"caseType"` // Criminal or Civil
	CaseTitle     string `json:"caseTitle" bson:"caseTitle"`
	CrimeOrAction string `json:"crimeOrAction" bson:"crimeOrAction"`
	Disposition   string `json:"disposition,omitempty" bson:"disposition,omitempty"`
	JuryInfo      string `json:"juryInfo,omitempty" bson:"juryInfo,omitempty"`
	CostFineAmt   string `json:"costFineAmount,omitempty" bson:"costFineAmount,omitempty"`
	Remarks       string `json:"remarks,omitempty" bson:"remarks,omitempty"`
}

// Court returns the scoping court for reviewer queues
func (r *ReturnsAssignment) Court() string { return r.CircuitCourt }

// SetCourt stamps the authoring clerk's home court
func (r *ReturnsAssignment) SetCourt(court string) { r.CircuitCourt = court }

// Normalize has nothing to fix up for returns assignments
func (r *ReturnsAssignment) Normalize() {}
