package models

// MagistrateReport holds the structure for the magistratereports collection
// in mongo. MagisterialCourt is the court the deposits were taken at;
// ClerkCourt is the submitting clerk's circuit court and is what reviewer
// queues scope on.
type MagistrateReport struct {
	ReportMeta `bson:",inline"`

	Term             string    `json:"term" bson:"term"`
	Year             string    `json:"year" bson:"year"`
	MagistrateName   string    `json:"magistrateName" bson:"magistrateName"`
	MagisterialCourt string    `json:"magisterialCourt" bson:"magisterialCourt"`
	ClerkCourt       string    `json:"clerkCourt" bson:"clerkCourt"`
	Deposits         []Deposit `json:"deposits" bson:"deposits"`
}

// Deposit is one deposit line on a magistrate report
type Deposit struct {
	PayeeName       string  `json:"payeeName" bson:"payeeName"`
	AmountDeposited float64 `json:"amountDeposited" bson:"amountDeposited"`
	BankName        string  `json:"bankName" bson:"bankName"`
	BankSlipNo      string  `json:"bankSlipNo" bson:"bankSlipNo"`
	CbaNo           string  `json:"cbaNo" bson:"cbaNo"`
	Currency        string  `json:"currency" bson:"currency"` // USD or LRD
	Court           string  `json:"court" bson:"court"`
}

// Court returns the scoping court for reviewer queues
func (m *MagistrateReport) Court() string { return m.ClerkCourt }

// SetCourt stamps the authoring clerk's home court
func (m *MagistrateReport) SetCourt(court string) { m.ClerkCourt = court }

// Normalize derives the magisterial court from the first deposit when the
// clerk did not name one, matching how these reports have always been filed.
func (m *MagistrateReport) Normalize() {
	if m.MagisterialCourt == "" {
		if len(m.Deposits) > 0 && m.Deposits[0].Court != "" {
			m.MagisterialCourt = m.Deposits[0].Court
		} else {
			m.MagisterialCourt = "Unknown"
		}
	}
}
