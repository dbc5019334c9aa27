package models

// Kind describes how one report collection plugs into the shared workflow
// handler: where it lives, which field scopes reviewer queues, and the
// business rules that differ between kinds.
type Kind struct {
	Name       string // human label used in logs, events and notifications
	Prefix     string // route prefix under /api/v1
	Collection string
	CourtField string // bson field matched by the admin/chief queue queries
	// RequireFinalized makes submission fail until the clerk has finalized
	// the report. Only returns assignments enforce this.
	RequireFinalized bool
	// HideRemoved excludes removedByClerk reports from the clerk's own
	// listing. Only returns assignments do; reviewer queues never filter
	// on the flag.
	HideRemoved  bool
	UploadFolder string
}

// The six report kinds.
var (
	CivilDocketKind = Kind{
		Name:         "civil docket",
		Prefix:       "/civil-dockets",
		Collection:   "civildockets",
		CourtField:   "court",
		UploadFolder: "civil-dockets",
	}
	CriminalDocketKind = Kind{
		Name:         "criminal docket",
		Prefix:       "/criminal-dockets",
		Collection:   "criminaldockets",
		CourtField:   "court",
		UploadFolder: "criminal-dockets",
	}
	MagistrateReportKind = Kind{
		Name:         "magistrate report",
		Prefix:       "/magistrate-reports",
		Collection:   "magistratereports",
		CourtField:   "clerkCourt",
		UploadFolder: "magistrate-reports",
	}
	JuryReportKind = Kind{
		Name:         "jury report",
		Prefix:       "/jury-reports",
		Collection:   "juryreports",
		CourtField:   "clerkCourt",
		UploadFolder: "jury-reports",
	}
	CourtFeeKind = Kind{
		Name:         "court fee report",
		Prefix:       "/court-fees",
		Collection:   "courtfees",
		CourtField:   "clerkCourt",
		UploadFolder: "fee-reports",
	}
	ReturnsAssignmentKind = Kind{
		Name:             "returns assignment",
		Prefix:           "/returns-assignments",
		Collection:       "returnsassignments",
		CourtField:       "circuitCourt",
		RequireFinalized: true,
		HideRemoved:      true,
		UploadFolder:     "returns-assignments",
	}
)

// Kinds lists every report kind; the scheduler and storage bootstrap iterate
// over it.
var Kinds = []Kind{
	CivilDocketKind,
	CriminalDocketKind,
	MagistrateReportKind,
	JuryReportKind,
	CourtFeeKind,
	ReturnsAssignmentKind,
}
