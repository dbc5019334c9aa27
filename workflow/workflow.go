// Package workflow implements the lifecycle of a clerk report: draft,
// submission to a reviewer tier, viewing, rejection with a reason, clerk
// resubmission and clerk-side removal. It is shared by every report kind;
// the per-kind route handlers only differ in payload schema and in which
// business rules (finalize enforcement, removed filtering) they switch on.
//
// The stored representation stays the legacy flag set for wire compatibility
// with existing documents and clients. Transitions return Patch values, plain
// field→value maps the persistence layer turns into single-document updates.
package workflow

import "errors"

// Reviewer identifies a tier of the approval chain.
type Reviewer string

// The two reviewer tiers a report can be routed to.
const (
	ReviewerAdmin Reviewer = "admin"
	ReviewerChief Reviewer = "chief"
)

// Transition errors surfaced to callers as InvalidInput.
var (
	ErrInvalidRecipient = errors.New("invalid recipient")
	ErrNotFinalized     = errors.New("report must be finalized before submission")
	ErrNotRejected      = errors.New("report has not been rejected")
)

// Flags is the stored flag set a report's lifecycle state derives from.
type Flags struct {
	Finalized        bool
	SubmittedToAdmin bool
	SubmittedToChief bool
	AdminViewed      bool
	ChiefViewed      bool
	Rejected         bool
	RejectionReason  string
	RemovedByClerk   bool
}

// State is the explicit lifecycle state derived from a flag combination.
type State string

// Derived lifecycle states.
const (
	Draft              State = "draft"
	PendingAdminReview State = "pending_admin_review"
	AdminViewed        State = "admin_viewed"
	PendingChiefReview State = "pending_chief_review"
	ChiefViewed        State = "chief_viewed"
	Rejected           State = "rejected"
	Removed            State = "removed"
)

// State derives the lifecycle state from the flag set. Removal and rejection
// dominate everything else; when a report is pending at both tiers at once
// the chief tier wins, since it is the later stage of the chain.
func (f Flags) State() State {
	switch {
	case f.RemovedByClerk:
		return Removed
	case f.Rejected:
		return Rejected
	case f.SubmittedToChief && f.ChiefViewed:
		return ChiefViewed
	case f.SubmittedToChief:
		return PendingChiefReview
	case f.SubmittedToAdmin && f.AdminViewed:
		return AdminViewed
	case f.SubmittedToAdmin:
		return PendingAdminReview
	default:
		return Draft
	}
}

// Patch is the set of flag fields a transition changes, keyed by the stored
// field name. Callers fold it into a $set-style update.
type Patch map[string]interface{}

// Submit routes a report to a reviewer tier. Submission to admin and to
// chief are independent routes; submitting to one never clears the other.
// requireFinalized carries the per-kind rule that a report must be
// finalized first.
func Submit(f Flags, recipient Reviewer, requireFinalized bool) (Patch, error) {
	switch recipient {
	case ReviewerAdmin, ReviewerChief:
	default:
		return nil, ErrInvalidRecipient
	}
	if requireFinalized && !f.Finalized {
		return nil, ErrNotFinalized
	}
	if recipient == ReviewerAdmin {
		return Patch{"submittedToAdmin": true}, nil
	}
	return Patch{"submittedToChief": true}, nil
}

// MarkViewed records that the reviewer tier has opened the report.
func MarkViewed(reviewer Reviewer) Patch {
	if reviewer == ReviewerAdmin {
		return Patch{"adminViewed": true}
	}
	return Patch{"chiefViewed": true}
}

// Reject records a rejection with a reason. The asymmetry is deliberate and
// must not be "fixed": the admin is the gatekeeper of record, so an admin
// rejection withdraws the report from both tiers, while a chief rejection
// only bounces it back one step and leaves the admin submission untouched.
func Reject(reviewer Reviewer, reason string) Patch {
	p := Patch{
		"rejected":         true,
		"rejectionReason":  reason,
		"submittedToChief": false,
	}
	if reviewer == ReviewerAdmin {
		p["submittedToAdmin"] = false
	}
	return p
}

// Resubmit clears a rejection so the clerk can edit and submit again. The
// finalized flag drops with it; the clerk re-finalizes before resubmitting.
func Resubmit(f Flags) (Patch, error) {
	if !f.Rejected {
		return nil, ErrNotRejected
	}
	return Patch{
		"rejected":        false,
		"rejectionReason": "",
		"finalized":       false,
	}, nil
}

// Remove hides a report from the clerk's own listing. Reviewer queues do not
// consult this flag, so the record stays visible in review history.
func Remove() Patch {
	return Patch{"removedByClerk": true}
}

// Apply folds a patch into a flag set. The handlers let the document store
// apply patches; this exists for callers holding an in-memory copy, and for
// exercising transition sequences without a store.
func (f Flags) Apply(p Patch) Flags {
	for name, value := range p {
		switch name {
		case "finalized":
			f.Finalized = value.(bool)
		case "submittedToAdmin":
			f.SubmittedToAdmin = value.(bool)
		case "submittedToChief":
			f.SubmittedToChief = value.(bool)
		case "adminViewed":
			f.AdminViewed = value.(bool)
		case "chiefViewed":
			f.ChiefViewed = value.(bool)
		case "rejected":
			f.Rejected = value.(bool)
		case "rejectionReason":
			f.RejectionReason = value.(string)
		case "removedByClerk":
			f.RemovedByClerk = value.(bool)
		}
	}
	return f
}
