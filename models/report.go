package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/liberia-ecms/court-records-api/workflow"
)

// Attachment is one uploaded file linked to a report. URL is unique within a
// report's attachment list and serves as the delete key.
type Attachment struct {
	Filename     string             `json:"filename" bson:"filename"`
	OriginalName string             `json:"originalname" bson:"originalname"`
	MimeType     string             `json:"mimetype" bson:"mimetype"`
	Size         int64              `json:"size" bson:"size"`
	URL          string             `json:"url" bson:"url"`
	PublicID     string             `json:"publicId,omitempty" bson:"publicId,omitempty"`
	UploadedAt   primitive.DateTime `json:"uploadedAt" bson:"uploadedAt"`
}

// ReportMeta is the envelope every report kind embeds: identity, ownership,
// workflow flags, attachments and timestamps. SubmittedBy and CreatedAt are
// immutable after creation.
type ReportMeta struct {
	ID               primitive.ObjectID `json:"_id" bson:"_id"`
	SubmittedBy      primitive.ObjectID `json:"submittedBy" bson:"submittedBy"`
	Finalized        bool               `json:"finalized" bson:"finalized"`
	SubmittedToAdmin bool               `json:"submittedToAdmin" bson:"submittedToAdmin"`
	SubmittedToChief bool               `json:"submittedToChief" bson:"submittedToChief"`
	AdminViewed      bool               `json:"adminViewed" bson:"adminViewed"`
	ChiefViewed      bool               `json:"chiefViewed" bson:"chiefViewed"`
	Rejected         bool               `json:"rejected" bson:"rejected"`
	RejectionReason  string             `json:"rejectionReason" bson:"rejectionReason"`
	RemovedByClerk   bool               `json:"removedByClerk" bson:"removedByClerk"`
	Attachments      []Attachment       `json:"attachments" bson:"attachments"`
	CreatedAt        primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt        primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

// Meta returns the envelope; promoted through embedding so every report kind
// satisfies Document without writing it out.
func (m *ReportMeta) Meta() *ReportMeta { return m }

// WorkflowFlags converts the stored flags into the workflow engine's view.
func (m *ReportMeta) WorkflowFlags() workflow.Flags {
	return workflow.Flags{
		Finalized:        m.Finalized,
		SubmittedToAdmin: m.SubmittedToAdmin,
		SubmittedToChief: m.SubmittedToChief,
		AdminViewed:      m.AdminViewed,
		ChiefViewed:      m.ChiefViewed,
		Rejected:         m.Rejected,
		RejectionReason:  m.RejectionReason,
		RemovedByClerk:   m.RemovedByClerk,
	}
}

// Document is implemented by every report kind. The shared route handler
// only ever touches a report through this interface; everything else about
// the payload stays opaque to the workflow.
type Document interface {
	Meta() *ReportMeta
	// Court returns the value of the kind's scoping field, the court name
	// reviewer queues filter on.
	Court() string
	// SetCourt stamps the scoping field from the authoring clerk's home court.
	SetCourt(court string)
	// Normalize applies kind-specific fixups at creation time. Most kinds
	// have none.
	Normalize()
}
