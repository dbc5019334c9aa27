package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/liberia-ecms/court-records-api/workflow"
)

func TestStateDerivation(t *testing.T) {
	tests := []struct {
		name  string
		flags workflow.Flags
		want  workflow.State
	}{
		{"fresh report", workflow.Flags{}, workflow.Draft},
		{"submitted to admin", workflow.Flags{SubmittedToAdmin: true}, workflow.PendingAdminReview},
		{"admin opened it", workflow.Flags{SubmittedToAdmin: true, AdminViewed: true}, workflow.AdminViewed},
		{"submitted to chief", workflow.Flags{SubmittedToChief: true}, workflow.PendingChiefReview},
		{"chief opened it", workflow.Flags{SubmittedToChief: true, ChiefViewed: true}, workflow.ChiefViewed},
		{"chief tier wins over admin tier", workflow.Flags{SubmittedToAdmin: true, SubmittedToChief: true}, workflow.PendingChiefReview},
		{"rejected dominates submission", workflow.Flags{SubmittedToAdmin: true, Rejected: true}, workflow.Rejected},
		{"removed dominates everything", workflow.Flags{SubmittedToChief: true, Rejected: true, RemovedByClerk: true}, workflow.Removed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.flags.State())
		})
	}
}

func TestSubmitRoutesToOneTier(t *testing.T) {
	patch, err := workflow.Submit(workflow.Flags{}, workflow.ReviewerAdmin, false)
	assert.NoError(t, err)
	assert.Equal(t, workflow.Patch{"submittedToAdmin": true}, patch)

	patch, err = workflow.Submit(workflow.Flags{}, workflow.ReviewerChief, false)
	assert.NoError(t, err)
	assert.Equal(t, workflow.Patch{"submittedToChief": true}, patch)
}

func TestSubmitToChiefKeepsAdminSubmission(t *testing.T) {
	flags := workflow.Flags{SubmittedToAdmin: true}

	patch, err := workflow.Submit(flags, workflow.ReviewerChief, false)
	assert.NoError(t, err)

	flags = flags.Apply(patch)
	assert.True(t, flags.SubmittedToAdmin)
	assert.True(t, flags.SubmittedToChief)
}

func TestSubmitRejectsUnknownRecipient(t *testing.T) {
	_, err := workflow.Submit(workflow.Flags{}, "supreme court", false)
	assert.ErrorIs(t, err, workflow.ErrInvalidRecipient)
}

func TestSubmitEnforcesFinalization(t *testing.T) {
	_, err := workflow.Submit(workflow.Flags{}, workflow.ReviewerAdmin, true)
	assert.ErrorIs(t, err, workflow.ErrNotFinalized)

	patch, err := workflow.Submit(workflow.Flags{Finalized: true}, workflow.ReviewerAdmin, true)
	assert.NoError(t, err)
	assert.Equal(t, workflow.Patch{"submittedToAdmin": true}, patch)
}

func TestRejectAsymmetry(t *testing.T) {
	// a report pending at both tiers
	flags := workflow.Flags{SubmittedToAdmin: true, SubmittedToChief: true}

	// admin rejection withdraws the report from both queues
	adminFlags := flags.Apply(workflow.Reject(workflow.ReviewerAdmin, "missing case numbers"))
	assert.False(t, adminFlags.SubmittedToAdmin)
	assert.False(t, adminFlags.SubmittedToChief)
	assert.True(t, adminFlags.Rejected)
	assert.Equal(t, "missing case numbers", adminFlags.RejectionReason)

	// chief rejection only bounces it one step back
	chiefFlags := flags.Apply(workflow.Reject(workflow.ReviewerChief, "wrong term"))
	assert.True(t, chiefFlags.SubmittedToAdmin)
	assert.False(t, chiefFlags.SubmittedToChief)
	assert.True(t, chiefFlags.Rejected)
}

func TestResubmitRequiresRejection(t *testing.T) {
	_, err := workflow.Resubmit(workflow.Flags{})
	assert.ErrorIs(t, err, workflow.ErrNotRejected)
}

func TestResubmitClearsRejectionAndFinalization(t *testing.T) {
	flags := workflow.Flags{Finalized: true, Rejected: true, RejectionReason: "incomplete"}

	patch, err := workflow.Resubmit(flags)
	assert.NoError(t, err)

	flags = flags.Apply(patch)
	assert.False(t, flags.Rejected)
	assert.Empty(t, flags.RejectionReason)
	assert.False(t, flags.Finalized)
	assert.Equal(t, workflow.Draft, flags.State())
}

func TestMarkViewed(t *testing.T) {
	flags := workflow.Flags{SubmittedToAdmin: true}
	flags = flags.Apply(workflow.MarkViewed(workflow.ReviewerAdmin))
	assert.Equal(t, workflow.AdminViewed, flags.State())

	flags = workflow.Flags{SubmittedToChief: true}
	flags = flags.Apply(workflow.MarkViewed(workflow.ReviewerChief))
	assert.Equal(t, workflow.ChiefViewed, flags.State())
}

// Replays a full review cycle the way a clerk in Montserrado County would
// drive it: submit, admin rejects, amend, resubmit, approve up the chain.
func TestFullReviewCycle(t *testing.T) {
	flags := workflow.Flags{Finalized: true}

	patch, err := workflow.Submit(flags, workflow.ReviewerAdmin, true)
	assert.NoError(t, err)
	flags = flags.Apply(patch)
	assert.Equal(t, workflow.PendingAdminReview, flags.State())

	flags = flags.Apply(workflow.MarkViewed(workflow.ReviewerAdmin))
	flags = flags.Apply(workflow.Reject(workflow.ReviewerAdmin, "term is wrong"))
	assert.Equal(t, workflow.Rejected, flags.State())

	patch, err = workflow.Resubmit(flags)
	assert.NoError(t, err)
	flags = flags.Apply(patch)
	assert.Equal(t, workflow.Draft, flags.State())

	// clerk must re-finalize before the kind that requires it will submit
	_, err = workflow.Submit(flags, workflow.ReviewerAdmin, true)
	assert.ErrorIs(t, err, workflow.ErrNotFinalized)

	flags.Finalized = true
	patch, err = workflow.Submit(flags, workflow.ReviewerAdmin, true)
	assert.NoError(t, err)
	flags = flags.Apply(patch)

	patch, err = workflow.Submit(flags, workflow.ReviewerChief, true)
	assert.NoError(t, err)
	flags = flags.Apply(patch)
	assert.Equal(t, workflow.PendingChiefReview, flags.State())

	flags = flags.Apply(workflow.MarkViewed(workflow.ReviewerChief))
	assert.Equal(t, workflow.ChiefViewed, flags.State())
}
