package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/liberia-ecms/court-records-api/models"
)

func TestMagistrateReportNormalizeDerivesCourtFromDeposits(t *testing.T) {
	r := &models.MagistrateReport{
		Deposits: []models.Deposit{
			{PayeeName: "J. Kollie", Court: "Brewerville Magisterial Court", Currency: "LRD"},
			{PayeeName: "A. Sirleaf", Court: "Careysburg Magisterial Court", Currency: "USD"},
		},
	}
	r.Normalize()
	assert.Equal(t, "Brewerville Magisterial Court", r.MagisterialCourt)
}

func TestMagistrateReportNormalizeFallsBackToUnknown(t *testing.T) {
	r := &models.MagistrateReport{}
	r.Normalize()
	assert.Equal(t, "Unknown", r.MagisterialCourt)

	r = &models.MagistrateReport{Deposits: []models.Deposit{{Court: ""}}}
	r.Normalize()
	assert.Equal(t, "Unknown", r.MagisterialCourt)
}

func TestMagistrateReportNormalizeKeepsExplicitCourt(t *testing.T) {
	r := &models.MagistrateReport{
		MagisterialCourt: "New Kru Town Magisterial Court",
		Deposits:         []models.Deposit{{Court: "Brewerville Magisterial Court"}},
	}
	r.Normalize()
	assert.Equal(t, "New Kru Town Magisterial Court", r.MagisterialCourt)
}

func TestKindCourtFields(t *testing.T) {
	// each kind scopes reviewer queues on its own field
	civil := &models.CivilDocket{CourtName: "First Judicial Circuit"}
	assert.Equal(t, "First Judicial Circuit", civil.Court())

	jury := &models.JuryReport{}
	jury.SetCourt("Second Judicial Circuit")
	assert.Equal(t, "Second Judicial Circuit", jury.Court())

	ra := &models.ReturnsAssignment{}
	ra.SetCourt("Third Judicial Circuit")
	assert.Equal(t, "Third Judicial Circuit", ra.CircuitCourt)
}

func TestOnlyReturnsAssignmentsEnforceFinalization(t *testing.T) {
	for _, kind := range models.Kinds {
		if kind.Collection == "returnsassignments" {
			assert.True(t, kind.RequireFinalized)
			assert.True(t, kind.HideRemoved)
			continue
		}
		assert.False(t, kind.RequireFinalized, kind.Name)
		assert.False(t, kind.HideRemoved, kind.Name)
	}
}
