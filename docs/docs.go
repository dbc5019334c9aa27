// Package docs Court Records API.
//
// Documentation of the Liberia court records management API.
//
//	Schemes: https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer
//
//	SecurityDefinitions:
//	bearer:
//	  type: apiKey
//	  name: Authorization
//	  in: header
//
// swagger:meta
package docs

import (
	"github.com/liberia-ecms/court-records-api/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route POST /api/v1/civil-dockets civilDockets createCivilDocketID
// Creates a civil docket owned by the calling circuit clerk.
// responses:
//   201: civilDocketResponse

// A single civil docket.
// swagger:response civilDocketResponse
type civilDocketResponseWrapper struct {
	// in:body
	Body models.CivilDocket
}

// swagger:route GET /api/v1/civil-dockets/admin/all civilDockets adminCivilDocketQueueID
// Lists civil dockets submitted to the court admin for the given court.
// responses:
//   200: civilDocketListResponse

// A list of civil dockets.
// swagger:response civilDocketListResponse
type civilDocketListResponseWrapper struct {
	// in:body
	Body []models.CivilDocket
}

// Generic error response for failed requests.
// swagger:response errorMessageResponse
type errorMessageResponseWrapper struct {
	// in:body
	Body models.ErrorMessageResponse
}
