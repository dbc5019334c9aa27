package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/liberia-ecms/court-records-api/api"
	"github.com/liberia-ecms/court-records-api/config"
	"github.com/liberia-ecms/court-records-api/databases"
	"github.com/liberia-ecms/court-records-api/models"
	"github.com/liberia-ecms/court-records-api/storage"
	"github.com/liberia-ecms/court-records-api/workflow"
)

// reservedFields may never be set through the edit endpoint. Workflow flags
// only move through their dedicated endpoints; finalized stays editable.
var reservedFields = []string{
	"_id", "submittedBy", "createdAt", "updatedAt", "attachments",
	"submittedToAdmin", "submittedToChief", "adminViewed", "chiefViewed",
	"rejected", "rejectionReason", "removedByClerk",
}

// Report serves every endpoint of one report kind. T is the concrete model,
// P constrains *T to the document interface so the handler can reach the
// shared workflow fields.
type Report[T any, P interface {
	*T
	models.Document
}] struct {
	Kind   models.Kind
	DB     databases.ReportDatabase[T]
	UDB    databases.UserDatabase
	Store  storage.BlobStore
	Events *EventHub
	Mailer *Mailer
}

// NewReport wires a report handler for one kind
func NewReport[T any, P interface {
	*T
	models.Document
}](kind models.Kind, db databases.DatabaseHelper, udb databases.UserDatabase, store storage.BlobStore, events *EventHub, mailer *Mailer) *Report[T, P] {
	return &Report[T, P]{
		Kind:   kind,
		DB:     databases.NewReportDatabase[T](db, kind.Collection),
		UDB:    udb,
		Store:  store,
		Events: events,
		Mailer: mailer,
	}
}

// Register mounts all routes for this kind under r. Literal paths are
// registered before the /{id} catch-alls.
func (h *Report[T, P]) Register(r *mux.Router) {
	clerk := func(f http.HandlerFunc) http.Handler {
		return api.Middleware(api.RequireRole(f, models.RoleCircuitClerk))
	}
	admin := func(f http.HandlerFunc) http.Handler {
		return api.Middleware(api.RequireRole(f, models.RoleCourtAdmin))
	}
	chief := func(f http.HandlerFunc) http.Handler {
		return api.Middleware(api.RequireRole(f, models.RoleChiefJustice))
	}
	authed := func(f http.HandlerFunc) http.Handler {
		return api.Middleware(f)
	}

	sub := r.PathPrefix(h.Kind.Prefix).Subrouter()
	sub.Handle("", clerk(h.CreateHandler)).Methods("POST")
	sub.Handle("/my", clerk(h.ListOwnHandler)).Methods("GET")
	sub.Handle("/admin/all", admin(h.ListForAdminHandler)).Methods("GET")
	sub.Handle("/chief/all", chief(h.ListForChiefHandler)).Methods("GET")
	sub.Handle("/admin/clear-all", admin(h.ClearAllHandler)).Methods("DELETE")
	sub.Handle("/admin/reject/{id}", admin(h.AdminRejectHandler)).Methods("PATCH")
	sub.Handle("/chief/reject/{id}", chief(h.ChiefRejectHandler)).Methods("PATCH")
	sub.Handle("/view/{id}", admin(h.AdminViewHandler)).Methods("PATCH")
	sub.Handle("/chief/view/{id}", chief(h.ChiefViewHandler)).Methods("PATCH")
	sub.Handle("/submit/{id}", clerk(h.SubmitHandler)).Methods("PATCH")
	sub.Handle("/resubmit/{id}", clerk(h.ResubmitHandler)).Methods("PATCH")
	sub.Handle("/remove/{id}", clerk(h.RemoveHandler)).Methods("PATCH")
	sub.Handle("/upload", clerk(h.UploadHandler)).Methods("POST")
	sub.Handle("/delete-file", clerk(h.DeleteFileHandler)).Methods("DELETE")
	sub.Handle("/{id}", authed(h.ByIDHandler)).Methods("GET")
	sub.Handle("/{id}", clerk(h.EditHandler)).Methods("PUT")
}

// CreateHandler creates a new report owned by the calling clerk
func (h *Report[T, P]) CreateHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := api.UserFromContext(r.Context())

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	uid, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}
	user, err := h.UDB.FindOne(ctx, bson.M{"_id": uid})
	if err != nil {
		config.ErrorStatus("user not found", http.StatusNotFound, w, err)
		return
	}
	if user.Role != models.RoleCircuitClerk {
		config.ErrorStatus("only circuit clerks can create reports", http.StatusForbidden, w, nil)
		return
	}

	var payload T
	doc := P(&payload)
	if err := json.NewDecoder(r.Body).Decode(doc); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now().UTC())
	meta := doc.Meta()
	finalized := meta.Finalized
	*meta = models.ReportMeta{
		ID:          primitive.NewObjectID(),
		SubmittedBy: uid,
		Finalized:   finalized,
		Attachments: []models.Attachment{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	doc.SetCourt(user.CircuitCourt)
	doc.Normalize()

	if _, err := h.DB.InsertOne(ctx, doc); err != nil {
		config.ErrorStatus("failed to insert report", http.StatusInternalServerError, w, err)
		return
	}

	h.Events.Publish(Event{
		Kind:     h.Kind.Name,
		ReportID: meta.ID.Hex(),
		Action:   "created",
		Court:    doc.Court(),
		At:       time.Now().UTC(),
	})

	b, err := json.Marshal(doc)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// ByIDHandler returns a single report by ID
func (h *Report[T, P]) ByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := h.DB.FindOne(ctx, bson.M{"_id": id})
	if err != nil {
		config.ErrorStatus("failed to get report by ID", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// EditHandler updates the report's payload fields. Workflow flags and
// attachments cannot be touched here.
func (h *Report[T, P]) EditHandler(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var updates map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	// a body of `null` decodes into a nil map
	if updates == nil {
		updates = map[string]interface{}{}
	}
	for _, field := range reservedFields {
		delete(updates, field)
	}
	updates["updatedAt"] = primitive.NewDateTimeFromTime(time.Now().UTC())

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := h.DB.FindOne(ctx, bson.M{"_id": id}); err != nil {
		config.ErrorStatus("failed to get report by ID", http.StatusNotFound, w, err)
		return
	}
	if err := h.DB.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates}); err != nil {
		config.ErrorStatus("failed to update report", http.StatusInternalServerError, w, err)
		return
	}

	dbResp, err := h.DB.FindOne(ctx, bson.M{"_id": id})
	if err != nil {
		config.ErrorStatus("failed to get report by ID", http.StatusNotFound, w, err)
		return
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ListOwnHandler returns the calling clerk's reports, newest first
func (h *Report[T, P]) ListOwnHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := api.UserFromContext(r.Context())

	uid, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	filter := bson.M{"submittedBy": uid}
	if h.Kind.HideRemoved {
		filter["removedByClerk"] = false
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	dbResp, err := h.DB.Find(ctx, filter, opts)
	if err != nil {
		config.ErrorStatus("failed to get reports", http.StatusInternalServerError, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []T{}
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ListForAdminHandler returns the admin review queue for a court
func (h *Report[T, P]) ListForAdminHandler(w http.ResponseWriter, r *http.Request) {
	h.listForReview(w, r, "submittedToAdmin")
}

// ListForChiefHandler returns the chief justice review queue for a court
func (h *Report[T, P]) ListForChiefHandler(w http.ResponseWriter, r *http.Request) {
	h.listForReview(w, r, "submittedToChief")
}

func (h *Report[T, P]) listForReview(w http.ResponseWriter, r *http.Request, tierField string) {
	court := strings.TrimSpace(r.URL.Query().Get("court"))
	if court == "" {
		config.ErrorStatus("court query parameter is required", http.StatusBadRequest, w, nil)
		return
	}

	filter := bson.M{
		tierField: true,
		h.Kind.CourtField: primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(court) + "$",
			Options: "i",
		},
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	dbResp, err := h.DB.Find(ctx, filter, opts)
	if err != nil {
		config.ErrorStatus("failed to get reports", http.StatusInternalServerError, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []T{}
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// SubmitHandler forwards a report into a reviewer's queue
func (h *Report[T, P]) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var body struct {
		Recipient workflow.Reviewer `json:"recipient"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := h.DB.FindOne(ctx, bson.M{"_id": id})
	if err != nil {
		config.ErrorStatus("failed to get report by ID", http.StatusNotFound, w, err)
		return
	}

	doc := P(dbResp)
	patch, err := workflow.Submit(doc.Meta().WorkflowFlags(), body.Recipient, h.Kind.RequireFinalized)
	if err != nil {
		config.ErrorStatus("cannot submit report", http.StatusBadRequest, w, err)
		return
	}

	h.patchAndReturn(ctx, w, id, patch, "submitted:"+string(body.Recipient), doc.Court())
}

// ResubmitHandler clears the rejection so the clerk can amend and submit again
func (h *Report[T, P]) ResubmitHandler(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := h.DB.FindOne(ctx, bson.M{"_id": id})
	if err != nil {
		config.ErrorStatus("failed to get report by ID", http.StatusNotFound, w, err)
		return
	}

	doc := P(dbResp)
	patch, err := workflow.Resubmit(doc.Meta().WorkflowFlags())
	if err != nil {
		config.ErrorStatus("cannot resubmit report", http.StatusBadRequest, w, err)
		return
	}

	h.patchAndReturn(ctx, w, id, patch, "resubmitted", doc.Court())
}

// RemoveHandler soft-deletes the clerk's own report
func (h *Report[T, P]) RemoveHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := api.UserFromContext(r.Context())

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := h.DB.FindOne(ctx, bson.M{"_id": id})
	if err != nil {
		config.ErrorStatus("failed to get report by ID", http.StatusNotFound, w, err)
		return
	}

	doc := P(dbResp)
	if doc.Meta().SubmittedBy.Hex() != claims.UserID {
		config.ErrorStatus("report belongs to another clerk", http.StatusForbidden, w, nil)
		return
	}

	h.patchAndReturn(ctx, w, id, workflow.Remove(), "removed", doc.Court())
}

// AdminViewHandler marks the report as seen by the court admin
func (h *Report[T, P]) AdminViewHandler(w http.ResponseWriter, r *http.Request) {
	h.markViewed(w, r, workflow.ReviewerAdmin)
}

// ChiefViewHandler marks the report as seen by the chief justice
func (h *Report[T, P]) ChiefViewHandler(w http.ResponseWriter, r *http.Request) {
	h.markViewed(w, r, workflow.ReviewerChief)
}

func (h *Report[T, P]) markViewed(w http.ResponseWriter, r *http.Request, reviewer workflow.Reviewer) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := h.DB.FindOne(ctx, bson.M{"_id": id})
	if err != nil {
		config.ErrorStatus("failed to get report by ID", http.StatusNotFound, w, err)
		return
	}

	patch := workflow.MarkViewed(reviewer)
	patch["updatedAt"] = primitive.NewDateTimeFromTime(time.Now().UTC())
	if err := h.DB.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": patch}); err != nil {
		config.ErrorStatus("failed to update report", http.StatusInternalServerError, w, err)
		return
	}

	h.Events.Publish(Event{
		Kind:     h.Kind.Name,
		ReportID: id.Hex(),
		Action:   "viewed:" + string(reviewer),
		Court:    P(dbResp).Court(),
		At:       time.Now().UTC(),
	})

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "marked as viewed"}`))
}

// AdminRejectHandler sends the report back to the clerk from the admin queue
func (h *Report[T, P]) AdminRejectHandler(w http.ResponseWriter, r *http.Request) {
	h.reject(w, r, workflow.ReviewerAdmin)
}

// ChiefRejectHandler sends the report back to the clerk from the chief queue
func (h *Report[T, P]) ChiefRejectHandler(w http.ResponseWriter, r *http.Request) {
	h.reject(w, r, workflow.ReviewerChief)
}

func (h *Report[T, P]) reject(w http.ResponseWriter, r *http.Request, reviewer workflow.Reviewer) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := h.DB.FindOne(ctx, bson.M{"_id": id})
	if err != nil {
		config.ErrorStatus("failed to get report by ID", http.StatusNotFound, w, err)
		return
	}
	doc := P(dbResp)
	submitter := doc.Meta().SubmittedBy

	if h.patchAndReturn(ctx, w, id, workflow.Reject(reviewer, body.Reason), "rejected:"+string(reviewer), doc.Court()) {
		go h.notifyRejected(submitter, reviewer, body.Reason)
	}
}

// ClearAllHandler bulk-deletes reports of this kind. Requires confirm=true
// and honors an optional court scope.
func (h *Report[T, P]) ClearAllHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		config.ErrorStatus("confirm=true is required to clear reports", http.StatusBadRequest, w, nil)
		return
	}

	filter := bson.M{}
	if court := strings.TrimSpace(r.URL.Query().Get("court")); court != "" {
		filter[h.Kind.CourtField] = primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(court) + "$",
			Options: "i",
		}
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	deleted, err := h.DB.DeleteMany(ctx, filter)
	if err != nil {
		config.ErrorStatus("failed to clear reports", http.StatusInternalServerError, w, err)
		return
	}

	zap.S().Infow("cleared reports", "kind", h.Kind.Name, "deleted", deleted)

	b, _ := json.Marshal(map[string]interface{}{"message": "reports cleared", "deleted": deleted})
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// patchAndReturn applies a workflow patch and responds with the updated doc.
// Returns false when the update did not go through, so callers can skip
// side effects like notification mail.
func (h *Report[T, P]) patchAndReturn(ctx context.Context, w http.ResponseWriter, id primitive.ObjectID, patch workflow.Patch, action, court string) bool {
	patch["updatedAt"] = primitive.NewDateTimeFromTime(time.Now().UTC())
	if err := h.DB.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": patch}); err != nil {
		config.ErrorStatus("failed to update report", http.StatusInternalServerError, w, err)
		return false
	}

	dbResp, err := h.DB.FindOne(ctx, bson.M{"_id": id})
	if err != nil {
		config.ErrorStatus("failed to get report by ID", http.StatusNotFound, w, err)
		return false
	}

	h.Events.Publish(Event{
		Kind:     h.Kind.Name,
		ReportID: id.Hex(),
		Action:   action,
		Court:    court,
		At:       time.Now().UTC(),
	})

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return false
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
	return true
}

func (h *Report[T, P]) notifyRejected(submitter primitive.ObjectID, reviewer workflow.Reviewer, reason string) {
	if h.Mailer == nil {
		return
	}
	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()

	user, err := h.UDB.FindOne(ctx, bson.M{"_id": submitter})
	if err != nil || user.Email == "" {
		return
	}
	if err := h.Mailer.SendReportRejected(user.Email, user.Username, h.Kind.Name, string(reviewer), reason); err != nil {
		zap.S().Warnw("failed to send rejection email", "error", err)
	}
}
