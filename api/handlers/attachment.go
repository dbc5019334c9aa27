package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/liberia-ecms/court-records-api/api"
	"github.com/liberia-ecms/court-records-api/config"
	"github.com/liberia-ecms/court-records-api/models"
	"github.com/liberia-ecms/court-records-api/storage"
)

// maxUploadBytes caps attachment uploads at 10MB
const maxUploadBytes = 10 << 20

// UploadHandler stores an attachment blob and links it to the report
func (h *Report[T, P]) UploadHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		config.ErrorStatus("no file uploaded", http.StatusBadRequest, w, err)
		return
	}
	defer file.Close()

	reportID := r.FormValue("reportId")
	if reportID == "" {
		reportID = r.FormValue("docketId")
	}
	if reportID == "" {
		config.ErrorStatus("reportId is required", http.StatusBadRequest, w, nil)
		return
	}
	id, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := h.DB.FindOne(ctx, bson.M{"_id": id}); err != nil {
		config.ErrorStatus("failed to get report by ID", http.StatusNotFound, w, err)
		return
	}

	stored, err := h.Store.Store(ctx, h.Kind.UploadFolder, file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		config.ErrorStatus("failed to store file", http.StatusInternalServerError, w, err)
		return
	}

	att := models.Attachment{
		Filename:     header.Filename,
		OriginalName: header.Filename,
		MimeType:     header.Header.Get("Content-Type"),
		Size:         stored.Size,
		URL:          stored.URL,
		PublicID:     stored.PublicID,
		UploadedAt:   primitive.NewDateTimeFromTime(time.Now().UTC()),
	}

	update := bson.M{
		"$push": bson.M{"attachments": att},
		"$set":  bson.M{"updatedAt": primitive.NewDateTimeFromTime(time.Now().UTC())},
	}
	if err := h.DB.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		// the blob is orphaned otherwise
		if delErr := h.Store.Delete(ctx, stored.URL, stored.PublicID); delErr != nil {
			zap.S().Warnw("failed to clean up orphaned blob", "url", stored.URL, "error", delErr)
		}
		config.ErrorStatus("failed to attach file to report", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(map[string]interface{}{"file": att})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

type deleteFileRequest struct {
	URL      string `json:"url"`
	ReportID string `json:"reportId"`
	DocketID string `json:"docketId"`
}

// DeleteFileHandler detaches an attachment and deletes its blob. Metadata is
// authoritative: a failed blob delete after a successful detach is reported
// as a partial failure, not rolled back.
func (h *Report[T, P]) DeleteFileHandler(w http.ResponseWriter, r *http.Request) {
	var req deleteFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.ReportID == "" {
		req.ReportID = req.DocketID
	}
	if req.URL == "" || req.ReportID == "" {
		config.ErrorStatus("url and reportId are required", http.StatusBadRequest, w, nil)
		return
	}
	id, err := primitive.ObjectIDFromHex(req.ReportID)
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
	var att *models.Attachment
	for i := range doc.Meta().Attachments {
		if doc.Meta().Attachments[i].URL == req.URL {
			att = &doc.Meta().Attachments[i]
			break
		}
	}
	if att == nil {
		// already detached, deleting again is a no-op
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success": true}`))
		return
	}

	blobErr := h.Store.Delete(ctx, att.URL, att.PublicID)
	if errors.Is(blobErr, storage.ErrNotFound) {
		blobErr = nil
	}

	update := bson.M{
		"$pull": bson.M{"attachments": bson.M{"url": req.URL}},
		"$set":  bson.M{"updatedAt": primitive.NewDateTimeFromTime(time.Now().UTC())},
	}
	metaErr := h.DB.UpdateOne(ctx, bson.M{"_id": id}, update)
	if metaErr != nil {
		config.ErrorStatus("failed to detach file from report", http.StatusInternalServerError, w, metaErr)
		return
	}

	if blobErr != nil {
		zap.S().Warnw("attachment detached but blob delete failed", "url", req.URL, "error", blobErr)
		w.WriteHeader(http.StatusBadGateway)
		b, _ := json.Marshal(models.ErrorResponse{
			Success: false,
			Error:   "attachment removed from report but the stored file could not be deleted",
			Code:    "PARTIAL_FAILURE",
		})
		w.Write(b)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"success": true}`))
}
