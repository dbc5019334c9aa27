package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/liberia-ecms/court-records-api/api"
	"github.com/liberia-ecms/court-records-api/config"
	"github.com/liberia-ecms/court-records-api/databases"
	"github.com/liberia-ecms/court-records-api/models"
)

// Court serves the court registry endpoints
type Court struct {
	DB databases.CourtDatabase
}

// ListHandler returns all registered courts, sorted by name
func (h Court) ListHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	opts := options.Find().SetSort(bson.M{"name": 1})
	courts, err := h.DB.Find(ctx, bson.M{}, opts)
	if err != nil {
		config.ErrorStatus("failed to get courts", http.StatusInternalServerError, w, err)
		return
	}
	if len(courts) == 0 {
		courts = []models.Court{}
	}

	b, err := json.Marshal(courts)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateHandler registers a new court
func (h Court) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var court models.Court
	if err := json.NewDecoder(r.Body).Decode(&court); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	court.Name = strings.TrimSpace(court.Name)
	if court.Name == "" {
		config.ErrorStatus("court name is required", http.StatusBadRequest, w, nil)
		return
	}
	court.ID = primitive.NewObjectID()

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := h.DB.InsertOne(ctx, court); err != nil {
		config.ErrorStatus("failed to insert court", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(court)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// DeleteHandler removes a court from the registry
func (h Court) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := h.DB.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		config.ErrorStatus("failed to delete court", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "court deleted"}`))
}
