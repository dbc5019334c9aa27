package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/liberia-ecms/court-records-api/api"
	"github.com/liberia-ecms/court-records-api/config"
	"github.com/liberia-ecms/court-records-api/databases"
	"github.com/liberia-ecms/court-records-api/models"
)

// Auth serves login and user management endpoints
type Auth struct {
	DB     databases.UserDatabase
	Mailer *Mailer
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  struct {
		ID           string `json:"id"`
		Username     string `json:"username"`
		Role         string `json:"role"`
		CircuitCourt string `json:"circuitCourt,omitempty"`
	} `json:"user"`
}

// LoginHandler verifies credentials and returns a signed JWT
func (h Auth) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := h.DB.FindOne(ctx, bson.M{"username": req.Username})
	if err != nil {
		config.ErrorStatus("user not found", http.StatusNotFound, w, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		config.ErrorStatus("invalid password", http.StatusUnauthorized, w, err)
		return
	}

	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtSecret) == 0 {
		config.ErrorStatus("server misconfigured", http.StatusInternalServerError, w, nil)
		return
	}

	claims := api.Claims{
		UserID:       user.ID.Hex(),
		Role:         user.Role,
		CircuitCourt: user.CircuitCourt,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecret)
	if err != nil {
		config.ErrorStatus("token generation failed", http.StatusInternalServerError, w, err)
		return
	}

	var resp loginResponse
	resp.Token = signed
	resp.User.ID = user.ID.Hex()
	resp.User.Username = user.Username
	resp.User.Role = user.Role
	resp.User.CircuitCourt = user.CircuitCourt

	b, err := json.Marshal(resp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

type createUserRequest struct {
	Username     string `json:"username"`
	Role         string `json:"role"`
	CircuitCourt string `json:"circuitCourt"`
	Email        string `json:"email"`
}

// CreateUserHandler creates a user with a generated password
func (h Auth) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		config.ErrorStatus("username is required", http.StatusBadRequest, w, nil)
		return
	}
	if !models.ValidRole(req.Role) {
		config.ErrorStatus("invalid role", http.StatusBadRequest, w, nil)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	_, err := h.DB.FindOne(ctx, bson.M{"username": req.Username})
	if err == nil {
		config.ErrorStatus("username already taken", http.StatusBadRequest, w, nil)
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		config.ErrorStatus("failed to check username", http.StatusInternalServerError, w, err)
		return
	}

	password, err := generatePassword()
	if err != nil {
		config.ErrorStatus("failed to generate password", http.StatusInternalServerError, w, err)
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		config.ErrorStatus("failed to hash password", http.StatusInternalServerError, w, err)
		return
	}

	user := models.User{
		ID:       primitive.NewObjectID(),
		Username: req.Username,
		Password: string(hash),
		Role:     req.Role,
		Email:    req.Email,
	}
	if req.Role == models.RoleCircuitClerk {
		user.CircuitCourt = req.CircuitCourt
	}

	if _, err := h.DB.InsertOne(ctx, user); err != nil {
		config.ErrorStatus("failed to insert user", http.StatusInternalServerError, w, err)
		return
	}

	if user.Email != "" && h.Mailer != nil {
		go func() {
			if err := h.Mailer.SendCredentials(user.Email, user.Username, password); err != nil {
				zap.S().Warnw("failed to send credentials email", "error", err)
			}
		}()
	}

	b, err := json.Marshal(map[string]string{
		"message":  "user created",
		"username": user.Username,
		"password": password,
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// ListUsersHandler returns every user, passwords stripped
func (h Auth) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	users, err := h.DB.Find(ctx, bson.M{})
	if err != nil {
		config.ErrorStatus("failed to get users", http.StatusInternalServerError, w, err)
		return
	}
	for i := range users {
		users[i].Password = ""
	}
	if len(users) == 0 {
		users = []models.User{}
	}

	b, err := json.Marshal(users)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

type updateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateUserHandler changes a user's username or password
func (h Auth) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	updates := bson.M{}
	if username := strings.TrimSpace(req.Username); username != "" {
		updates["username"] = username
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			config.ErrorStatus("failed to hash password", http.StatusInternalServerError, w, err)
			return
		}
		updates["password"] = string(hash)
	}
	if len(updates) == 0 {
		config.ErrorStatus("nothing to update", http.StatusBadRequest, w, nil)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := h.DB.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates}); err != nil {
		config.ErrorStatus("failed to update user", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "user updated"}`))
}

// DeleteUserHandler removes a user account
func (h Auth) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := h.DB.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		config.ErrorStatus("failed to delete user", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "user deleted"}`))
}

// generatePassword returns an 8 character hex password
func generatePassword() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
