package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/liberia-ecms/court-records-api/api"
	"github.com/liberia-ecms/court-records-api/api/scheduler"
	"github.com/liberia-ecms/court-records-api/config"
	"github.com/liberia-ecms/court-records-api/databases"
	"github.com/liberia-ecms/court-records-api/models"
	"github.com/liberia-ecms/court-records-api/storage"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	dbHelper databases.DatabaseHelper
	store    storage.BlobStore
	sweeper  *scheduler.Sweeper
}

// Initialize connects the database, prepares the blob store and builds the
// router
func (a *App) Initialize() error {
	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("court-records-api has connected to the database")

	folders := make([]string, 0, len(models.Kinds))
	for _, kind := range models.Kinds {
		folders = append(folders, kind.UploadFolder)
	}
	a.store, err = storage.FromConfig(&a.Config, folders...)
	if err != nil {
		zap.S().With(err).Error("failed to build blob store")
		return err
	}
	if err := a.store.Init(); err != nil {
		zap.S().With(err).Error("failed to initialize blob store")
		return err
	}

	if disk, ok := a.store.(*storage.DiskStore); ok {
		a.sweeper = scheduler.NewSweeper(a.dbHelper, disk.Root(), models.Kinds)
		a.sweeper.Start()
	}

	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()
	r.Use(api.TimeoutMiddleware(30 * time.Second))

	udb := databases.NewUserDatabase(a.dbHelper)
	mailer := NewMailer()
	hub := NewEventHub()

	auth := Auth{DB: udb, Mailer: mailer}
	courts := Court{DB: databases.NewCourtDatabase(a.dbHelper)}

	// healthchex
	r.HandleFunc("/health", api.HealthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/auth/login", http.HandlerFunc(auth.LoginHandler)).Methods("POST")
	apiCreate.Handle("/auth/create", api.Middleware(api.RequireRole(http.HandlerFunc(auth.CreateUserHandler), models.RoleCourtAdmin))).Methods("POST")
	apiCreate.Handle("/auth/users", api.Middleware(api.RequireRole(http.HandlerFunc(auth.ListUsersHandler), models.RoleCourtAdmin))).Methods("GET")
	apiCreate.Handle("/auth/user/{id}", api.Middleware(api.RequireRole(http.HandlerFunc(auth.UpdateUserHandler), models.RoleCourtAdmin))).Methods("PUT")
	apiCreate.Handle("/auth/user/{id}", api.Middleware(api.RequireRole(http.HandlerFunc(auth.DeleteUserHandler), models.RoleCourtAdmin))).Methods("DELETE")

	apiCreate.Handle("/courts", api.Middleware(http.HandlerFunc(courts.ListHandler))).Methods("GET")
	apiCreate.Handle("/courts", api.Middleware(api.RequireRole(http.HandlerFunc(courts.CreateHandler), models.RoleCourtAdmin))).Methods("POST")
	apiCreate.Handle("/courts/{id}", api.Middleware(api.RequireRole(http.HandlerFunc(courts.DeleteHandler), models.RoleCourtAdmin))).Methods("DELETE")

	apiCreate.Handle("/events", api.Middleware(api.RequireRole(http.HandlerFunc(hub.ServeWS), models.RoleCourtAdmin, models.RoleChiefJustice))).Methods("GET")

	NewReport[models.CivilDocket](models.CivilDocketKind, a.dbHelper, udb, a.store, hub, mailer).Register(apiCreate)
	NewReport[models.CriminalDocket](models.CriminalDocketKind, a.dbHelper, udb, a.store, hub, mailer).Register(apiCreate)
	NewReport[models.MagistrateReport](models.MagistrateReportKind, a.dbHelper, udb, a.store, hub, mailer).Register(apiCreate)
	NewReport[models.JuryReport](models.JuryReportKind, a.dbHelper, udb, a.store, hub, mailer).Register(apiCreate)
	NewReport[models.CourtFee](models.CourtFeeKind, a.dbHelper, udb, a.store, hub, mailer).Register(apiCreate)
	NewReport[models.ReturnsAssignment](models.ReturnsAssignmentKind, a.dbHelper, udb, a.store, hub, mailer).Register(apiCreate)

	// only the disk driver serves uploads from the API itself
	if disk, ok := a.store.(*storage.DiskStore); ok {
		r.PathPrefix("/uploads/").Handler(
			http.StripPrefix("/uploads/", http.FileServer(http.Dir(disk.Root()))))
	}

	return r
}
