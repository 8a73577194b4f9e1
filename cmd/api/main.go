package main

import (
	"log"
	"net/http"
	"os"

	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/auth"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/broker"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/category"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/commission"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/deal"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/developer"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/override"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/project"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/unittype"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	_ = godotenv.Load()

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := database.AutoMigrate(
		&broker.Broker{},
		&developer.Developer{},
		&project.Project{},
		&category.Category{},
		&category.ProjectCategory{},
		&unittype.UnitType{},
		&unittype.ProjectCategoryUnitType{},
		&deal.Deal{},
		&commission.Commission{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Handlers
	brokerHandler := broker.NewHandler(database)
	developerHandler := developer.NewHandler(database)
	projectHandler := project.NewHandler(database)
	categoryHandler := category.NewHandler(category.NewRepository(database))
	unitTypeHandler := unittype.NewHandler(unittype.NewRepository(database))
	dealHandler := deal.NewHandler(database)
	commissionHandler := commission.NewHandler(commission.NewRepository(database))
	overrideHandler := override.NewHandler(override.NewRepository(database))

	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/login", brokerHandler.Login).Methods("POST")

	// Everything below requires a valid token.
	api := r.NewRoute().Subrouter()
	api.Use(auth.Middleware)

	// Manager-only administrative routes.
	admin := api.NewRoute().Subrouter()
	admin.Use(auth.RequireManager)

	// Brokers
	admin.HandleFunc("/brokers", brokerHandler.Create).Methods("POST")
	api.HandleFunc("/brokers", brokerHandler.List).Methods("GET")
	api.HandleFunc("/brokers/{id}", brokerHandler.Get).Methods("GET")
	api.HandleFunc("/brokers/{id}/summary", brokerHandler.Summary).Methods("GET")
	admin.HandleFunc("/brokers/{id}", brokerHandler.Update).Methods("PUT")
	admin.HandleFunc("/brokers/{id}", brokerHandler.Delete).Methods("DELETE")

	// Developers
	admin.HandleFunc("/developers", developerHandler.Create).Methods("POST")
	api.HandleFunc("/developers", developerHandler.List).Methods("GET")
	api.HandleFunc("/developers/{id}", developerHandler.Get).Methods("GET")
	admin.HandleFunc("/developers/{id}", developerHandler.Update).Methods("PUT")
	admin.HandleFunc("/developers/{id}", developerHandler.Delete).Methods("DELETE")

	// Projects
	admin.HandleFunc("/projects", projectHandler.Create).Methods("POST")
	api.HandleFunc("/projects", projectHandler.List).Methods("GET")
	api.HandleFunc("/projects/{id}", projectHandler.Get).Methods("GET")
	admin.HandleFunc("/projects/{id}", projectHandler.Update).Methods("PUT")
	admin.HandleFunc("/projects/{id}", projectHandler.Delete).Methods("DELETE")

	// Category catalog + project categories
	admin.HandleFunc("/categories", categoryHandler.CreateCategory).Methods("POST")
	api.HandleFunc("/categories", categoryHandler.ListCategories).Methods("GET")
	admin.HandleFunc("/categories/{id}", categoryHandler.UpdateCategory).Methods("PUT")
	admin.HandleFunc("/categories/{id}", categoryHandler.DeleteCategory).Methods("DELETE")
	admin.HandleFunc("/projects/{id}/categories", categoryHandler.CreateProjectCategory).Methods("POST")
	api.HandleFunc("/projects/{id}/categories", categoryHandler.ListProjectCategories).Methods("GET")
	api.HandleFunc("/project-categories/{id}", categoryHandler.GetProjectCategory).Methods("GET")
	admin.HandleFunc("/project-categories/{id}", categoryHandler.UpdateProjectCategory).Methods("PUT")
	admin.HandleFunc("/project-categories/{id}/enabled", categoryHandler.SetEnabled).Methods("PATCH")
	admin.HandleFunc("/project-categories/{id}", categoryHandler.DeleteProjectCategory).Methods("DELETE")

	// Unit type catalog + assignments
	admin.HandleFunc("/unit-types", unitTypeHandler.CreateType).Methods("POST")
	api.HandleFunc("/unit-types", unitTypeHandler.ListTypes).Methods("GET")
	admin.HandleFunc("/unit-types/{id}", unitTypeHandler.UpdateType).Methods("PUT")
	admin.HandleFunc("/unit-types/{id}", unitTypeHandler.DeleteType).Methods("DELETE")
	admin.HandleFunc("/project-categories/{id}/unit-types", unitTypeHandler.CreateAssignment).Methods("POST")
	api.HandleFunc("/project-categories/{id}/unit-types", unitTypeHandler.ListAssignments).Methods("GET")
	admin.HandleFunc("/unit-type-assignments/{id}", unitTypeHandler.UpdateAssignment).Methods("PUT")
	admin.HandleFunc("/unit-type-assignments/{id}/enabled", unitTypeHandler.SetEnabled).Methods("PATCH")
	admin.HandleFunc("/unit-type-assignments/{id}", unitTypeHandler.DeleteAssignment).Methods("DELETE")

	// Deals
	api.HandleFunc("/deals", dealHandler.Create).Methods("POST")
	api.HandleFunc("/deals", dealHandler.List).Methods("GET")
	api.HandleFunc("/deals/{id}", dealHandler.Get).Methods("GET")
	admin.HandleFunc("/deals/{id}/status", dealHandler.UpdateStatus).Methods("PATCH")
	admin.HandleFunc("/deals/{id}", dealHandler.Delete).Methods("DELETE")

	// Commissions
	api.HandleFunc("/commissions", commissionHandler.List).Methods("GET")
	api.HandleFunc("/commissions/export", commissionHandler.ExportCSV).Methods("GET")
	api.HandleFunc("/commissions/{id}", commissionHandler.Get).Methods("GET")
	admin.HandleFunc("/commissions/{id}/status", commissionHandler.UpdateStatus).Methods("PATCH")
	admin.HandleFunc("/commissions/{id}/rates", commissionHandler.OverrideRates).Methods("PATCH")

	// Bulk rate overrides
	admin.HandleFunc("/rates/override", overrideHandler.Apply).Methods("POST")

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}).Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("server listening on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
