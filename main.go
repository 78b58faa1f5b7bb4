package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kpatel/grouplift/internal/auth"
	"github.com/kpatel/grouplift/internal/config"
	"github.com/kpatel/grouplift/internal/handlers"
	"github.com/kpatel/grouplift/internal/middleware"
	"github.com/kpatel/grouplift/internal/store/sqlstore"
	"github.com/kpatel/grouplift/internal/ws"
)

var addr = flag.String("addr", "", "http service address (overrides ADDR)")

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	auth.SecretKey = []byte(cfg.JWTSecret)

	// Initialize Database
	store, err := sqlstore.New(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Initialize WebSocket Hub
	hub := ws.NewHub()
	go hub.Run()

	// Initialize Handlers
	authHandler := &handlers.AuthHandler{Store: store, TokenDuration: cfg.TokenDuration}
	groupHandler := &handlers.GroupHandler{Store: store}
	workoutHandler := &handlers.WorkoutHandler{Store: store}
	messageHandler := &handlers.MessageHandler{Store: store}

	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	protected := func(h http.HandlerFunc) http.Handler {
		return middleware.AuthMiddleware(h)
	}

	// API Endpoints
	r.HandleFunc("/api/users", authHandler.Signup).Methods("POST")
	r.HandleFunc("/api/users/token", authHandler.Login).Methods("POST")
	r.Handle("/api/users/me", protected(authHandler.Me)).Methods("GET")
	r.Handle("/api/users/me", protected(authHandler.UpdateMe)).Methods("PATCH")
	r.Handle("/api/users/info", protected(authHandler.UserInfo)).Methods("GET")

	r.Handle("/api/groups", protected(groupHandler.CreateGroup)).Methods("POST")
	r.Handle("/api/groups/my-groups", protected(groupHandler.MyGroups)).Methods("GET")
	r.Handle("/api/groups/by-invite-code", protected(groupHandler.GroupByInviteCode)).Methods("GET")
	r.Handle("/api/groups/{id}", protected(groupHandler.GetGroup)).Methods("GET")
	r.Handle("/api/groups/{id}/join", protected(groupHandler.JoinGroup)).Methods("POST")
	r.Handle("/api/groups/{id}/leave", protected(groupHandler.LeaveGroup)).Methods("POST")
	r.Handle("/api/groups/{id}/messages", protected(messageHandler.GroupMessages)).Methods("GET")

	r.Handle("/api/workouts", protected(workoutHandler.CreateWorkout)).Methods("POST")
	r.Handle("/api/workouts/by-date", protected(workoutHandler.WorkoutsByDate)).Methods("GET")
	r.Handle("/api/workouts/{id}/like", protected(workoutHandler.ToggleLike)).Methods("POST")
	r.Handle("/api/workouts/{id}/comments", protected(workoutHandler.GetComments)).Methods("GET")
	r.Handle("/api/workouts/{id}/comments", protected(workoutHandler.CreateComment)).Methods("POST")
	r.Handle("/api/workouts/{id}/comments/{comment_id}", protected(workoutHandler.DeleteComment)).Methods("DELETE")

	// WebSocket Endpoint: authentication resolves the user before the chat
	// session is constructed.
	r.HandleFunc("/ws/chat/{group_id}", func(w http.ResponseWriter, r *http.Request) {
		token := middleware.TokenFromRequest(r)
		claims, err := auth.ValidateToken(token)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		user, err := store.GetUserByID(claims.UserID)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ws.ServeWS(hub, store, w, r, user)
	})

	// Metrics
	r.Handle("/metrics", promhttp.Handler())

	log.Println("Starting server on", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, r))
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}
