package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kitabdunyasi/admin"
	"kitabdunyasi/auth"
	"kitabdunyasi/bonus"
	"kitabdunyasi/cart"
	"kitabdunyasi/catalog"
	"kitabdunyasi/checkout"
	"kitabdunyasi/favorites"
	"kitabdunyasi/profile"
	"kitabdunyasi/ratelim"
	"kitabdunyasi/receipts"
	"kitabdunyasi/routes"
	"kitabdunyasi/store"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// setupRouter wires every feature against the shared store.
func setupRouter(st *store.Store, rateLimiter *ratelim.RateLimiter) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)

	bonusSvc := bonus.NewService(st)
	cartSvc := cart.NewService(st)
	authSvc := auth.NewService(st, bonusSvc)
	checkoutSvc := checkout.NewService(st, bonusSvc)
	favSvc := favorites.NewService(st)
	profileSvc := profile.NewService(st)
	adminSvc := admin.NewService(st)
	receiptSvc := receipts.NewService(st)

	routes.AddStaticRoutes(router)
	routes.AddAuthRoutes(router, auth.NewHandler(authSvc), rateLimiter)
	routes.AddCatalogRoutes(router, catalog.NewHandler(st))
	routes.AddCartRoutes(router, cart.NewHandler(cartSvc, bonusSvc))
	routes.AddBonusRoutes(router, bonus.NewHandler(bonusSvc))
	routes.AddCheckoutRoutes(router, checkout.NewHandler(checkoutSvc), rateLimiter)
	routes.AddFavoritesRoutes(router, favorites.NewHandler(favSvc))
	routes.AddProfileRoutes(router, profile.NewHandler(profileSvc))
	routes.AddAdminRoutes(router, admin.NewHandler(adminSvc), rateLimiter)
	routes.AddReceiptRoutes(router, receipts.NewHandler(receiptSvc), rateLimiter)

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	dbPath := os.Getenv("KITAB_DB")
	if dbPath == "" {
		dbPath = "kitab.db"
	}
	st, err := store.Open(dbPath)
	if err != nil {
		log.Fatalf("❌ Store open error: %v", err)
	}

	if err := catalog.Seed(st); err != nil {
		log.Fatalf("❌ Catalog seed error: %v", err)
	}

	// Interrupted settlements are reported, never replayed.
	pending, err := st.PendingIntents()
	if err != nil {
		log.Fatalf("❌ Intent scan error: %v", err)
	}
	for _, in := range pending {
		log.Printf("⚠️ Pending %s intent #%d from %s needs review", in.Kind, in.ID, in.CreatedAt.Format(time.RFC3339))
	}

	rateLimiter := ratelim.NewRateLimiter()
	router := setupRouter(st, rateLimiter)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		log.Println("🛑 Closing store...")
		if err := st.Close(); err != nil {
			log.Printf("store close: %v", err)
		}
	})

	go func() {
		log.Printf("🚀 Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("🛑 Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Graceful shutdown failed: %v", err)
	}

	log.Println("✅ Server stopped cleanly")
}
