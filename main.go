package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"problemsdb-backend/handlers/api/chapters"
	"problemsdb-backend/handlers/api/concepts"
	"problemsdb-backend/handlers/api/contents"
	"problemsdb-backend/handlers/api/courses"
	"problemsdb-backend/handlers/api/problems"
	"problemsdb-backend/handlers/api/resources"
	"problemsdb-backend/handlers/api/topics"
	"problemsdb-backend/images"
	"problemsdb-backend/stores"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func setupRouter(store stores.Store, imageStore images.Store) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Content-Length", "Origin", "Host", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/problems", func(r chi.Router) {
			r.Get("/", problems.HandleList(store))
			r.Post("/", problems.HandleCreate(store))
			r.Put("/{id}", problems.HandleUpdate(store))
			r.Delete("/{id}", problems.HandleDelete(store))
		})
		r.Route("/concepts", func(r chi.Router) {
			r.Get("/", concepts.HandleList(store))
			r.Post("/", concepts.HandleCreate(store))
			r.Put("/{id}", concepts.HandleUpdate(store))
			r.Delete("/{id}", concepts.HandleDelete(store))
		})
		r.Route("/resources", func(r chi.Router) {
			r.Get("/", resources.HandleList(store))
			r.Post("/", resources.HandleCreate(store))
			r.Put("/{id}", resources.HandleUpdate(store))
			r.Delete("/{id}", resources.HandleDelete(store))
		})
		r.Route("/courses", func(r chi.Router) {
			r.Get("/", courses.HandleList(store))
			r.Post("/", courses.HandleCreate(store))
			r.Get("/{id}", courses.HandleGet(store))
			r.Put("/{id}", courses.HandleUpdate(store))
			r.Delete("/{id}", courses.HandleDelete(store))
		})
		r.Route("/chapters", func(r chi.Router) {
			r.Get("/", chapters.HandleList(store))
			r.Post("/", chapters.HandleCreate(store))
			r.Get("/{course_id}", chapters.HandleListByCourse(store))
			r.Put("/{id}", chapters.HandleUpdate(store))
			r.Delete("/{id}", chapters.HandleDelete(store))
		})
		r.Route("/topics", func(r chi.Router) {
			r.Get("/", topics.HandleList(store))
			r.Post("/", topics.HandleCreate(store))
			r.Get("/{chapter_id}", topics.HandleListByChapter(store))
			r.Put("/{id}", topics.HandleUpdate(store))
			r.Delete("/{id}", topics.HandleDelete(store))
		})
		r.Get("/contents", contents.HandleList(store))
	})

	r.Post("/upload", contents.HandleUpload(store, imageStore))
	r.Route("/contents", func(r chi.Router) {
		r.Get("/", contents.HandleList(store))
		r.Get("/{topic_id}", contents.HandleListByTopic(store))
	})
	r.Route("/content/{id}", func(r chi.Router) {
		r.Put("/", contents.HandleUpdate(store, imageStore))
		r.Delete("/", contents.HandleDelete(store, imageStore))
	})

	// Uploaded images are plain static files; serve them directly when
	// they live on the local disk.
	if dir := images.LocalDir(); dir != "" {
		fileServer := http.StripPrefix("/images/", http.FileServer(http.Dir(dir)))
		r.Get("/images/*", fileServer.ServeHTTP)
	}

	return r
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	}

	listenAddress := flag.String("listen", ":5000", "The address to listen on.")
	logLevel := flag.String("loglevel", "info", "The log level (debug, info, warn, error).")
	flag.Parse()

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	store := stores.GetStore()
	imageStore := images.GetStore()

	r := setupRouter(store, imageStore)

	srv := &http.Server{Addr: *listenAddress, Handler: r}
	go func() {
		logrus.WithField("addr", *listenAddress).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithField("event", "start server").Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	<-quit

	logrus.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}
	if err := store.Close(); err != nil {
		logrus.WithError(err).Error("Failed to close store")
	}
}
