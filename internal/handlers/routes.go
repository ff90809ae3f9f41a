package handlers

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// FunctionPath is where the standalone function answers generation requests.
const FunctionPath = "/functions/v1/generate-image"

// accessLog routes chi request logging through the default slog handler.
func accessLog() func(http.Handler) http.Handler {
	return middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(slog.Default().Handler(), slog.LevelInfo),
		NoColor: true,
	})
}

// NewServerRouter builds the mock server: the site, the generate route and,
// when a database is configured, the resource API.
func NewServerRouter(h *Handler, assets fs.FS) http.Handler {
	r := chi.NewRouter()

	r.Use(accessLog())
	r.Use(middleware.Recoverer)
	r.Use(CORS(ServerMethods))

	r.Handle("/static/*", StaticHandler(assets))

	r.Get("/", h.HandleLanding)
	r.Post("/create", h.HandleCreate)
	r.Get("/health", h.HandleHealth)
	r.Post("/generate-image", h.HandleGenerate)

	if h.db != nil {
		r.Get("/db", h.HandleDB)
		r.HandleFunc("/{resource}", h.HandleResource)
		r.HandleFunc("/{resource}/{id}", h.HandleRecord)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeNotFound(w)
	})

	return r
}

// NewFunctionRouter builds the standalone function. Every response carries
// the function CORS headers, including preflights on unknown paths.
func NewFunctionRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(accessLog())
	r.Use(middleware.Recoverer)
	r.Use(CORS(FunctionMethods))

	r.HandleFunc(FunctionPath, h.HandleGenerate)
	r.Get("/health", h.HandleHealth)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, "Not found", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	return r
}
