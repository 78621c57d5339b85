// Package gallery serves a read-only HTML gallery over the artifact root
// produced by render runs. It lists runs and their artifacts, serves the
// raw PNG files, and generates downscaled thumbnails on demand.
package gallery

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/seedsketch/seedsketch/pkg/errors"
)

//go:embed templates/*.html
var templatesFS embed.FS

// App is the gallery HTTP application. It never writes to the artifact
// root; every handler is a read.
type App struct {
	root      string
	router    *chi.Mux
	templates *template.Template
	thumbs    *Thumbnailer
	logger    *log.Logger
}

// NewApp creates a gallery application over the given artifact root.
// A nil logger falls back to the default logger.
func NewApp(root string, logger *log.Logger) (*App, error) {
	if logger == nil {
		logger = log.Default()
	}

	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeNotFound, "artifact root %s does not exist", root)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeResource, err, "stat artifact root %s", root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "artifact root %s is not a directory", root)
	}

	funcMap := template.FuncMap{
		"fmtScale": func(s float64) string { return fmt.Sprintf("%gx", s) },
		"fmtTime":  func(t time.Time) string { return t.Format("2006-01-02 15:04") },
		"fmtSize": func(n int64) string {
			switch {
			case n >= 1<<20:
				return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
			case n >= 1<<10:
				return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
			default:
				return fmt.Sprintf("%d B", n)
			}
		},
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse gallery templates")
	}

	app := &App{
		root:      root,
		router:    chi.NewRouter(),
		templates: templates,
		thumbs:    NewThumbnailer(DefaultThumbEdge),
		logger:    logger,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// Handler returns the application's HTTP handler.
func (a *App) Handler() http.Handler {
	return a.router
}

// ListenAndServe serves the gallery on addr until the context is canceled
// or the server fails. Cancellation shuts the server down gracefully and
// returns the context's error.
func (a *App) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: a.router}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	a.logger.Info("gallery listening", "addr", addr, "root", a.root)

	select {
	case err := <-errc:
		if err != nil && err != http.ErrServerClosed {
			return errors.Wrap(errors.ErrCodeResource, err, "serve gallery on %s", addr)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	}
}

func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Get("/runs/{name}", a.handleRun)
	a.router.Get("/images/{name}/{file}", a.handleImage)
	a.router.Get("/thumb/{name}/{file}", a.handleThumb)
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	runs, err := ScanRoot(a.root)
	if err != nil {
		a.logger.Error("gallery scan failed", "root", a.root, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	a.renderTemplate(w, "index.html", map[string]any{
		"Root": a.root,
		"Runs": runs,
	})
}

func (a *App) handleRun(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if errors.ValidateRunName(name) != nil {
		http.NotFound(w, r)
		return
	}

	run, err := ScanRun(a.root, name)
	if errors.Is(err, errors.ErrCodeNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		a.logger.Error("run scan failed", "run", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	a.renderTemplate(w, "run.html", map[string]any{
		"Run": run,
	})
}

func (a *App) handleImage(w http.ResponseWriter, r *http.Request) {
	path, ok := a.artifactPath(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}

func (a *App) handleThumb(w http.ResponseWriter, r *http.Request) {
	path, ok := a.artifactPath(r)
	if !ok || !strings.HasSuffix(path, ".png") {
		http.NotFound(w, r)
		return
	}

	data, err := a.thumbs.Render(path)
	if errors.Is(err, errors.ErrCodeNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		a.logger.Error("thumbnail failed", "path", path, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "max-age=60")
	_, _ = w.Write(data)
}

// artifactPath resolves the {name}/{file} route parameters to a path under
// the artifact root. ok is false when either component could escape it or
// the file does not exist.
func (a *App) artifactPath(r *http.Request) (string, bool) {
	name := chi.URLParam(r, "name")
	file := chi.URLParam(r, "file")

	if errors.ValidateRunName(name) != nil {
		return "", false
	}
	if file == "" || file != filepath.Base(file) || strings.Contains(file, "..") {
		return "", false
	}

	path := filepath.Join(a.root, name, file)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}

func (a *App) renderTemplate(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, name, data); err != nil {
		a.logger.Error("template render failed", "template", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
