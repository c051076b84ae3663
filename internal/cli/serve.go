package cli

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/slantgrid/pkg/buildinfo"
	"github.com/matzehuels/slantgrid/pkg/config"
	"github.com/matzehuels/slantgrid/pkg/errors"
	"github.com/matzehuels/slantgrid/pkg/observability"
	"github.com/matzehuels/slantgrid/pkg/pipeline"
)

const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command, which renders a fresh drawing per request.
func (c *CLI) serveCommand() *cobra.Command {
	var addr, configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve drawings over HTTP",
		Long: `Serve starts an HTTP server that draws a new grid on every request.

Routes:
  GET /                    page showing a drawing sized to the browser window
  GET /drawing.{format}    one drawing as svg, png, pdf, or json
  GET /healthz             liveness check

Drawing routes accept width, height, and seed query parameters. Style
defaults come from --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var defaults pipeline.Options
			if configPath != "" {
				var err error
				if defaults, err = config.Load(configPath); err != nil {
					return err
				}
			}
			if err := defaults.ValidateAndSetDefaults(); err != nil {
				return err
			}
			return c.runServe(cmd.Context(), addr, defaults)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file with default drawing options")

	return cmd
}

// runServe listens on addr until ctx is cancelled, then shuts down gracefully.
func (c *CLI) runServe(ctx context.Context, addr string, defaults pipeline.Options) error {
	observability.SetServerHooks(logHooks{logger: c.Logger})
	s := newServer(c.newRunner(), defaults, c.Logger)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	printSuccess("Serving drawings")
	printKeyValue("address", StyleLink.Render("http://"+addr))
	printInfo("Press Ctrl+C to stop")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	c.Logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

// =============================================================================
// HTTP Server
// =============================================================================

// server renders one drawing per request.
type server struct {
	runner   *pipeline.Runner
	defaults pipeline.Options
	logger   *log.Logger
}

func newServer(runner *pipeline.Runner, defaults pipeline.Options, logger *log.Logger) *server {
	return &server{runner: runner, defaults: defaults, logger: logger}
}

// Routes returns the server's router.
func (s *server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(observe)
	r.Use(middleware.SetHeader("Server", buildinfo.UserAgent()))

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Get("/drawing.{format}", s.handleDrawing)
	return r
}

// observe reports every request to the registered server hooks.
func observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		hooks := observability.Server()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, time.Since(start))
	})
}

func (s *server) handleDrawing(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}

	opts, err := s.requestOptions(r, format)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.Render(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	h := w.Header()
	h.Set("Content-Type", pipeline.ContentTypes[format])
	h.Set("Cache-Control", "no-store")
	h.Set("X-Drawing-ID", res.ID)
	h.Set("X-Drawing-Seed", strconv.FormatUint(res.Seed, 10))
	if _, err := w.Write(res.Artifacts[format]); err != nil {
		s.logger.Debug("write response", "err", err)
	}
}

// requestOptions overlays the width, height, and seed query parameters on
// the server defaults.
func (s *server) requestOptions(r *http.Request, format string) (pipeline.Options, error) {
	opts := s.defaults
	opts.Formats = []string{format}
	opts.Seed = 0

	q := r.URL.Query()
	if v := q.Get("width"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidDimensions, err, "invalid width %q", v)
		}
		opts.Width = n
	}
	if v := q.Get("height"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidDimensions, err, "invalid height %q", v)
		}
		opts.Height = n
	}
	if v := q.Get("seed"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid seed %q", v)
		}
		opts.Seed = n
	}
	return opts, opts.Validate()
}

type errorResponse struct {
	Error   errors.Code `json:"error"`
	Message string      `json:"message"`
}

func (s *server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.IsInvalid(err):
		status = http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeUnsupported):
		status = http.StatusNotImplemented
	}

	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("drawing failed", "path", r.URL.Path, "request_id", middleware.GetReqID(r.Context()), "err", err)
	}
	writeJSON(w, status, errorResponse{Error: code, Message: errors.UserMessage(err)})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// =============================================================================
// Index Page
// =============================================================================

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>slantgrid</title>
<style>html, body { margin: 0; height: 100%; background: {{.Background}}; } img { display: block; }</style>
</head>
<body>
<img id="drawing" alt="slantgrid drawing" src="/drawing.svg?width={{.Width}}&height={{.Height}}">
<script>
const img = document.getElementById("drawing");
if (!new URLSearchParams(location.search).has("width")) {
  img.src = "/drawing.svg?width=" + window.innerWidth + "&height=" + window.innerHeight;
}
</script>
</body>
</html>
`))

type indexData struct {
	Width, Height int
	Background    string
}

// handleIndex serves a page showing one drawing. Without a width query the
// page asks for a drawing sized to the browser window.
func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	opts, err := s.requestOptions(r, pipeline.FormatSVG)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	bg := opts.Background
	if bg == "" {
		bg = "#ffffff"
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, indexData{Width: opts.Width, Height: opts.Height, Background: bg}); err != nil {
		s.logger.Debug("write index", "err", err)
	}
}
