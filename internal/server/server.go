// Package server exposes card images and icons over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmrcv/ogkit"
	"github.com/dmrcv/ogkit/cache"
	"github.com/dmrcv/ogkit/content"
	"github.com/dmrcv/ogkit/i18n"
	"github.com/dmrcv/ogkit/internal/logx"
)

// CacheControl lets shared caches keep images for a day while browsers
// revalidate.
const CacheControl = "public, max-age=0, s-maxage=86400"

const shutdownTimeout = 10 * time.Second

// Server serves the cards of one content library.
type Server struct {
	gen *ogkit.Generator
	lib *content.Library
}

// New returns a server rendering lib with gen.
func New(gen *ogkit.Generator, lib *content.Library) *Server {
	return &Server{gen: gen, lib: lib}
}

func (s *Server) logger() *slog.Logger {
	return logx.Component("server")
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/favicon.svg", s.handleIcon(s.gen.Favicon))
	r.Get("/apple-touch-icon.svg", s.handleIcon(s.gen.AppleTouchIcon))
	r.Get("/og.png", s.handleNegotiate)

	r.Route("/{lang}", func(r chi.Router) {
		r.Get("/og.png", s.handleProfile)
		r.Get("/og.json", s.handleProfileVersion)
		r.Get("/posts/*", s.handlePost)
	})
	return r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.logger().Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger().Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

// Version is the body of the og.json endpoints.
type Version struct {
	URL  string `json:"url"`
	Hash string `json:"hash"`
}

func (s *Server) lang(w http.ResponseWriter, r *http.Request) (i18n.Lang, bool) {
	lang, ok := i18n.Parse(chi.URLParam(r, "lang"))
	if !ok {
		http.NotFound(w, r)
	}
	return lang, ok
}

func (s *Server) handleNegotiate(w http.ResponseWriter, r *http.Request) {
	lang := i18n.Match(r.Header.Get("Accept-Language"))
	w.Header().Set("Vary", "Accept-Language")
	http.Redirect(w, r, "/"+string(lang)+"/og.png", http.StatusFound)
}

func (s *Server) profileEntry(w http.ResponseWriter, r *http.Request) (i18n.Lang, cache.Entry, bool) {
	lang, ok := s.lang(w, r)
	if !ok {
		return "", cache.Entry{}, false
	}
	p, err := s.lib.ProfileCard(lang)
	if err != nil {
		s.fail(w, r, err)
		return "", cache.Entry{}, false
	}
	e, err := s.gen.VersionedProfileImage(r.Context(), p)
	if err != nil {
		s.fail(w, r, err)
		return "", cache.Entry{}, false
	}
	return lang, e, true
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	if _, e, ok := s.profileEntry(w, r); ok {
		writePNG(w, r, e)
	}
}

func (s *Server) handleProfileVersion(w http.ResponseWriter, r *http.Request) {
	if lang, e, ok := s.profileEntry(w, r); ok {
		writeVersion(w, "/"+string(lang)+"/og.png", e)
	}
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	lang, ok := s.lang(w, r)
	if !ok {
		return
	}
	rest := chi.URLParam(r, "*")
	slug, asJSON := strings.CutSuffix(rest, "/og.json")
	if !asJSON {
		var isPNG bool
		if slug, isPNG = strings.CutSuffix(rest, "/og.png"); !isPNG {
			http.NotFound(w, r)
			return
		}
	}

	p, err := s.lib.PostCard(lang, slug)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	e, err := s.gen.VersionedPostImage(r.Context(), p)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if asJSON {
		writeVersion(w, "/"+string(lang)+"/posts/"+slug+"/og.png", e)
		return
	}
	writePNG(w, r, e)
}

func (s *Server) handleIcon(svg func() string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", CacheControl)
		_, _ = w.Write([]byte(svg()))
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, content.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if errors.Is(err, context.Canceled) {
		return
	}
	s.logger().Error("render failed",
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
		"error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func etag(e cache.Entry) string {
	return `"` + e.Hash + `"`
}

// notModified reports whether an If-None-Match value matches tag, using
// weak comparison over a comma-separated list.
func notModified(header, tag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == tag {
			return true
		}
	}
	return false
}

func writePNG(w http.ResponseWriter, r *http.Request, e cache.Entry) {
	h := w.Header()
	h.Set("Content-Type", "image/png")
	h.Set("Cache-Control", CacheControl)
	h.Set("ETag", etag(e))
	if notModified(r.Header.Get("If-None-Match"), etag(e)) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	_, _ = w.Write(e.Bytes)
}

func writeVersion(w http.ResponseWriter, path string, e cache.Entry) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	_ = json.NewEncoder(w).Encode(Version{URL: path + "?v=" + e.Hash, Hash: e.Hash})
}
