package server

import (
	"bytes"
	"io"
	"net/http"

	"github.com/vango-dev/appshell/pkg/middleware"
	"github.com/vango-dev/appshell/pkg/render"
	"github.com/vango-dev/appshell/pkg/router"
	"github.com/vango-dev/appshell/pkg/vdom"
)

// PageHook observes a matched page request before the page renders. The
// match carries the canonical escaped path.
type PageHook func(r *http.Request, m *router.Match)

// RenderLocation renders the full page for loc into w and reports the
// match, nil when no route matched. Nothing is written on error.
func (s *Server) RenderLocation(w io.Writer, loc router.Location) (*router.Match, error) {
	env, m := s.root.Router().Resolve(vdom.NewEnv(), loc)
	buf, err := s.renderPage(env)
	if err != nil {
		return m, err
	}
	_, err = buf.WriteTo(w)
	return m, err
}

// renderPage renders the document shell around the root for env. A page
// that panics is counted as a render error before the panic continues.
func (s *Server) renderPage(env *vdom.Env) (*bytes.Buffer, error) {
	defer func() {
		if rec := recover(); rec != nil {
			s.metrics.RecordRenderError()
			panic(rec)
		}
	}()

	var buf bytes.Buffer
	err := s.renderer.RenderPage(&buf, render.PageData{
		Body:        s.root.Render(router.Outlet()),
		Env:         env,
		Title:       s.config.Title,
		Lang:        s.config.Lang,
		Meta:        s.config.Meta,
		StyleSheets: s.config.StyleSheets,
		Scripts:     s.config.Scripts,
	})
	return &buf, err
}

// servePage renders the page for the request path.
func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.EscapedPath()
	canonical, err := router.Canonicalize(raw)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if canonical != raw {
		target := canonical
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusPermanentRedirect)
		return
	}

	loc := router.Location{Path: canonical, RawQuery: r.URL.RawQuery}
	env, m := s.root.Router().Resolve(vdom.NewEnv(), loc)
	if m != nil {
		middleware.SetRoute(r.Context(), m.Pattern)
		if s.config.OnPage != nil {
			s.config.OnPage(r, m)
		}
	}

	buf, err := s.renderPage(env)
	if err != nil {
		s.metrics.RecordRenderError()
		s.config.Logger.Error("render failed", "path", loc.Path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if m == nil {
		status = http.StatusNotFound
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		buf.WriteTo(w)
	}
}
