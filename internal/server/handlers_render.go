package server

import (
	"encoding/json"
	"net/http"

	"github.com/danielcho/resume-composer/internal/compose"
	"github.com/danielcho/resume-composer/internal/export"
	"github.com/danielcho/resume-composer/internal/settings"
	"github.com/danielcho/resume-composer/internal/templates"
	"github.com/danielcho/resume-composer/internal/types"
)

// RenderRequest is the payload for stateless composition. Nothing is
// stored; the document and override layer travel in the request.
type RenderRequest struct {
	Document   *types.Document   `json:"document"`
	Settings   settings.Settings `json:"settings,omitempty"`
	TemplateID string            `json:"template_id,omitempty"`
	Format     string            `json:"format,omitempty"` // tree (default), html, pdf
}

// handleRender composes a document supplied in the request body.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Document == nil {
		s.errorResponse(w, http.StatusBadRequest, "document is required")
		return
	}
	if err := s.validator.Struct(req.Document); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	templateID := req.TemplateID
	if templateID == "" {
		templateID = templates.DefaultTemplateID
	}
	tmpl, err := templates.Get(templateID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, (&ErrUnknownTemplate{TemplateID: templateID}).Error())
		return
	}

	overrides := req.Settings
	if overrides == nil {
		overrides = settings.Settings{}
	}

	root := compose.Compose(req.Document, overrides, tmpl)

	switch req.Format {
	case "", "tree":
		s.jsonResponse(w, http.StatusOK, root)
	case "html":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(export.HTML(root)))
	case "pdf":
		pdf, err := export.PDF(r.Context(), export.HTML(root), export.DefaultPDFTimeout)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "PDF export failed")
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(pdf)
	default:
		s.errorResponse(w, http.StatusBadRequest, "unknown format (expected tree, html, or pdf)")
	}
}
