package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/danielcho/resume-composer/internal/compose"
	"github.com/danielcho/resume-composer/internal/db"
	"github.com/danielcho/resume-composer/internal/export"
	"github.com/danielcho/resume-composer/internal/server/middleware"
	"github.com/danielcho/resume-composer/internal/settings"
	"github.com/danielcho/resume-composer/internal/templates"
	"github.com/danielcho/resume-composer/internal/types"
)

// CreateDocumentRequest is the payload for creating a document.
type CreateDocumentRequest struct {
	Title      string            `json:"title"`
	TemplateID string            `json:"template_id,omitempty"`
	Content    *types.Document   `json:"content"`
	Settings   settings.Settings `json:"settings,omitempty"`
}

// handleCreateDocument creates a new document for the authenticated user.
func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" {
		s.errorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Content == nil {
		s.errorResponse(w, http.StatusBadRequest, "content is required")
		return
	}
	if err := s.validator.Struct(req.Content); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	templateID := req.TemplateID
	if templateID == "" {
		templateID = templates.DefaultTemplateID
	}
	if _, err := templates.Get(templateID); err != nil {
		s.errorResponse(w, http.StatusBadRequest, (&ErrUnknownTemplate{TemplateID: templateID}).Error())
		return
	}

	content, err := json.Marshal(req.Content)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to encode document")
		return
	}
	overrides := req.Settings
	if overrides == nil {
		overrides = settings.Settings{}
	}
	overridesJSON, err := json.Marshal(overrides)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to encode settings")
		return
	}

	docID, err := s.db.CreateDocument(r.Context(), userID, req.Title, templateID, content, overridesJSON)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create document")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{"id": docID})
}

// handleListDocuments lists the authenticated user's documents.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	docs, err := s.db.ListDocuments(r.Context(), userID, 100)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list documents")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"documents": docs})
}

// handleGetDocument returns one document owned by the authenticated user.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.loadDocument(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleUpdateDocument replaces a document's content.
func (s *Server) handleUpdateDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.loadDocument(w, r)
	if !ok {
		return
	}

	var content types.Document
	if err := json.NewDecoder(r.Body).Decode(&content); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(&content); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	raw, err := json.Marshal(&content)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to encode document")
		return
	}
	if err := s.db.UpdateDocumentContent(r.Context(), doc.UserID, doc.ID, raw); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update document")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

// handleDeleteDocument deletes a document owned by the authenticated user.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.loadDocument(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteDocument(r.Context(), doc.UserID, doc.ID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete document")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleUpdateSettings replaces the document's override layer. Only this
// layer is ever stored; the merged result is recomputed on demand.
func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.loadDocument(w, r)
	if !ok {
		return
	}

	var overrides settings.Settings
	if err := json.NewDecoder(r.Body).Decode(&overrides); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if overrides == nil {
		overrides = settings.Settings{}
	}

	raw, err := json.Marshal(overrides)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to encode settings")
		return
	}
	if err := s.db.UpdateDocumentSettings(r.Context(), doc.UserID, doc.ID, raw); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

// handleEditSettings applies one edit action to the document's override
// layer and persists the result.
func (s *Server) handleEditSettings(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.loadDocument(w, r)
	if !ok {
		return
	}

	var action settings.EditAction
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	overrides, tmpl, _, err := s.unpackDocument(doc)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	eff := settings.Resolve(settings.Defaults(), tmpl.Defaults, overrides)
	next, err := settings.Apply(overrides, eff, action)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	raw, err := json.Marshal(next)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to encode settings")
		return
	}
	if err := s.db.UpdateDocumentSettings(r.Context(), doc.UserID, doc.ID, raw); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"settings": next})
}

// handleResetSettings clears the document's override layer.
func (s *Server) handleResetSettings(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.loadDocument(w, r)
	if !ok {
		return
	}

	if err := s.db.UpdateDocumentSettings(r.Context(), doc.UserID, doc.ID, []byte("{}")); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to reset settings")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "reset"})
}

// handleRenderDocument composes a stored document and returns the result
// as a render tree or HTML depending on the format query parameter.
func (s *Server) handleRenderDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.loadDocument(w, r)
	if !ok {
		return
	}

	overrides, tmpl, content, err := s.unpackDocument(doc)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	root := compose.Compose(content, overrides, tmpl)

	switch r.URL.Query().Get("format") {
	case "", "tree":
		s.jsonResponse(w, http.StatusOK, root)
	case "html":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(export.HTML(root)))
	default:
		s.errorResponse(w, http.StatusBadRequest, "unknown format (expected tree or html)")
	}
}

// handleListTemplates returns the builtin template ids.
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"templates": templates.IDs(),
		"default":   templates.DefaultTemplateID,
	})
}

// loadDocument parses the path id and fetches the document scoped to the
// authenticated user. Writes the error response itself on failure.
func (s *Server) loadDocument(w http.ResponseWriter, r *http.Request) (*db.DocumentRecord, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	docID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid document id")
		return nil, false
	}

	doc, err := s.db.GetDocument(r.Context(), userID, docID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch document")
		return nil, false
	}
	if doc == nil {
		s.errorResponse(w, http.StatusNotFound, (&ErrDocumentNotFound{DocumentID: docID}).Error())
		return nil, false
	}

	return doc, true
}

// unpackDocument decodes a stored record into its document content,
// override layer, and template.
func (s *Server) unpackDocument(doc *db.DocumentRecord) (settings.Settings, templates.Template, *types.Document, error) {
	var overrides settings.Settings
	if len(doc.Settings) > 0 {
		if err := json.Unmarshal(doc.Settings, &overrides); err != nil {
			return nil, templates.Template{}, nil, &ErrValidation{Field: "settings", Message: "stored settings are not valid JSON"}
		}
	}
	if overrides == nil {
		overrides = settings.Settings{}
	}

	tmpl, err := templates.Get(doc.TemplateID)
	if err != nil {
		tmpl = templates.Default()
	}

	var content types.Document
	if err := json.Unmarshal(doc.Content, &content); err != nil {
		return nil, templates.Template{}, nil, &ErrValidation{Field: "content", Message: "stored document is not valid JSON"}
	}

	return overrides, tmpl, &content, nil
}
