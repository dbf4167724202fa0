package handlers

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	apperrors "bastianbuilt.com/internal/errors"
	"bastianbuilt.com/internal/logging"
	"bastianbuilt.com/internal/models"
	"bastianbuilt.com/internal/services"
)

const maxContactBodyBytes = 64 << 10

var errUnreadableBody = errors.New("unreadable request body")

// ContactHandler handles contact form submissions
type ContactHandler struct {
	responder
	contactService *services.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(cs *services.ContactService, logger logging.Logger) *ContactHandler {
	return &ContactHandler{
		responder:      responder{logger: logger.WithComponent("contact")},
		contactService: cs,
	}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBodyBytes)

	req, err := decodeContactRequest(r)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		h.logger.Warn(r.Context(), err, "Rejected oversized contact body", "limit", tooLarge.Limit)
		h.respondError(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	if err != nil {
		h.logger.Debug(r.Context(), "Rejected contact body", "error", err.Error())
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.contactService.Submit(r.Context(), req); err != nil {
		h.respondError(w, apperrors.HTTPStatus(err), apperrors.PublicMessage(err))
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": services.MsgSubmissionAccepted,
	})
}

// decodeContactRequest reads a JSON body, or a form body from browsers
// without JavaScript
func decodeContactRequest(r *http.Request) (models.ContactRequest, error) {
	var req models.ContactRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return req, errors.Join(errUnreadableBody, err)
		}
		req.Name = r.PostForm.Get("name")
		req.Email = r.PostForm.Get("email")
		req.Message = r.PostForm.Get("message")
		return req, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, errors.Join(errUnreadableBody, err)
	}
	return req, nil
}
