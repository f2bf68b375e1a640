package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/manptz/realty-landing/internal/observability/metrics"
	"github.com/manptz/realty-landing/internal/sanitize"
	"github.com/manptz/realty-landing/internal/telegram"
	"github.com/manptz/realty-landing/pkg/logging"
)

// dispatchFailedMessage tells the visitor how to reach the agency when
// the relay is down; the lead itself is lost, so this has to be useful.
const dispatchFailedMessage = "Не удалось отправить заявку. Напишите боту в Telegram команду /start."

// LeadDispatcher relays a validated lead; false covers both "no recipient
// yet" and transport failure.
type LeadDispatcher interface {
	Dispatch(ctx context.Context, lead telegram.Lead) bool
}

// LeadHandler accepts lead-capture form submissions.
type LeadHandler struct {
	dispatcher LeadDispatcher
	metrics    *metrics.SiteMetrics
	logger     *logging.Logger
}

// NewLeadHandler creates a lead handler.
func NewLeadHandler(dispatcher LeadDispatcher, m *metrics.SiteMetrics, logger *logging.Logger) *LeadHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeadHandler{dispatcher: dispatcher, metrics: m, logger: logger}
}

type leadRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SendLead handles POST /api/send-lead. The body is JSON or form-encoded;
// validation failures return 400 with a user-facing reason, relay
// failures return 500 with a contact-us-directly message.
func (h *LeadHandler) SendLead(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeLeadRequest(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Нет данных")
		return
	}

	name, err := sanitize.ValidateName(req.Name)
	if err != nil {
		h.rejectLead(w, err)
		return
	}
	phone, err := sanitize.ValidatePhone(req.Phone)
	if err != nil {
		h.rejectLead(w, err)
		return
	}
	email, err := sanitize.ValidateEmail(req.Email)
	if err != nil {
		h.rejectLead(w, err)
		return
	}
	message, err := sanitize.ValidateMessage(req.Message)
	if err != nil {
		h.rejectLead(w, err)
		return
	}

	lead := telegram.Lead{Name: name, Phone: phone, Email: email, Message: message}
	if !h.dispatcher.Dispatch(r.Context(), lead) {
		h.metrics.ObserveLead("dispatch_failed")
		writeError(w, http.StatusInternalServerError, dispatchFailedMessage)
		return
	}

	h.metrics.ObserveLead("accepted")
	h.logger.Info("lead accepted", "name", name)
	writeOK(w)
}

func (h *LeadHandler) rejectLead(w http.ResponseWriter, err error) {
	h.metrics.ObserveLead("validation_failed")
	writeError(w, http.StatusBadRequest, err.Error())
}

func decodeLeadRequest(r *http.Request) (leadRequest, bool) {
	var req leadRequest
	ct := r.Header.Get("Content-Type")
	if strings.Contains(ct, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, false
		}
		return req, true
	}
	if err := r.ParseForm(); err != nil {
		return req, false
	}
	if len(r.PostForm) == 0 {
		return req, false
	}
	req.Name = r.PostForm.Get("name")
	req.Phone = r.PostForm.Get("phone")
	req.Email = r.PostForm.Get("email")
	req.Message = r.PostForm.Get("message")
	return req, true
}
