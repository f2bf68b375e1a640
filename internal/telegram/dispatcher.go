package telegram

import (
	"context"
	"strings"

	"github.com/manptz/realty-landing/internal/observability/metrics"
	"github.com/manptz/realty-landing/pkg/logging"
)

// Lead is a validated form submission ready for relay. It lives only for
// the duration of one request; nothing here is persisted.
type Lead struct {
	Name    string
	Phone   string
	Email   string
	Message string
}

// sender is the outbound half of the Bot API used by the dispatcher.
type sender interface {
	SendMessage(ctx context.Context, req SendMessageRequest) error
}

// Dispatcher formats leads and relays them into the recorded chat.
type Dispatcher struct {
	api     sender
	chats   *ChatStore
	metrics *metrics.SiteMetrics
	logger  *logging.Logger
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(api sender, chats *ChatStore, m *metrics.SiteMetrics, logger *logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.Default()
	}
	return &Dispatcher{api: api, chats: chats, metrics: m, logger: logger}
}

// Dispatch relays one lead. It returns false without touching the network
// when no handshake chat is known yet — the dominant failure mode in
// practice — and false on any transport or API failure. Retries belong to
// the caller.
func (d *Dispatcher) Dispatch(ctx context.Context, lead Lead) bool {
	chatID, ok := d.chats.ChatID()
	if !ok {
		d.logger.Warn("lead dropped: no recipient chat recorded, operator must /start the bot")
		d.metrics.ObserveDispatch("no_recipient")
		return false
	}

	err := d.api.SendMessage(ctx, SendMessageRequest{
		ChatID:    chatID,
		Text:      formatLead(lead),
		ParseMode: "HTML",
	})
	if err != nil {
		d.logger.Error("lead relay failed", "error", err, "chat_id", chatID)
		d.metrics.ObserveDispatch("failed")
		return false
	}

	d.logger.Info("lead relayed", "chat_id", chatID)
	d.metrics.ObserveDispatch("sent")
	return true
}

// escapeHTML targets Telegram's HTML parse mode, independent of the form
// sanitizer: every interpolated field is escaped regardless of origin.
var escapeHTML = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func formatLead(lead Lead) string {
	lines := []string{
		"🆕 <b>Новая заявка с сайта</b>",
		"",
		"<b>Имя:</b> " + escapeHTML.Replace(lead.Name),
		"<b>Телефон:</b> " + escapeHTML.Replace(lead.Phone),
	}
	if lead.Email != "" {
		lines = append(lines, "<b>Email:</b> "+escapeHTML.Replace(lead.Email))
	}
	if lead.Message != "" {
		lines = append(lines, "<b>Сообщение:</b> "+escapeHTML.Replace(lead.Message))
	}
	return strings.Join(lines, "\n")
}
