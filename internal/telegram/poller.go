package telegram

import (
	"context"
	"strings"
	"time"

	"github.com/manptz/realty-landing/internal/observability/metrics"
	"github.com/manptz/realty-landing/pkg/logging"
)

const (
	startCommand   = "/start"
	startReplyText = "Чат подключён. Сюда будут приходить заявки с сайта."
	defaultBackoff = 2 * time.Second
)

// api is the slice of the Bot API the handshake listener needs.
type api interface {
	GetUpdates(ctx context.Context, offset int64) ([]Update, error)
	SendMessage(ctx context.Context, req SendMessageRequest) error
}

// Poller is the handshake listener: a long-poll loop that records the
// chat id of every inbound message (last write wins) and confirms /start
// commands. One poller runs for the life of the process.
type Poller struct {
	api     api
	chats   *ChatStore
	backoff time.Duration
	metrics *metrics.SiteMetrics
	logger  *logging.Logger

	offset int64
}

// NewPoller creates a poller. backoff is the pause after a failed poll;
// zero selects the default.
func NewPoller(api api, chats *ChatStore, backoff time.Duration, m *metrics.SiteMetrics, logger *logging.Logger) *Poller {
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Poller{api: api, chats: chats, backoff: backoff, metrics: m, logger: logger}
}

// Run polls until ctx is cancelled. Every failure turns into a brief
// pause and a resume from the last committed offset: duplicate handshake
// deliveries are harmless because they only overwrite the stored chat id.
func (p *Poller) Run(ctx context.Context) {
	p.logger.Info("handshake listener started")
	for {
		if err := p.pollOnce(ctx); err != nil {
			if ctx.Err() != nil {
				p.logger.Info("handshake listener stopped")
				return
			}
			p.logger.Warn("poll failed, backing off", "error", err)
			select {
			case <-time.After(p.backoff):
			case <-ctx.Done():
				p.logger.Info("handshake listener stopped")
				return
			}
		}
		if ctx.Err() != nil {
			p.logger.Info("handshake listener stopped")
			return
		}
	}
}

// pollOnce retrieves one batch of updates and processes it. The offset
// advances past every retrieved update so each is seen at most once.
func (p *Poller) pollOnce(ctx context.Context) error {
	updates, err := p.api.GetUpdates(ctx, p.offset)
	if err != nil {
		return err
	}
	for _, upd := range updates {
		p.offset = upd.UpdateID + 1
		p.handleUpdate(ctx, upd)
	}
	return nil
}

func (p *Poller) handleUpdate(ctx context.Context, upd Update) {
	msg := upd.Message
	if msg == nil {
		msg = upd.EditedMessage
	}
	if msg == nil || msg.Chat.ID == 0 {
		return
	}
	p.metrics.ObservePollerUpdate()

	if err := p.chats.SetChatID(msg.Chat.ID); err != nil {
		p.logger.Error("failed to record recipient chat", "error", err, "chat_id", msg.Chat.ID)
		return
	}
	p.logger.Info("recipient chat recorded", "chat_id", msg.Chat.ID)

	if strings.TrimSpace(msg.Text) == startCommand {
		err := p.api.SendMessage(ctx, SendMessageRequest{
			ChatID: msg.Chat.ID,
			Text:   startReplyText,
		})
		if err != nil {
			p.logger.Warn("failed to confirm handshake", "error", err, "chat_id", msg.Chat.ID)
		}
	}
}
