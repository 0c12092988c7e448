package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/suprimaaldino/pempek-domino/internal/config"
	"github.com/suprimaaldino/pempek-domino/internal/domain/entities"
	"github.com/suprimaaldino/pempek-domino/internal/infrastructure/logger"
)

// Notifier posts a Markdown order summary to a Telegram chat via the
// bot sendMessage API. When the bot token or chat id is unconfigured it
// logs and does nothing.
type Notifier struct {
	cfg    config.NotifyConfig
	client *http.Client
	logger *logger.Logger
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

func NewNotifier(cfg config.NotifyConfig, logger *logger.Logger) *Notifier {
	return &Notifier{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

func (n *Notifier) NotifyOrderCreated(ctx context.Context, order *entities.Order) error {
	if n.cfg.BotToken == "" || n.cfg.ChatID == "" {
		n.logger.Info("Notification credentials not configured, skipping", "order_id", order.ID)
		return nil
	}

	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    n.cfg.ChatID,
		Text:      FormatOrderMessage(order),
		ParseMode: "Markdown",
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.cfg.APIBase, n.cfg.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("notification rejected with status %d", resp.StatusCode)
	}

	n.logger.Info("Order notification sent", "order_id", order.ID)
	return nil
}

// FormatOrderMessage renders the summary the kitchen sees in Telegram,
// one bullet per line item and rupiah amounts with thousands separators.
func FormatOrderMessage(order *entities.Order) string {
	var items strings.Builder
	for i, item := range order.Items {
		if i > 0 {
			items.WriteString("\n")
		}
		fmt.Fprintf(&items, "• %s x%d = Rp %s", item.Name, item.Quantity, FormatThousands(item.Subtotal))
	}

	return fmt.Sprintf(`🍽️ *PESANAN BARU PEMPEK DOMINO* 🍽️

👤 *Pelanggan:* %s
📱 *Telepon:* %s
📍 *Alamat:* %s

🛍️ *Pesanan:*
%s

💰 *Total:* Rp %s
🕐 *Waktu:* %s

Status: ⏳ Menunggu Konfirmasi`,
		order.CustomerName,
		order.CustomerPhone,
		order.CustomerAddress,
		items.String(),
		FormatThousands(order.TotalAmount),
		order.CreatedAt)
}

// FormatThousands groups digits in threes with commas: 1234567 -> "1,234,567".
func FormatThousands(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
