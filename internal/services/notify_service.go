package services

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/bimma2006/dhanukayaff/config"
	"github.com/bimma2006/dhanukayaff/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

var whatsappNumberJunk = regexp.MustCompile(`[\s+\-()]`)

// NotifyNewOrder builds the "new order" alert and dispatches it on the
// configured channels: a wa.me link derived from the store's WhatsApp number
// (logged for the admin to open), and a Telegram message when a bot token is
// configured. Dispatch is best-effort; failures are logged and never reach
// the customer flow. The WhatsApp number is passed in so callers read the
// settings store before handing off to a goroutine; NotifyNewOrder itself
// never touches shared state.
func NotifyNewOrder(order models.Order, whatsappNumber string) {
	message := newOrderMessage(order)

	number := whatsappNumberJunk.ReplaceAllString(whatsappNumber, "")
	if number != "" {
		link := "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
		zap.L().Info("whatsapp alert ready",
			zap.Int64("order_id", order.ID),
			zap.String("number", "+"+number),
			zap.String("link", link))
	}

	sendTelegramAlert(order.ID, message)
}

func newOrderMessage(order models.Order) string {
	lines := []string{
		"NEW ORDER RECEIVED!",
		"",
		fmt.Sprintf("Order ID: #%d", order.ID),
		"Time: " + order.Timestamp.Format("2006-01-02 15:04:05"),
		"",
		"Player Name: " + orDash(order.PlayerName, "Unknown"),
		"Player ID: " + order.PlayerID,
		"Pack: " + orDash(order.Pack.Diamonds.String(), "-"),
		"Price: " + orDash(order.Pack.Price, "-"),
		"Payment: " + orDash(order.PaymentMethod, "-"),
		"",
		"Please process this order!",
	}
	return strings.Join(lines, "\n")
}

func sendTelegramAlert(orderID int64, message string) {
	cfg, err := config.LoadConfig()
	if err != nil || cfg.TelegramBotToken == "" || cfg.TelegramAdminChatID == 0 {
		return
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		zap.L().Warn("telegram bot init failed", zap.Int64("order_id", orderID), zap.Error(err))
		return
	}

	msg := tgbotapi.NewMessage(cfg.TelegramAdminChatID, message)
	if _, err := bot.Send(msg); err != nil {
		zap.L().Warn("telegram alert failed", zap.Int64("order_id", orderID), zap.Error(err))
		return
	}
	zap.L().Info("telegram alert sent", zap.Int64("order_id", orderID))
}

func orDash(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
