package handlers

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handlers) handleNotifications(ctx context.Context, msg *tgbotapi.Message) {
	logbook := h.engine.Log()
	entries := logbook.Recent(ctx, msg.From.ID)
	if len(entries) == 0 {
		h.sendMessage(msg.Chat.ID, "No reminders have fired yet.")
		return
	}

	unread := logbook.UnreadCount(ctx, msg.From.ID)

	var b strings.Builder
	fmt.Fprintf(&b, "🔔 Reminder history (%d unread)\n\n", unread)
	for _, n := range entries {
		mark := " "
		if !n.Read {
			mark = "•"
		}
		fmt.Fprintf(&b, "%s %s %s\n", mark, n.CreatedAt.Format("01-02 15:04"), n.Message)
	}
	h.sendMessage(msg.Chat.ID, b.String())

	logbook.MarkAllRead(ctx, msg.From.ID)
}
