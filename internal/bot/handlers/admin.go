package handlers

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/daypulse/daypulse/internal/export"
	"github.com/daypulse/daypulse/internal/models"
)

func (h *Handlers) isAdmin(user *models.User) bool {
	return h.adminUserID != 0 && user.UserID == h.adminUserID
}

// handleExport sends the streak report for all users as a CSV document.
func (h *Handlers) handleExport(ctx context.Context, msg *tgbotapi.Message, user *models.User) {
	if !h.isAdmin(user) {
		h.sendMessage(msg.Chat.ID, "This command is admin-only.")
		return
	}

	now := time.Now()
	rows, err := export.BuildStreakRows(ctx, h.repos.User, h.repos.Habit, now)
	if err != nil {
		log.Printf("Failed to build streak report: %v", err)
		h.sendMessage(msg.Chat.ID, "Could not build the report.")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteStreakCSV(&buf, rows); err != nil {
		log.Printf("Failed to write streak report: %v", err)
		h.sendMessage(msg.Chat.ID, "Could not build the report.")
		return
	}

	doc := tgbotapi.NewDocument(msg.Chat.ID, tgbotapi.FileBytes{
		Name:  fmt.Sprintf("streaks-%s.csv", now.Format("2006-01-02")),
		Bytes: buf.Bytes(),
	})
	if _, err := h.api.Send(doc); err != nil {
		log.Printf("Failed to send report: %v", err)
	}
}

func (h *Handlers) handleBan(ctx context.Context, msg *tgbotapi.Message, user *models.User, banned bool) {
	if !h.isAdmin(user) {
		h.sendMessage(msg.Chat.ID, "This command is admin-only.")
		return
	}

	targetID, err := strconv.ParseInt(strings.TrimSpace(msg.CommandArguments()), 10, 64)
	if err != nil || targetID == 0 {
		h.sendMessage(msg.Chat.ID, fmt.Sprintf("Usage: /%s user_id", msg.Command()))
		return
	}
	if targetID == h.adminUserID {
		h.sendMessage(msg.Chat.ID, "Refusing to ban the admin account.")
		return
	}

	if err := h.repos.User.SetBanned(ctx, targetID, banned); err != nil {
		log.Printf("Failed to update ban state: %v", err)
		h.sendMessage(msg.Chat.ID, "Could not update the user.")
		return
	}
	if banned {
		h.sendMessage(msg.Chat.ID, fmt.Sprintf("User %d banned.", targetID))
	} else {
		h.sendMessage(msg.Chat.ID, fmt.Sprintf("User %d unbanned.", targetID))
	}
}
