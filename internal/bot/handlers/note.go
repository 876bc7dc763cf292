package handlers

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/daypulse/daypulse/internal/models"
)

func (h *Handlers) handleNote(ctx context.Context, msg *tgbotapi.Message) {
	args := strings.TrimSpace(msg.CommandArguments())
	if args == "" {
		h.sendMessage(msg.Chat.ID, "Usage: /note title | content")
		return
	}

	note := &models.Note{UserID: msg.From.ID}
	if title, content, found := strings.Cut(args, "|"); found {
		note.Title = strings.TrimSpace(title)
		note.Content = strings.TrimSpace(content)
	} else {
		note.Title = args
	}

	if err := h.repos.Note.Create(ctx, note); err != nil {
		log.Printf("Failed to create note: %v", err)
		h.sendMessage(msg.Chat.ID, "Could not save the note.")
		return
	}
	h.sendMessage(msg.Chat.ID, fmt.Sprintf("📝 Saved: %s", note.Title))
}

func (h *Handlers) handleNoteList(ctx context.Context, msg *tgbotapi.Message) {
	notes, err := h.repos.Note.ListByUser(ctx, msg.From.ID)
	if err != nil {
		log.Printf("Failed to load notes: %v", err)
		h.sendMessage(msg.Chat.ID, "Could not load your notes.")
		return
	}
	if len(notes) == 0 {
		h.sendMessage(msg.Chat.ID, "No notes yet. Save one with /note")
		return
	}

	var b strings.Builder
	b.WriteString("📝 Notes\n")
	for i, note := range notes {
		fmt.Fprintf(&b, "%d. %s", i+1, note.Title)
		if note.Content != "" {
			fmt.Fprintf(&b, " - %s", note.Content)
		}
		b.WriteString("\n")
	}
	h.sendMessage(msg.Chat.ID, b.String())
}

func (h *Handlers) handleNoteDelete(ctx context.Context, msg *tgbotapi.Message) {
	index, err := strconv.Atoi(strings.TrimSpace(msg.CommandArguments()))
	if err != nil || index < 1 {
		h.sendMessage(msg.Chat.ID, "Usage: /delnote N (number from /notes)")
		return
	}

	notes, err := h.repos.Note.ListByUser(ctx, msg.From.ID)
	if err != nil || index > len(notes) {
		h.sendMessage(msg.Chat.ID, "No such note, check /notes")
		return
	}

	note := notes[index-1]
	if err := h.repos.Note.Delete(ctx, note.NoteID, msg.From.ID); err != nil {
		log.Printf("Failed to delete note: %v", err)
		h.sendMessage(msg.Chat.ID, "Could not delete the note.")
		return
	}
	h.sendMessage(msg.Chat.ID, fmt.Sprintf("Deleted: %s", note.Title))
}
