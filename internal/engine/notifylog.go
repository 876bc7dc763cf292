package engine

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/daypulse/daypulse/internal/models"
)

// maxLogEntries caps the per-user notification log; the oldest entries are
// truncated on append once the cap is reached.
const maxLogEntries = 50

// NotificationStore persists the log so it survives restarts. The in-memory
// log is authoritative for reads during a session; every mutation is written
// through. A nil store keeps the log memory-only.
type NotificationStore interface {
	Insert(ctx context.Context, n *models.Notification) error
	ListRecent(ctx context.Context, userID int64, limit int) ([]*models.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) error
}

// NotificationLog is a bounded, newest-first log of fired reminders with
// read/unread state, kept per user.
type NotificationLog struct {
	mu      sync.Mutex
	store   NotificationStore
	entries map[int64][]*models.Notification
	loaded  map[int64]bool
}

func NewNotificationLog(store NotificationStore) *NotificationLog {
	return &NotificationLog{
		store:   store,
		entries: make(map[int64][]*models.Notification),
		loaded:  make(map[int64]bool),
	}
}

// Append prepends a new unread notification and truncates the log past the
// cap. Persistence failures are logged and ignored; a reminder that cannot
// be stored still shows up for the rest of the session.
func (l *NotificationLog) Append(ctx context.Context, userID int64, message string) *models.Notification {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ensureLoaded(ctx, userID)

	n := &models.Notification{
		UserID:    userID,
		Message:   message,
		Read:      false,
		CreatedAt: time.Now(),
	}
	if l.store != nil {
		if err := l.store.Insert(ctx, n); err != nil {
			log.Printf("Failed to persist notification for user %d: %v", userID, err)
		}
	}

	entries := append([]*models.Notification{n}, l.entries[userID]...)
	if len(entries) > maxLogEntries {
		entries = entries[:maxLogEntries]
	}
	l.entries[userID] = entries
	return n
}

// Recent returns the log newest-first, at most the cap.
func (l *NotificationLog) Recent(ctx context.Context, userID int64) []*models.Notification {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ensureLoaded(ctx, userID)

	entries := l.entries[userID]
	out := make([]*models.Notification, len(entries))
	copy(out, entries)
	return out
}

func (l *NotificationLog) UnreadCount(ctx context.Context, userID int64) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ensureLoaded(ctx, userID)

	count := 0
	for _, n := range l.entries[userID] {
		if !n.Read {
			count++
		}
	}
	return count
}

func (l *NotificationLog) MarkAllRead(ctx context.Context, userID int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ensureLoaded(ctx, userID)

	for _, n := range l.entries[userID] {
		n.Read = true
	}
	if l.store != nil {
		if err := l.store.MarkAllRead(ctx, userID); err != nil {
			log.Printf("Failed to mark notifications read for user %d: %v", userID, err)
		}
	}
}

// ensureLoaded lazily seeds a user's in-memory log from the store. Callers
// must hold the lock. A load failure degrades to an empty log rather than
// blocking reminders.
func (l *NotificationLog) ensureLoaded(ctx context.Context, userID int64) {
	if l.loaded[userID] {
		return
	}
	l.loaded[userID] = true
	if l.store == nil {
		return
	}
	entries, err := l.store.ListRecent(ctx, userID, maxLogEntries)
	if err != nil {
		log.Printf("Failed to load notifications for user %d: %v", userID, err)
		return
	}
	l.entries[userID] = entries
}
