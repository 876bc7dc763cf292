// Package alert delivers fired reminders to the user. Delivery is
// fire-and-forget: the engine never waits on or reacts to the outcome.
package alert

import (
	"context"

	"github.com/daypulse/daypulse/internal/models"
)

type Alerter interface {
	// PlayAlert requests one alert for one firing. Implementations log and
	// swallow their own failures; a missed alert must never surface as an
	// error to the scheduling loop.
	PlayAlert(ctx context.Context, userID int64, sound models.AlarmSound, message string)
}
