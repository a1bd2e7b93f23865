package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

// DefaultReminderHorizonDays bounds the upcoming-reminders window.
const DefaultReminderHorizonDays = 30

// LatestFollowUp returns the greatest reminder timestamp among the given
// conversations, past or future. This is the per-lead "Next Follow Up"
// display rule. Returns nil when no conversation has a reminder.
func LatestFollowUp(conversations []entity.Conversation) *time.Time {
	var latest *time.Time
	for i := range conversations {
		r := conversations[i].Reminder
		if r == nil {
			continue
		}
		if latest == nil || r.After(*latest) {
			latest = r
		}
	}
	return latest
}

// NextPendingFollowUp is the stricter variant of LatestFollowUp: it only
// considers reminders that are still in the future at now. The two rules are
// kept separate on purpose; they serve different consumers.
func NextPendingFollowUp(conversations []entity.Conversation, now time.Time) *time.Time {
	var latest *time.Time
	for i := range conversations {
		r := conversations[i].Reminder
		if r == nil || !r.After(now) {
			continue
		}
		if latest == nil || r.After(*latest) {
			latest = r
		}
	}
	return latest
}

// UpcomingReminders scans every conversation of the given leads and emits one
// entry per reminder falling within [now, now+horizonDays], ascending by
// reminder date. It is a pure derivation: same input, same output.
func UpcomingReminders(leads []*entity.Lead, horizonDays int, now time.Time) []Reminder {
	horizon := now.AddDate(0, 0, horizonDays)

	reminders := []Reminder{}
	for _, lead := range leads {
		for i := range lead.Conversations {
			conv := &lead.Conversations[i]
			if conv.Reminder == nil {
				continue
			}
			r := *conv.Reminder
			if r.Before(now) || r.After(horizon) {
				continue
			}
			reminders = append(reminders, Reminder{
				LeadID:       lead.ID,
				LeadName:     lead.Name,
				ReminderDate: r,
				Type:         conv.Type,
				Content:      conv.Content,
			})
		}
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].ReminderDate.Before(reminders[j].ReminderDate)
	})

	return reminders
}

// FormatRelativeDate renders a reminder date the way the notification list
// shows it: "Today", "Tomorrow", or a plain date.
func FormatRelativeDate(date, now time.Time) string {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}

	tomorrow := now.AddDate(0, 0, 1)
	y3, m3, d3 := tomorrow.Date()
	if y1 == y3 && m1 == m3 && d1 == d3 {
		return "Tomorrow"
	}

	return date.Format("Jan 2, 2006")
}

// UpcomingRemindersUseCase exposes the derived reminder view over the stored
// leads. Recomputed on every call, never persisted.
type UpcomingRemindersUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewUpcomingRemindersUseCase(repo entity.LeadRepositoryInterface) *UpcomingRemindersUseCase {
	return &UpcomingRemindersUseCase{Repo: repo}
}

func (uc *UpcomingRemindersUseCase) Execute(ctx context.Context, horizonDays int) ([]Reminder, error) {
	if horizonDays <= 0 {
		horizonDays = DefaultReminderHorizonDays
	}

	leads, err := uc.Repo.List(ctx, entity.LeadFilter{Order: entity.OrderUpdatedDesc})
	if err != nil {
		return nil, err
	}

	return UpcomingReminders(leads, horizonDays, time.Now().UTC()), nil
}
