package feed

import (
	"context"
	"strings"

	"leadsync_backend/internal/leads/transport"
	"leadsync_backend/platform/logger"
)

// Notifier delivers a user-visible notification for a new lead. Delivery
// is at-most-once: the client marks a lead seen before notifying, so a
// failed delivery is not retried.
type Notifier interface {
	Notify(ctx context.Context, lead transport.LeadResponse) error
}

// NotificationTitle builds the headline for a lead.
func NotificationTitle(lead transport.LeadResponse) string {
	if lead.Subject != nil && *lead.Subject != "" {
		return *lead.Subject
	}
	if lead.Customer.Name != nil && *lead.Customer.Name != "" {
		return "New lead: " + *lead.Customer.Name
	}
	return "New lead"
}

// NotificationBody builds the detail lines for a lead, skipping fields
// the normalizer left empty.
func NotificationBody(lead transport.LeadResponse) string {
	var lines []string
	appendLine := func(label string, value *string) {
		if value != nil && *value != "" {
			lines = append(lines, label+": "+*value)
		}
	}

	appendLine("Email", lead.Customer.Email)
	appendLine("Phone", lead.Customer.Phone)
	if vehicle := vehicleLine(lead.Vehicle); vehicle != "" {
		lines = append(lines, "Vehicle: "+vehicle)
	}
	appendLine("Comments", lead.Comments)

	if len(lines) == 0 {
		return "No contact details provided"
	}
	return strings.Join(lines, "\n")
}

func vehicleLine(v transport.Vehicle) string {
	var parts []string
	for _, field := range []*string{v.Year, v.Make, v.Model} {
		if field != nil && *field != "" {
			parts = append(parts, *field)
		}
	}
	return strings.Join(parts, " ")
}

// LogNotifier writes notifications to the structured log. It is the
// default sink when no delivery channel is configured.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify logs the lead notification.
func (n *LogNotifier) Notify(ctx context.Context, lead transport.LeadResponse) error {
	n.log.Info("lead_notification",
		"lead_id", lead.ID.String(),
		"title", NotificationTitle(lead),
		"body", NotificationBody(lead),
	)
	return nil
}
