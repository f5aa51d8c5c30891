// internal/catalog/notifier.go
package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ContactEvent is the structured message emitted when a buyer contacts a
// supplier. Nothing is persisted; the event is handed to the notifier once.
type ContactEvent struct {
	InquiryID   uuid.UUID
	ProductID   uint
	ProductName string
	Supplier    string
	BuyerName   string
	BuyerEmail  string
	Message     string
	Timestamp   time.Time
}

// Notifier receives contact events fire-and-forget.
type Notifier interface {
	NotifyContact(ctx context.Context, ev ContactEvent)
}

// LogNotifier writes contact events to the structured log. It stands in for
// an outbound email or webhook sink.
type LogNotifier struct {
	log *logrus.Logger
}

func NewLogNotifier(log *logrus.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) NotifyContact(ctx context.Context, ev ContactEvent) {
	n.log.WithFields(logrus.Fields{
		"inquiry_id":  ev.InquiryID.String(),
		"product_id":  ev.ProductID,
		"product":     ev.ProductName,
		"supplier":    ev.Supplier,
		"buyer_name":  ev.BuyerName,
		"buyer_email": ev.BuyerEmail,
		"message":     ev.Message,
		"timestamp":   ev.Timestamp.Format(time.RFC3339),
	}).Info("New contact request")
}
