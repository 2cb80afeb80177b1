package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"time"

	"fuelradar/internal/domain/entity"

	"github.com/pkg/errors"
)

// Message attribute keys shared by publishers and the push worker.
const (
	AttrEventID   = "event_id"
	AttrUserID    = "user_id"
	AttrRequestID = "request_id"
)

// PushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushMessage wraps an alert event in a push envelope.
func NewPushMessage(event *entity.AlertEvent, requestID, subscription string) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = event.EventID.String()
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	msg.Message.Attributes = eventAttributes(event, requestID)

	return msg, nil
}

// DecodeEvent extracts the alert event carried by the push envelope.
func (m *PushMessage) DecodeEvent() (*entity.AlertEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event entity.AlertEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse alert event")
	}

	return &event, nil
}

// eventAttributes builds message attributes for filtering and tracing.
func eventAttributes(event *entity.AlertEvent, requestID string) map[string]string {
	attributes := map[string]string{
		AttrEventID: event.EventID.String(),
	}
	if event.Notification != nil {
		attributes[AttrUserID] = strconv.FormatInt(event.Notification.UserID, 10)
	}
	if requestID != "" {
		attributes[AttrRequestID] = requestID
	}

	return attributes
}
