package messaging

import (
	"context"

	fcm "firebase.google.com/go/v4/messaging"
)

// Notification is a payload delivered to a single device token.
type Notification struct {
	Token string
	Title string
	Body  string
}

// Sender delivers a notification and returns the provider's receipt id.
type Sender interface {
	Send(ctx context.Context, n Notification) (string, error)
}

// FCMSender implements Sender using the Firebase Cloud Messaging SDK.
type FCMSender struct {
	client *fcm.Client
}

func NewFCMSender(c *fcm.Client) *FCMSender {
	return &FCMSender{client: c}
}

func (s *FCMSender) Send(ctx context.Context, n Notification) (string, error) {
	msg := &fcm.Message{
		Token: n.Token,
		Notification: &fcm.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
	}
	return s.client.Send(ctx, msg)
}
