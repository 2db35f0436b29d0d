// Package pushnotify delivers platform push notifications for newly created
// messages. Delivery happens outside the sync request: the push engine hands
// a NewMessage to a Dispatcher and never waits for the result.
package pushnotify

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// DefaultTitle is used when neither the room nor the sender has a name.
const DefaultTitle = "Chatty"

// MaxTokensPerBatch is the FCM limit for one multicast request.
const MaxTokensPerBatch = 500

// Notification is a data-only push addressed to a set of device tokens.
type Notification struct {
	Title       string
	Body        string
	CollapseKey string
	Data        map[string]string
	Tokens      []string
}

type Sender interface {
	Send(ctx context.Context, n Notification) error
}

// multicaster is the part of *messaging.Client the sender uses.
type multicaster interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

// FCMSender delivers through the Firebase Cloud Messaging v1 API.
type FCMSender struct {
	client      multicaster
	packageName string
}

type FCMOptions struct {
	ProjectID string
	// CredentialsFile is a service account key. Empty falls back to
	// Application Default Credentials.
	CredentialsFile string
	// Endpoint overrides the FCM API base URL, e.g. for an emulator. Requests
	// to an overridden endpoint are sent unauthenticated.
	Endpoint    string
	PackageName string
}

// NewFCMSender builds a Firebase messaging client for o.ProjectID.
func NewFCMSender(ctx context.Context, o FCMOptions) (*FCMSender, error) {
	var opts []option.ClientOption
	if o.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(o.CredentialsFile))
	}
	if o.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(o.Endpoint), option.WithoutAuthentication())
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: o.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase messaging: %w", err)
	}
	return &FCMSender{client: client, packageName: o.PackageName}, nil
}

// Send multicasts n in batches of MaxTokensPerBatch. Partial failures are
// tolerated; an error is returned when a request fails or no token at all
// accepted the message.
func (s *FCMSender) Send(ctx context.Context, n Notification) error {
	if len(n.Tokens) == 0 {
		return nil
	}

	data := make(map[string]string, len(n.Data)+2)
	for k, v := range n.Data {
		data[k] = v
	}
	if n.Title != "" {
		data["title"] = n.Title
	}
	if n.Body != "" {
		data["body"] = n.Body
	}

	var (
		delivered int
		firstErr  error
	)
	for start := 0; start < len(n.Tokens); start += MaxTokensPerBatch {
		end := min(start+MaxTokensPerBatch, len(n.Tokens))
		resp, err := s.client.SendEachForMulticast(ctx, s.message(n, data, n.Tokens[start:end]))
		if err != nil {
			return fmt.Errorf("fcm send: %w", err)
		}
		delivered += resp.SuccessCount
		if firstErr == nil {
			for _, r := range resp.Responses {
				if r != nil && !r.Success && r.Error != nil {
					firstErr = r.Error
					break
				}
			}
		}
	}

	if delivered == 0 {
		if firstErr == nil {
			firstErr = fmt.Errorf("no token accepted")
		}
		return fmt.Errorf("fcm send: %d tokens failed: %w", len(n.Tokens), firstErr)
	}
	return nil
}

func (s *FCMSender) message(n Notification, data map[string]string, tokens []string) *messaging.MulticastMessage {
	return &messaging.MulticastMessage{
		Tokens: tokens,
		Data:   data,
		Android: &messaging.AndroidConfig{
			CollapseKey:           n.CollapseKey,
			Priority:              "high",
			RestrictedPackageName: s.packageName,
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{ContentAvailable: true},
			},
		},
	}
}
