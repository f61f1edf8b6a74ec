package platform

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Firebase bundles the platform clients constructed once at startup and
// injected into the services that need them.
type Firebase struct {
	App       *firebase.App
	Auth      *auth.Client
	Messaging *messaging.Client
}

// InitFirebase initializes the app plus its auth and messaging clients.
// With an empty credentialsFile the SDK resolves application-default
// credentials from the environment.
func InitFirebase(ctx context.Context, credentialsFile, projectID string) (*Firebase, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	var conf *firebase.Config
	if projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}
	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth client: %w", err)
	}
	msgClient, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase messaging client: %w", err)
	}
	return &Firebase{App: app, Auth: authClient, Messaging: msgClient}, nil
}
