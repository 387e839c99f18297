package utils

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseInit initializes the Firebase app and its Auth client from the
// service-account credentials. The Auth handle is created at startup so a
// bad credential fails fast; nothing in the current flows consumes it yet.
func FirebaseInit(ctx context.Context, projectID, credentialsFile string) (*firebase.App, *auth.Client, error) {
	opt := option.WithCredentialsFile(credentialsFile)
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opt)
	if err != nil {
		return nil, nil, fmt.Errorf("firebase: error initializing app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("firebase: error getting Auth client: %w", err)
	}
	return app, authClient, nil
}
