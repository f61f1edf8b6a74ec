package identity

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// Account is the result of creating a platform user account.
type Account struct {
	UID   string
	Email string
}

// Client creates authenticated user accounts on the identity platform.
type Client interface {
	CreateUser(ctx context.Context, email, displayName string) (*Account, error)
}

// FirebaseClient implements Client using the Firebase Auth SDK.
type FirebaseClient struct {
	auth *auth.Client
}

func NewFirebaseClient(a *auth.Client) *FirebaseClient {
	return &FirebaseClient{auth: a}
}

// CreateUser provisions an account with emailVerified forced to false.
func (c *FirebaseClient) CreateUser(ctx context.Context, email, displayName string) (*Account, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		DisplayName(displayName).
		EmailVerified(false)
	rec, err := c.auth.CreateUser(ctx, params)
	if err != nil {
		return nil, err
	}
	return &Account{UID: rec.UID, Email: rec.Email}, nil
}
