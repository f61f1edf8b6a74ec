package callable

import (
	"context"
	"encoding/json"

	"github.com/tasknest/tasknest-api/internal/identity"
	"github.com/tasknest/tasknest-api/internal/messaging"
)

const authRequiredMsg = "The function must be called while authenticated."

// CreateUser provisions an identity-platform account for an authenticated
// caller. The payload carries email and displayName; the account is created
// with emailVerified false.
func CreateUser(idc identity.Client) Handler {
	return func(ctx context.Context, req Request) (interface{}, error) {
		if req.Auth == nil {
			return nil, Unauthenticated(authRequiredMsg)
		}
		var p struct {
			Email       string `json:"email"`
			DisplayName string `json:"displayName"`
		}
		if err := json.Unmarshal(req.Data, &p); err != nil {
			return nil, InvalidArgument(err.Error())
		}
		acct, err := idc.CreateUser(ctx, p.Email, p.DisplayName)
		if err != nil {
			return nil, Internal(err.Error())
		}
		return map[string]interface{}{"uid": acct.UID, "email": acct.Email}, nil
	}
}

// SendNotification delivers a push payload to a single device token on
// behalf of an authenticated caller.
func SendNotification(sender messaging.Sender) Handler {
	return func(ctx context.Context, req Request) (interface{}, error) {
		if req.Auth == nil {
			return nil, Unauthenticated(authRequiredMsg)
		}
		var p struct {
			Token string `json:"token"`
			Title string `json:"title"`
			Body  string `json:"body"`
		}
		if err := json.Unmarshal(req.Data, &p); err != nil {
			return nil, InvalidArgument(err.Error())
		}
		id, err := sender.Send(ctx, messaging.Notification{Token: p.Token, Title: p.Title, Body: p.Body})
		if err != nil {
			return nil, Internal(err.Error())
		}
		return map[string]interface{}{"success": true, "messageId": id}, nil
	}
}
