package authn

import (
	"context"
	"encoding/json"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/tasknest/tasknest-api/pkg/middleware"
)

// Identity is the authenticated principal behind a request, or absent.
type Identity struct {
	UID   string
	Email string
}

// firebaseToken adapts a verified platform token to middleware.Token.
type firebaseToken struct {
	tok *auth.Token
}

func (t *firebaseToken) Claims(v interface{}) error {
	claims := map[string]interface{}{}
	for k, val := range t.tok.Claims {
		claims[k] = val
	}
	claims["user_id"] = t.tok.UID
	claims["sub"] = t.tok.Subject
	b, err := json.Marshal(claims)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

// FirebaseVerifier verifies platform ID tokens.
type FirebaseVerifier struct {
	auth *auth.Client
}

func NewFirebaseVerifier(a *auth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{auth: a}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, raw string) (middleware.Token, error) {
	tok, err := v.auth.VerifyIDToken(ctx, raw)
	if err != nil {
		return nil, err
	}
	return &firebaseToken{tok: tok}, nil
}

// FromContext rebuilds the caller identity from claims attached by the
// identity middleware. Returns nil for unauthenticated requests.
func FromContext(c *gin.Context) *Identity {
	v, ok := c.Get("claims")
	if !ok {
		return nil
	}
	cm, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	uid, _ := cm["user_id"].(string)
	if uid == "" {
		uid, _ = cm["sub"].(string)
	}
	if uid == "" {
		return nil
	}
	email, _ := cm["email"].(string)
	return &Identity{UID: uid, Email: email}
}
