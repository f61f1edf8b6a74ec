package callable

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/tasknest/tasknest-api/internal/authn"
	"github.com/tasknest/tasknest-api/internal/identity"
	"github.com/tasknest/tasknest-api/internal/messaging"
)

type fakeIdentityClient struct {
	created []string
	err     error
}

func (f *fakeIdentityClient) CreateUser(ctx context.Context, email, displayName string) (*identity.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, email)
	return &identity.Account{UID: "uid-" + email, Email: email}, nil
}

type fakeSender struct {
	sent []messaging.Notification
	err  error
}

func (f *fakeSender) Send(ctx context.Context, n messaging.Notification) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, n)
	return "msg-123", nil
}

func TestCreateUserRequiresAuth(t *testing.T) {
	idc := &fakeIdentityClient{}
	h := CreateUser(idc)

	_, err := h(context.Background(), Request{Data: []byte(`{"email":"a@b.c","displayName":"A"}`)})
	var ce *Error
	require.True(t, errors.As(err, &ce))
	require.Equal(t, CodeUnauthenticated, ce.Code)
	// no provider call on the unauthenticated path
	require.Empty(t, idc.created)
}

func TestCreateUserSuccess(t *testing.T) {
	idc := &fakeIdentityClient{}
	h := CreateUser(idc)

	res, err := h(context.Background(), Request{
		Data: []byte(`{"email":"a@b.c","displayName":"A"}`),
		Auth: &authn.Identity{UID: "caller-1"},
	})
	require.NoError(t, err)
	out := res.(map[string]interface{})
	require.Equal(t, "uid-a@b.c", out["uid"])
	require.Equal(t, "a@b.c", out["email"])
	require.Equal(t, []string{"a@b.c"}, idc.created)
}

func TestCreateUserProviderFailure(t *testing.T) {
	idc := &fakeIdentityClient{err: fmt.Errorf("EMAIL_EXISTS")}
	h := CreateUser(idc)

	_, err := h(context.Background(), Request{
		Data: []byte(`{"email":"a@b.c"}`),
		Auth: &authn.Identity{UID: "caller-1"},
	})
	var ce *Error
	require.True(t, errors.As(err, &ce))
	require.Equal(t, CodeInternal, ce.Code)
	require.Equal(t, "EMAIL_EXISTS", ce.Message)
}

func TestSendNotification(t *testing.T) {
	s := &fakeSender{}
	h := SendNotification(s)

	// unauthenticated
	_, err := h(context.Background(), Request{Data: []byte(`{"token":"t"}`)})
	var ce *Error
	require.True(t, errors.As(err, &ce))
	require.Equal(t, CodeUnauthenticated, ce.Code)
	require.Empty(t, s.sent)

	// authenticated
	res, err := h(context.Background(), Request{
		Data: []byte(`{"token":"device-1","title":"hi","body":"there"}`),
		Auth: &authn.Identity{UID: "caller-1"},
	})
	require.NoError(t, err)
	out := res.(map[string]interface{})
	require.Equal(t, true, out["success"])
	require.Equal(t, "msg-123", out["messageId"])
	require.Len(t, s.sent, 1)
	require.Equal(t, "device-1", s.sent[0].Token)
}

func TestDispatcherUnknownOperation(t *testing.T) {
	d := NewDispatcher()
	_, err := d.Invoke(context.Background(), "nope", Request{})
	var ce *Error
	require.True(t, errors.As(err, &ce))
	require.Equal(t, CodeNotFound, ce.Code)
}

func TestHTTPAdapter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	idc := &fakeIdentityClient{}
	d := NewDispatcher()
	d.Register("createUser", CreateUser(idc))

	g := gin.New()
	// stand-in for the identity middleware
	g.Use(func(c *gin.Context) {
		if c.GetHeader("X-Test-Auth") == "yes" {
			c.Set("claims", map[string]interface{}{"user_id": "caller-1"})
		}
		c.Next()
	})
	RegisterHTTP(g, d)

	// unauthenticated -> 401 with structured error
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/callable/createUser", strings.NewReader(`{"email":"a@b.c"}`))
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	var failed struct {
		Error Error `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &failed))
	require.Equal(t, CodeUnauthenticated, failed.Error.Code)

	// authenticated -> result envelope
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/callable/createUser", strings.NewReader(`{"email":"a@b.c","displayName":"A"}`))
	req.Header.Set("X-Test-Auth", "yes")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var ok struct {
		Result map[string]interface{} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ok))
	require.Equal(t, "uid-a@b.c", ok.Result["uid"])
}
