package authn

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}

func TestInsecureVerifierParsesClaims(t *testing.T) {
	raw := signedTestToken(t, jwt.MapClaims{"user_id": "u-1", "email": "u@example.com"})

	tok, err := NewInsecureVerifier().Verify(context.Background(), raw)
	require.NoError(t, err)

	var claims map[string]interface{}
	require.NoError(t, tok.Claims(&claims))
	require.Equal(t, "u-1", claims["user_id"])
	require.Equal(t, "u@example.com", claims["email"])
}

func TestInsecureVerifierRejectsGarbage(t *testing.T) {
	_, err := NewInsecureVerifier().Verify(context.Background(), "not-a-jwt")
	require.Error(t, err)
}

func TestFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	require.Nil(t, FromContext(c))

	c.Set("claims", map[string]interface{}{"user_id": "u-2", "email": "two@example.com"})
	id := FromContext(c)
	require.NotNil(t, id)
	require.Equal(t, "u-2", id.UID)
	require.Equal(t, "two@example.com", id.Email)

	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	c2.Set("claims", map[string]interface{}{"sub": "subject-3"})
	id2 := FromContext(c2)
	require.NotNil(t, id2)
	require.Equal(t, "subject-3", id2.UID)
}
