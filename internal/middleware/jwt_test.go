package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"modamart/internal/common"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jwtTestSecret = "middleware-test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, userID uuid.UUID) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":      userID.String(),
		"username": "aria",
		"role":     "manager",
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

func invokeJWT(token string) (echo.Context, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/designers", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTMiddleware(jwtTestSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func TestJWTMiddleware_ValidTokenSetsIdentity(t *testing.T) {
	userID := uuid.New()
	token := signToken(t, jwt.SigningMethodHS256, []byte(jwtTestSecret), userID)

	c, err := invokeJWT(token)
	require.NoError(t, err)

	gotID, ok := common.GetUserIDFromContext(c.Request().Context())
	require.True(t, ok)
	assert.Equal(t, userID, gotID)

	role, ok := common.GetUserRoleFromContext(c.Request().Context())
	require.True(t, ok)
	assert.Equal(t, "manager", role)
}

func TestJWTMiddleware_RejectsWrongSigningMethod(t *testing.T) {
	// HS512 signed with the right secret still fails: only HS256 is
	// accepted, so an attacker cannot shop for a weaker or different
	// verification path.
	token := signToken(t, jwt.SigningMethodHS512, []byte(jwtTestSecret), uuid.New())

	_, err := invokeJWT(token)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestJWTMiddleware_RejectsUnsignedToken(t *testing.T) {
	token := signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, uuid.New())

	_, err := invokeJWT(token)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestJWTMiddleware_RejectsWrongSecret(t *testing.T) {
	token := signToken(t, jwt.SigningMethodHS256, []byte("other-secret"), uuid.New())

	_, err := invokeJWT(token)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestJWTMiddleware_RejectsMissingToken(t *testing.T) {
	_, err := invokeJWT("")
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
