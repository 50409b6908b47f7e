package testutil

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AlainDede/Delphinium-gestion-site/core/session"
)

var signingKey = []byte("not-checked-by-the-portal")

// MakeIDToken signs an identity token naming `groups`. A nil `groups` omits the claim.
func MakeIDToken(t testing.TB, groups ...string) string {
	t.Helper()
	claims := session.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "resident-42", Issuer: "https://cognito.test"},
		Groups:           groups,
		Username:         "jdupont",
		Email:            "jdupont@delphinium.test",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		t.Fatalf("MakeIDToken() failed: %v", err)
	}
	return token
}

// MakeTokens returns a full token set whose identity token names `groups`.
func MakeTokens(t testing.TB, groups ...string) session.Tokens {
	t.Helper()
	return session.Tokens{
		AccessToken:  "access-" + t.Name(),
		IDToken:      MakeIDToken(t, groups...),
		RefreshToken: "refresh-" + t.Name(),
	}
}
