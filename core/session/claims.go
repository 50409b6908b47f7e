package session

import "github.com/golang-jwt/jwt/v5"

// IdentityClaims are the claims of the identity token the auth gateway issues.
type IdentityClaims struct {
	jwt.RegisteredClaims
	Groups   []string `json:"cognito:groups,omitempty"`
	Username string   `json:"cognito:username,omitempty"`
	Email    string   `json:"email,omitempty"`
}

// Role returns the Role named by the first group, or DefaultRole.
func (c IdentityClaims) Role() Role {
	if len(c.Groups) == 0 {
		return DefaultRole
	}
	return ParseRole(c.Groups[0])
}

// DecodeClaims reads the claims segment of an identity token WITHOUT verifying its signature.
// Any decoding failure yields empty claims.
func DecodeClaims(idToken string) IdentityClaims {
	var claims IdentityClaims
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, &claims); err != nil {
		return IdentityClaims{}
	}
	return claims
}

// DecodeRole derives the navigation Role from an identity token. Malformed tokens yield DefaultRole.
func DecodeRole(idToken string) Role {
	return DecodeClaims(idToken).Role()
}
