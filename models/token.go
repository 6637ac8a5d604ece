// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload carried by an access token.
//
// Only registered claims are used: the subject holds the username that
// passed the basic-auth login, the ID is a random token identifier.
type Claims struct {
	jwt.RegisteredClaims
}

// Username returns the authenticated username stored in the "sub" claim.
func (c Claims) Username() string {
	return c.Subject
}

// Token is an issued access token together with its decoded claims.
type Token struct {
	// SignedString is the compact JWS form sent to the client in the
	// x-access-token header.
	SignedString string `json:"-"`

	// ExpiresAt is the moment the token stops being accepted.
	ExpiresAt time.Time `json:"-"`

	// Claims are the claims the token was signed with.
	Claims Claims `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
