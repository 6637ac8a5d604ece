// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credential is a username with the bcrypt hash of its password.
// Plain-text passwords never leave the request that carried them.
type Credential struct {
	// Username is the unique login presented in the Basic Authorization header.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the password. Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is set by the SQL store; zero for statically configured users.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Credential model.
func (c Credential) TableName() string {
	return "credentials"
}
