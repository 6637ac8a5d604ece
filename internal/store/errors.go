// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by credential stores. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrCredentialNotFound is returned when no store knows the username.
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrCredentialAlreadyExists is returned when a credential with the same
	// username is already stored.
	ErrCredentialAlreadyExists = errors.New("credential already exists")

	// ErrEmptyCredential is returned when a username or password hash is empty.
	ErrEmptyCredential = errors.New("username and password hash must not be empty")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a query fails in the driver.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a result row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan credential row")

	// ErrOpeningDB is returned when the database cannot be opened or pinged.
	ErrOpeningDB = errors.New("error opening database")
)
