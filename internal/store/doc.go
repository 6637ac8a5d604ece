// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the credential stores consulted by the basic
// authentication layer.
//
// Three implementations of [CredentialStore] are provided:
//   - a static table built once from configuration, passwords kept as bcrypt hashes;
//   - a SQL repository over SQLite or PostgreSQL, queries built with squirrel;
//   - a chain that asks several stores in order.
package store
