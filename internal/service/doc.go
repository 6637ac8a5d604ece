// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the decisions behind the authentication gate:
// verifying basic credentials, issuing access tokens and verifying them.
//
// Services depend on [store.CredentialStore] and a [SecretProvider] only,
// and never touch HTTP types.
package service
