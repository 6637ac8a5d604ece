// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the service.
//
// Every request passes an ordered middleware pipeline fixed in [Handler.Init]:
// trace id, access log, metrics, panic recovery, trailing slash removal,
// request deadline, the basic authentication layer and the token
// authentication layer. Only then is it routed.
//
// Every failure on the way out, whether a gate rejection, an unknown route,
// a wrong method, a handler error or a panic, is written by
// [Handler.writeError] as {"message": "..."} with the status of its
// [failure.Kind].
package http
