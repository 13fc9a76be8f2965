// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package server provides the standard approach to configuring, binding, and running the
hello service's HTTP listeners.

A Builder turns a Configuration into Runnables.  Running the primary Runnable binds the
listener synchronously, so a bind failure is reported to the caller as a *BindError before
anything is served, and then serves requests on a background goroutine for the life of the
process.
*/
package server
