// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package logging provides the go-kit logging conventions used by the hello service:
a standard set of logging keys, level filtering driven by Options, rolling file output,
and helpers for routing log output into tests.
*/
package logging
