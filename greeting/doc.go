// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package greeting serves the hello service's single route: GET / answers 200 with the
plain text body "Hello, World!".
*/
package greeting
