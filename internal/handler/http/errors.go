// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// ErrNoTokenProvided is returned by the authentication middleware when the
// request carries neither a "token" cookie nor an "Authorization" header.
// Callers can match against it with [errors.Is].
var ErrNoTokenProvided = errors.New("access denied: no token provided")
