// Package account orchestrates registration: field validation, the
// password-strength policy, uniqueness enforcement, and persistence through
// the credential store.
package account

import "errors"

// ErrUsernameTaken is returned when the requested username already belongs
// to a persisted account, whether detected by the pre-insert check or by the
// backend's uniqueness constraint after a lost race.
var ErrUsernameTaken = errors.New("username already taken")
