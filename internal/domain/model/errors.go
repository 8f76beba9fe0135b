package model

import "errors"

// ErrInvalidProfile marks precondition failures on profile construction.
// Transport layers map it to an invalid-request status.
var ErrInvalidProfile = errors.New("invalid profile")
