package storage

import "errors"

var ErrSessionNotFound = errors.New("session not found in storage")
