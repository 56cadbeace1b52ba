package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrWorkflowNotFound   = errors.New("workflow not found")

	// ErrUnauthenticated is the single failure category exposed for any
	// rejected bearer token. Callers must not be able to tell why a token
	// was refused.
	ErrUnauthenticated = errors.New("could not validate credentials")
)

// Token rejection kinds. All wrap ErrUnauthenticated so the boundary
// collapses them into one 401, while logs and metrics can still tell
// them apart with errors.Is.
var (
	ErrTokenExpired      = fmt.Errorf("%w: token expired", ErrUnauthenticated)
	ErrTokenMalformed    = fmt.Errorf("%w: token malformed", ErrUnauthenticated)
	ErrTokenSignature    = fmt.Errorf("%w: bad token signature", ErrUnauthenticated)
	ErrTokenUnknownUser  = fmt.Errorf("%w: subject no longer exists", ErrUnauthenticated)
	ErrTokenEmptySubject = fmt.Errorf("%w: token has no subject", ErrUnauthenticated)
)
