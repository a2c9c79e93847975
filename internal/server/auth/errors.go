package auth

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/todokeeper/internal/common"
)

// Credential failures. Each one wraps common.ErrorUnauthorized, so transports
// can map the whole family with a single errors.Is check.
var (
	ErrMissing   = fmt.Errorf("%w: missing bearer credential", common.ErrorUnauthorized)
	ErrMalformed = fmt.Errorf("%w: malformed token", common.ErrorUnauthorized)
	ErrInvalid   = fmt.Errorf("%w: invalid token", common.ErrorUnauthorized)
)

// ErrEmptySecret is returned when a signer or verifier is built without a key.
var ErrEmptySecret = errors.New("empty signing secret")
