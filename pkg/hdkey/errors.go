package hdkey

import (
	"errors"
	"fmt"

	"github.com/smallyu/go-hdpub/internal/crypto/curves"
)

// Errors returned by the hdkey package. None of them are retried
// internally; ErrInvalidTweak and ErrInvalidChildKey mean the caller
// should move on to the next index.
var (
	ErrMalformedKey             = curves.ErrMalformedKey
	ErrInvalidPoint             = curves.ErrInvalidPoint
	ErrPointAtInfinity          = curves.ErrPointAtInfinity
	ErrInvalidTweak             = curves.ErrInvalidTweak
	ErrInvalidChildKey          = curves.ErrInvalidChildKey
	ErrUnsupportedHardenedIndex = errors.New("hardened child derivation requires the private key")
	ErrInvalidPrivateKey        = errors.New("private key is zero or not below the curve order")
	ErrInvalidChainCode         = errors.New("chain code must be 32 bytes")
	ErrInvalidPath              = errors.New("invalid derivation path")
)

// DerivationError reports which step of a path derivation failed.
type DerivationError struct {
	Depth int
	Index uint32
	Err   error
}

func (e *DerivationError) Error() string {
	return fmt.Sprintf("derive depth %d index %d: %v", e.Depth, e.Index, e.Err)
}

func (e *DerivationError) Unwrap() error {
	return e.Err
}

// NewDerivationError creates a new DerivationError.
func NewDerivationError(depth int, index uint32, err error) *DerivationError {
	return &DerivationError{
		Depth: depth,
		Index: index,
		Err:   err,
	}
}
