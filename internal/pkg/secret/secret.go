package secret

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("secret hashing failed")
	ErrComparisonFailed = errors.New("secret comparison failed")
	ErrInvalidSecret    = errors.New("invalid secret")
)

const DefaultCost = bcrypt.DefaultCost

// Verifier holds a bcrypt hash of the configured admin secret so the plaintext
// never lives longer than startup.
type Verifier struct {
	hash []byte
}

func NewVerifier(plaintext string) (*Verifier, error) {
	if plaintext == "" {
		return nil, ErrInvalidSecret
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	return &Verifier{hash: hashed}, nil
}

func (v *Verifier) Compare(candidate string) error {
	if candidate == "" {
		return ErrInvalidSecret
	}

	err := bcrypt.CompareHashAndPassword(v.hash, []byte(candidate))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}
