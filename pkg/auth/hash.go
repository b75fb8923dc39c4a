package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmptySecret = errors.New("secret cannot be empty")

// HashServiceInterface hashes and checks secrets such as the admin key.
type HashServiceInterface interface {
	Hash(secret string) (string, error)
	Compare(hash, secret string) bool
}

type HashService struct {
	Cost int
}

func (b *HashService) Hash(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}

	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (b *HashService) Compare(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
