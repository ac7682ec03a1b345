package store

import (
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

var ErrBadPassphrase = errors.New("store: wrong passphrase or corrupted data")

// sealed is the at-rest form of a secret.
type sealed struct {
	Salt  []byte `json:"salt"`
	Nonce []byte `json:"nonce"`
	CT    []byte `json:"ct"`
}

// scrypt parameters; fixed so sealed data stays readable.
const (
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

func deriveKey(passphrase string, salt []byte) ([]byte, error) {
	return scrypt.Key([]byte(passphrase), salt, scryptN, scryptR, scryptP, chacha20poly1305.KeySize)
}

func seal(passphrase string, plaintext []byte) (sealed, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return sealed{}, err
	}
	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return sealed{}, err
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return sealed{}, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return sealed{}, err
	}
	return sealed{Salt: salt, Nonce: nonce, CT: aead.Seal(nil, nonce, plaintext, salt)}, nil
}

func open(passphrase string, s sealed) ([]byte, error) {
	key, err := deriveKey(passphrase, s.Salt)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	if len(s.Nonce) != aead.NonceSize() {
		return nil, ErrBadPassphrase
	}
	pt, err := aead.Open(nil, s.Nonce, s.CT, s.Salt)
	if err != nil {
		return nil, ErrBadPassphrase
	}
	return pt, nil
}
