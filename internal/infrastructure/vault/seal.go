package vault

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	keySize    = 32
	nonceSize  = 24
	sealPrefix = "sb1:"
)

var errUnseal = errors.New("vault: sealed value could not be opened")

// ParseSealKey decodes a base64 (std or url) 32-byte key.
func ParseSealKey(s string) (*[keySize]byte, error) {
	s = strings.TrimSpace(s)
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		raw, err = base64.RawURLEncoding.DecodeString(s)
	}
	if err != nil {
		return nil, fmt.Errorf("vault: seal key is not base64: %w", err)
	}
	if len(raw) != keySize {
		return nil, fmt.Errorf("vault: seal key must be %d bytes, got %d", keySize, len(raw))
	}
	var key [keySize]byte
	copy(key[:], raw)
	return &key, nil
}

type sealer struct {
	key *[keySize]byte
}

func (s sealer) seal(plain string) (string, error) {
	if s.key == nil {
		return plain, nil
	}
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("vault: nonce: %w", err)
	}
	box := secretbox.Seal(nonce[:], []byte(plain), &nonce, s.key)
	return sealPrefix + base64.StdEncoding.EncodeToString(box), nil
}

func (s sealer) open(stored string) (string, error) {
	if s.key == nil {
		return stored, nil
	}
	enc, ok := strings.CutPrefix(stored, sealPrefix)
	if !ok {
		return "", errUnseal
	}
	box, err := base64.StdEncoding.DecodeString(enc)
	if err != nil || len(box) < nonceSize+secretbox.Overhead {
		return "", errUnseal
	}
	var nonce [nonceSize]byte
	copy(nonce[:], box[:nonceSize])
	plain, ok := secretbox.Open(nil, box[nonceSize:], &nonce, s.key)
	if !ok {
		return "", errUnseal
	}
	return string(plain), nil
}
