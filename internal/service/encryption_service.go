package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha512"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"hdwallet-settlement/config"

	"golang.org/x/crypto/pbkdf2"
)

// Blob layout: base64(salt || iv || ciphertext || tag).
const (
	encSaltLen = 32
	encIVLen   = 16
	encTagLen  = 16
	encKeyLen  = 32 // AES-256

	// MinKDFIterations is the lowest accepted PBKDF2 iteration count.
	MinKDFIterations = 100000
)

// ErrDecryption is returned for every decrypt failure: bad encoding,
// truncated blob, wrong key or tampered data.
var ErrDecryption = errors.New("decryption failed")

// AESEncryptionService implements ports.EncryptionService using
// PBKDF2-HMAC-SHA512 key derivation and AES-256-GCM.
type AESEncryptionService struct {
	masterSecret []byte
	iterations   int
	rand         io.Reader
}

// NewAESEncryptionService creates the service. An empty master secret
// returns config.ErrMissingMasterSecret.
func NewAESEncryptionService(masterSecret string, iterations int) (*AESEncryptionService, error) {
	if masterSecret == "" {
		return nil, config.ErrMissingMasterSecret
	}
	if iterations < MinKDFIterations {
		return nil, fmt.Errorf("kdf iterations must be at least %d, got %d", MinKDFIterations, iterations)
	}
	return &AESEncryptionService{
		masterSecret: []byte(masterSecret),
		iterations:   iterations,
		rand:         rand.Reader,
	}, nil
}

// Encrypt seals plaintext under the master secret.
func (s *AESEncryptionService) Encrypt(plaintext string) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	return s.seal(s.masterSecret, plaintext)
}

// Decrypt opens a blob produced by Encrypt.
func (s *AESEncryptionService) Decrypt(blob string) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	return s.open(s.masterSecret, blob)
}

// EncryptWithPassword seals plaintext under the master secret and password.
func (s *AESEncryptionService) EncryptWithPassword(plaintext, password string) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	return s.seal(s.passwordMaterial(password), plaintext)
}

// DecryptWithPassword opens a blob produced by EncryptWithPassword.
func (s *AESEncryptionService) DecryptWithPassword(blob, password string) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	return s.open(s.passwordMaterial(password), blob)
}

func (s *AESEncryptionService) ready() error {
	if s == nil || len(s.masterSecret) == 0 {
		return config.ErrMissingMasterSecret
	}
	return nil
}

// passwordMaterial is masterSecret || 0x00 || password.
func (s *AESEncryptionService) passwordMaterial(password string) []byte {
	m := make([]byte, 0, len(s.masterSecret)+1+len(password))
	m = append(m, s.masterSecret...)
	m = append(m, 0)
	return append(m, password...)
}

func (s *AESEncryptionService) gcm(material, salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key(material, salt, s.iterations, encKeyLen, sha512.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCMWithNonceSize(block, encIVLen)
}

func (s *AESEncryptionService) seal(material []byte, plaintext string) (string, error) {
	buf := make([]byte, encSaltLen+encIVLen)
	if _, err := io.ReadFull(s.rand, buf); err != nil {
		return "", fmt.Errorf("generating salt and iv: %w", err)
	}
	salt, iv := buf[:encSaltLen], buf[encSaltLen:]

	aead, err := s.gcm(material, salt)
	if err != nil {
		return "", fmt.Errorf("creating cipher: %w", err)
	}

	// Seal appends ciphertext||tag after salt||iv.
	out := aead.Seal(buf, iv, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(out), nil
}

func (s *AESEncryptionService) open(material []byte, blob string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil || len(raw) < encSaltLen+encIVLen+encTagLen {
		return "", ErrDecryption
	}
	salt := raw[:encSaltLen]
	iv := raw[encSaltLen : encSaltLen+encIVLen]
	sealed := raw[encSaltLen+encIVLen:]

	aead, err := s.gcm(material, salt)
	if err != nil {
		return "", ErrDecryption
	}
	plaintext, err := aead.Open(nil, iv, sealed, nil)
	if err != nil {
		return "", ErrDecryption
	}
	return string(plaintext), nil
}
