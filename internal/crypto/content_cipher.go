// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Chastukhin

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"sync"
)

var ErrNoEncryptionKey = errors.New("encryption key is not set")

// contentCipher is the private implementation of [ContentCipher].
// Blob layout: base64(nonce ‖ ciphertext), nonce being the 12-byte GCM
// standard nonce, so the decryption side can locate it.
type contentCipher struct {
	mu  sync.RWMutex
	key []byte
}

func NewContentCipher() ContentCipher {
	return &contentCipher{}
}

func (c *contentCipher) SetKey(key []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.key = append([]byte(nil), key...)
}

func (c *contentCipher) Encrypt(plaintext string) (string, error) {
	gcm, err := c.gcm()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

func (c *contentCipher) Decrypt(ciphertext string) (string, error) {
	gcm, err := c.gcm()
	if err != nil {
		return "", err
	}

	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("decode content blob: %w", err)
	}
	if len(blob) < gcm.NonceSize() {
		return "", errors.New("content blob is too short")
	}

	nonce, sealed := blob[:gcm.NonceSize()], blob[gcm.NonceSize():]
	plain, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("decrypt content: %w", err)
	}

	return string(plain), nil
}

func (c *contentCipher) gcm() (cipher.AEAD, error) {
	c.mu.RLock()
	key := c.key
	c.mu.RUnlock()

	if len(key) == 0 {
		return nil, ErrNoEncryptionKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	return cipher.NewGCM(block)
}
