package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyChainService defines key-material operations for the local vault:
// salt generation and password-based key derivation. The derived key never
// leaves client memory.
type KeyChainService interface {
	// GenerateSalt returns 16 random bytes from the OS CSPRNG.
	GenerateSalt() ([]byte, error)

	// DeriveKey derives a 256-bit content key from the account password and
	// salt using Argon2id.
	DeriveKey(password string, salt []byte) []byte
}

// ContentCipher encrypts and decrypts vault entry content for at-rest
// storage. The key must be set via SetKey before calling Encrypt or Decrypt.
type ContentCipher interface {
	// SetKey stores the content key used for all subsequent operations.
	// Called once after a successful login.
	SetKey(key []byte)

	// Encrypt seals plaintext with AES-256-GCM and returns
	// base64(nonce || ciphertext).
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt. Returns an error if the key is unset, the
	// blob is malformed, or authentication fails.
	Decrypt(ciphertext string) (string, error)
}
