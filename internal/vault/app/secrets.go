package app

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aussiebroadwan/passkeep/pkg/cryptox"
	"github.com/aussiebroadwan/passkeep/pkg/jwtx"
)

// Secrets is the key material the services are built from.
type Secrets struct {
	Cipher *cryptox.Cipher
	Codec  *jwtx.HS256
	Hasher *cryptox.Hasher
}

// InitSecrets loads the encryption key, the token secret and the password
// pepper. Key values are never logged.
//
// Without a configured JWT secret a random one is generated, so every
// restart signs the previous access and reset tokens out.
func InitSecrets(cfg Config, logger *slog.Logger) (*Secrets, error) {
	encoded := cfg.EncryptionKey
	if encoded == "" {
		data, err := os.ReadFile(cfg.EncryptionKeyFile)
		if err != nil {
			return nil, fmt.Errorf("read encryption key file: %w", err)
		}
		encoded = strings.TrimSpace(string(data))
		logger.Info("encryption key loaded from file", "path", cfg.EncryptionKeyFile)
	}

	cipher, err := cryptox.NewCipherFromString(encoded)
	if err != nil {
		return nil, fmt.Errorf("invalid encryption key: %w", err)
	}

	secret := []byte(cfg.JWTSecret)
	if len(secret) == 0 {
		secret = make([]byte, jwtx.MinSecretSize)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generate jwt secret: %w", err)
		}
		logger.Warn("no jwt secret configured, using an ephemeral one; tokens will not survive a restart")
	}

	codec, err := jwtx.NewHS256(secret, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("invalid jwt secret: %w", err)
	}

	pepper, err := cryptox.LoadOrCreatePepper(cfg.PepperFile)
	if err != nil {
		return nil, fmt.Errorf("load pepper: %w", err)
	}

	return &Secrets{
		Cipher: cipher,
		Codec:  codec,
		Hasher: cryptox.NewHasher(pepper),
	}, nil
}
