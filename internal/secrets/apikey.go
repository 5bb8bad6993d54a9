package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// “Service” groups this app’s secrets in the OS keychain.
	KeyringService = "prospector"
	apiKeyAccount  = "prospector:api-key"

	// escape hatch for headless setups without a keychain
	apiKeyEnv = "PROSPECTOR_API_KEY"
)

var ErrNoAPIKey = errors.New("API key not found (set it via the UI or " + apiKeyEnv + ")")

// GetAPIKey prefers the OS keychain, falling back to the environment.
func GetAPIKey() (string, error) {
	if key, err := keyring.Get(KeyringService, apiKeyAccount); err == nil {
		if key = strings.TrimSpace(key); key != "" {
			return key, nil
		}
	}
	if key := strings.TrimSpace(os.Getenv(apiKeyEnv)); key != "" {
		return key, nil
	}
	return "", ErrNoAPIKey
}

func SetAPIKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("API key is empty")
	}
	return keyring.Set(KeyringService, apiKeyAccount, strings.TrimSpace(key))
}

func DeleteAPIKey() error {
	return keyring.Delete(KeyringService, apiKeyAccount)
}

// HasAPIKey reports whether a usable key exists anywhere.
func HasAPIKey() bool {
	_, err := GetAPIKey()
	return err == nil
}
