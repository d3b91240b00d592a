package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

// "Service" groups the engine's secrets in the OS keychain.
const KeyringService = "profilescout"

const (
	AccountApifyToken     = "apify:token"
	AccountCeipalPassword = "ceipal:password"
	AccountCeipalAPIKey   = "ceipal:api_key"
)

// lookup prefers the environment (containers, CI) and falls back to the OS
// keychain for local installs.
func lookup(envVar, account string) (string, error) {
	if v := strings.TrimSpace(os.Getenv(envVar)); v != "" {
		return v, nil
	}
	v, err := keyring.Get(KeyringService, account)
	if err == nil && strings.TrimSpace(v) != "" {
		return v, nil
	}
	return "", errors.New(envVar + " not set and no keychain entry for " + account)
}

func ApifyToken() (string, error) {
	return lookup("APIFY_API_TOKEN", AccountApifyToken)
}

func CeipalPassword() (string, error) {
	return lookup("CEIPAL_PASSWORD", AccountCeipalPassword)
}

func CeipalAPIKey() (string, error) {
	return lookup("CEIPAL_API_KEY", AccountCeipalAPIKey)
}

// Keyring adapts the package functions to the store surface the HTTP layer
// consumes.
type Keyring struct{}

func (Keyring) Set(account, value string) error { return Set(account, value) }
func (Keyring) Delete(account string) error     { return Delete(account) }

func Set(account, value string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(value) == "" {
		return errors.New("secret value is empty")
	}
	return keyring.Set(KeyringService, account, value)
}

func Delete(account string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, account)
}
