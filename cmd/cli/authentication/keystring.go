package authentication

// KeyString stores the CLI session in the OS keyring.
import (
	"encoding/json"
	"errors"

	"github.com/zalando/go-keyring"
)

const (
	serviceName = "webtoonhub-cli"
	tokenKey    = "auth_tokens"
)

// ErrNotLoggedIn is returned when no session is stored
var ErrNotLoggedIn = errors.New("not logged in, run `webtoonhub auth login` first")

type StoredCredentials struct {
	AccessToken string `json:"access_token"`
	MemberID    int64  `json:"member_id"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	ExpiresAt   int64  `json:"expires_at"`
}

func StoreTokens(creds *StoredCredentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	return keyring.Set(serviceName, tokenKey, string(data))
}

func GetTokens() (*StoredCredentials, error) {
	value, err := keyring.Get(serviceName, tokenKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, err
	}

	var creds StoredCredentials
	if err := json.Unmarshal([]byte(value), &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

func DeleteTokens() error {
	err := keyring.Delete(serviceName, tokenKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
