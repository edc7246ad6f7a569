package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zalando/go-keyring"
)

// keyringService namespaces barberia entries in the OS keyring.
const keyringService = "barberia"

// ErrNotLoggedIn is returned when no token is stored for a server.
var ErrNotLoggedIn = errors.New("not logged in")

// ServerCredential stores auth info for a single server.
type ServerCredential struct {
	Token   string `json:"token"`
	Usuario string `json:"usuario,omitempty"`
}

// credentialsFile maps server URLs to their credentials. Used only when
// the OS keyring is unavailable (headless hosts, CI).
type credentialsFile struct {
	Servers map[string]*ServerCredential `json:"servers"`
}

// SaveCredential stores the credential for a server, preferring the OS
// keyring and falling back to a 0600 credentials.json.
func SaveCredential(serverURL string, cred *ServerCredential) error {
	data, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("marshaling credential: %w", err)
	}

	if err := keyring.Set(keyringService, serverURL, string(data)); err == nil {
		return nil
	}

	file, err := loadCredentialsFile()
	if err != nil {
		return err
	}
	file.Servers[serverURL] = cred
	return saveCredentialsFile(file)
}

// LoadCredential returns the stored credential for a server, or
// ErrNotLoggedIn when none exists in either backend.
func LoadCredential(serverURL string) (*ServerCredential, error) {
	if raw, err := keyring.Get(keyringService, serverURL); err == nil {
		var cred ServerCredential
		if err := json.Unmarshal([]byte(raw), &cred); err != nil {
			return nil, fmt.Errorf("parsing keyring credential: %w", err)
		}
		return &cred, nil
	}

	file, err := loadCredentialsFile()
	if err != nil {
		return nil, err
	}
	cred, ok := file.Servers[serverURL]
	if !ok {
		return nil, ErrNotLoggedIn
	}
	return cred, nil
}

// DeleteCredential removes the stored credential for a server from both
// backends. Missing entries are not an error.
func DeleteCredential(serverURL string) error {
	_ = keyring.Delete(keyringService, serverURL)

	file, err := loadCredentialsFile()
	if err != nil {
		return err
	}
	if _, ok := file.Servers[serverURL]; !ok {
		return nil
	}
	delete(file.Servers, serverURL)
	return saveCredentialsFile(file)
}

// CredentialsPath returns the path to the fallback credentials.json.
func CredentialsPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "credentials.json"), nil
}

func loadCredentialsFile() (*credentialsFile, error) {
	path, err := CredentialsPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &credentialsFile{Servers: make(map[string]*ServerCredential)}, nil
		}
		return nil, fmt.Errorf("reading credentials: %w", err)
	}

	var file credentialsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing credentials: %w", err)
	}
	if file.Servers == nil {
		file.Servers = make(map[string]*ServerCredential)
	}
	return &file, nil
}

func saveCredentialsFile(file *credentialsFile) error {
	path, err := CredentialsPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling credentials: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing credentials: %w", err)
	}
	return nil
}
