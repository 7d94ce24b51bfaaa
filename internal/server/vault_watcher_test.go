package server

import (
	"testing"
	"time"

	"resumatch/internal/config"
)

// fakeVaultClient serves canned secrets for watcher tests
type fakeVaultClient struct {
	secrets map[string]*config.VaultSecret
}

func (f *fakeVaultClient) GetSecretV2(path string) (*config.VaultSecret, error) {
	if secret, exists := f.secrets[path]; exists {
		return secret, nil
	}
	return nil, nil
}

func (f *fakeVaultClient) GetStringSecret(path, key string) (string, error) {
	if secret, exists := f.secrets[path]; exists {
		if value, ok := secret.Data[key].(string); ok {
			return value, nil
		}
	}
	return "", nil
}

func (f *fakeVaultClient) GetStringSliceSecret(path, key string) ([]string, error) {
	if secret, exists := f.secrets[path]; exists {
		if value, ok := secret.Data[key].([]string); ok {
			return value, nil
		}
	}
	return nil, nil
}

func newTestVaultWatcher(client VaultClientInterface) *VaultWatcher {
	return NewVaultWatcher(client, "secret/data/tls", time.Minute,
		func(data *CertificateData, err error) {}, nil)
}

func TestVaultWatcherFetchNewCertsFromVault(t *testing.T) {
	client := &fakeVaultClient{
		secrets: map[string]*config.VaultSecret{
			"secret/data/tls": {
				Data: map[string]any{
					"cert": "new-cert-content",
					"key":  "new-key-content",
					"ca":   "new-ca-content",
				},
				Version: 1,
			},
		},
	}

	vw := newTestVaultWatcher(client)

	data, err := vw.fetchNewCertsFromVault()
	if err != nil {
		t.Fatalf("fetchNewCertsFromVault failed: %v", err)
	}

	if data.CertContent != "new-cert-content" {
		t.Errorf("CertContent not fetched correctly, got: %s, want: %s",
			data.CertContent, "new-cert-content")
	}
	if data.KeyContent != "new-key-content" {
		t.Errorf("KeyContent not fetched correctly, got: %s, want: %s",
			data.KeyContent, "new-key-content")
	}
	if data.CAContent != "new-ca-content" {
		t.Errorf("CAContent not fetched correctly, got: %s, want: %s",
			data.CAContent, "new-ca-content")
	}
}

func TestVaultWatcherCheckForUpdates(t *testing.T) {
	client := &fakeVaultClient{
		secrets: map[string]*config.VaultSecret{
			"secret/data/tls": {
				Data:    map[string]any{},
				Version: 2,
			},
		},
	}

	vw := newTestVaultWatcher(client)

	// Initial check detects the change from version 0 to 2
	changed, err := vw.checkForUpdates()
	if err != nil {
		t.Fatalf("checkForUpdates failed: %v", err)
	}
	if !changed {
		t.Error("Expected change to be detected")
	}

	// Version is unchanged on the second check
	changed, err = vw.checkForUpdates()
	if err != nil {
		t.Fatalf("checkForUpdates failed: %v", err)
	}
	if changed {
		t.Error("Expected no change to be detected")
	}
}
