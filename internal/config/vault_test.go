package config

import (
	"os"
	"path/filepath"
	"testing"

	"resumatch/internal/errors"

	"github.com/hashicorp/vault/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *errors.Logger {
	logger, _ := errors.New("debug")
	return logger
}

func TestApplyGeminiKeyToConfig(t *testing.T) {
	t.Run("fans out to unset operation keys", func(t *testing.T) {
		cfg := &Config{}
		applyGeminiKeyToConfig(cfg, "vault-key")

		assert.Equal(t, "vault-key", cfg.AI.APIKey)
		assert.Equal(t, "vault-key", cfg.AI.Extract.APIKey)
		assert.Equal(t, "vault-key", cfg.AI.Tailor.APIKey)
	})

	t.Run("preserves per-operation overrides", func(t *testing.T) {
		cfg := &Config{}
		cfg.AI.Tailor.APIKey = "tailor-override"
		applyGeminiKeyToConfig(cfg, "vault-key")

		assert.Equal(t, "vault-key", cfg.AI.Extract.APIKey)
		assert.Equal(t, "tailor-override", cfg.AI.Tailor.APIKey)
	})
}

func TestResolveVaultToken(t *testing.T) {
	logger := testLogger()

	writeTokenFile := func(t *testing.T, contents string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "token")
		require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
		return path
	}

	t.Run("literal token wins over token file", func(t *testing.T) {
		cfg := VaultConfig{
			Token:     "literal-token",
			TokenFile: writeTokenFile(t, "file-token"),
		}

		token, err := resolveVaultToken(cfg, logger)
		require.NoError(t, err)
		assert.Equal(t, "literal-token", token)
	})

	t.Run("file token is read and trimmed", func(t *testing.T) {
		cfg := VaultConfig{TokenFile: writeTokenFile(t, "\tfile-token\n")}

		token, err := resolveVaultToken(cfg, logger)
		require.NoError(t, err)
		assert.Equal(t, "file-token", token)
	})

	t.Run("unreadable token file fails", func(t *testing.T) {
		cfg := VaultConfig{TokenFile: filepath.Join(t.TempDir(), "absent")}

		_, err := resolveVaultToken(cfg, logger)
		assert.ErrorContains(t, err, "failed to read vault token file")
	})

	t.Run("whitespace-only file counts as no token", func(t *testing.T) {
		cfg := VaultConfig{TokenFile: writeTokenFile(t, " \n ")}

		_, err := resolveVaultToken(cfg, logger)
		assert.ErrorContains(t, err, "vault token is required")
	})
}

func TestLoadSingleCertificate(t *testing.T) {
	pem := "-----BEGIN CERTIFICATE-----\nMIIB\n-----END CERTIFICATE-----"
	data := &VaultSecret{Data: map[string]any{
		"cert":  pem,
		"empty": "",
		"bytes": 7,
	}}

	var target string
	assert.Equal(t, 1, loadSingleCertificate(data, "cert", &target))
	assert.Equal(t, pem, target)

	// Empty, missing, and non-string values all leave the target alone.
	target = "previous"
	for _, key := range []string{"empty", "absent", "bytes"} {
		assert.Equal(t, 0, loadSingleCertificate(data, key, &target), "key %q", key)
		assert.Equal(t, "previous", target, "key %q", key)
	}
}

func TestValidateTLSDeprecatedFields(t *testing.T) {
	valid := &VaultSecret{Data: map[string]any{"cert": "c", "key": "k", "ca": "a"}}
	assert.NoError(t, validateTLSDeprecatedFields(valid))

	for _, field := range []string{"cert_file", "key_file", "ca_file"} {
		t.Run(field, func(t *testing.T) {
			err := validateTLSDeprecatedFields(&VaultSecret{Data: map[string]any{field: "/etc/tls/file"}})
			require.Error(t, err)
			assert.Contains(t, err.Error(), field)
			assert.Contains(t, err.Error(), "no longer supported")
		})
	}
}

func TestApplyVaultSecretsDisabled(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, ApplyVaultSecrets(cfg, testLogger()))
}

func TestExtractSecretVersion(t *testing.T) {
	kvv2 := func(version any) *api.Secret {
		return &api.Secret{Data: map[string]any{
			"metadata": map[string]any{"version": version},
		}}
	}

	t.Run("numeric and string versions parse", func(t *testing.T) {
		for _, raw := range []any{int64(7), float64(7), "7"} {
			version, err := extractSecretVersion(kvv2(raw), "secret/data/app")
			require.NoError(t, err, "version %T", raw)
			assert.Equal(t, int64(7), version)
		}
	})

	t.Run("malformed version string fails", func(t *testing.T) {
		_, err := extractSecretVersion(kvv2("seven"), "secret/data/app")
		assert.ErrorContains(t, err, "could not parse secret version")
	})

	t.Run("unexpected version type fails", func(t *testing.T) {
		_, err := extractSecretVersion(kvv2([]string{"7"}), "secret/data/app")
		assert.ErrorContains(t, err, "unexpected type")
	})

	t.Run("kvv1 shape is rejected", func(t *testing.T) {
		secret := &api.Secret{Data: map[string]any{"api_key": "value"}}
		_, err := extractSecretVersion(secret, "secret/data/app")
		assert.ErrorContains(t, err, "missing 'metadata' field")
	})
}
