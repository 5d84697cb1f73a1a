// Package config layers HashiCorp Vault secrets over environment variables.
package config

import (
	"context"
	"fmt"
	"sync"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// VaultProvider serves configuration values from a single KV v2 secret.
//
// The secret is read once on first use and kept in memory, so API keys rotated in
// Vault take effect on restart.
type VaultProvider struct {
	client     *api.Client
	mountPath  string
	secretPath string

	once   *sync.Once
	values *map[string]any
	err    *error
}

// NewVaultProvider creates a new VaultProvider.
//
// The mountPath is the mount point of the KV v2 engine (e.g. "secret") and
// secretPath the secret within it (e.g. "agentindex").
func NewVaultProvider(server, token, mountPath, secretPath string) (VaultProvider, error) {
	if server == "" {
		return VaultProvider{}, fmt.Errorf("server is required")
	}
	if token == "" {
		return VaultProvider{}, fmt.Errorf("token is required")
	}
	if mountPath == "" {
		return VaultProvider{}, fmt.Errorf("mountPath is required")
	}
	if secretPath == "" {
		return VaultProvider{}, fmt.Errorf("secretPath is required")
	}

	cfg := api.DefaultConfig()
	cfg.Address = server

	client, err := api.NewClient(cfg)
	if err != nil {
		return VaultProvider{}, fmt.Errorf("failed to create vault client: %w", err)
	}
	client.SetToken(token)

	return VaultProvider{
		client:     client,
		mountPath:  mountPath,
		secretPath: secretPath,
		once:       &sync.Once{},
		values:     new(map[string]any),
		err:        new(error),
	}, nil
}

// Get returns the string value stored under key in the secret.
func (vp VaultProvider) Get(ctx context.Context, key string) (string, error) {
	vp.once.Do(func() {
		*vp.values, *vp.err = vp.load(ctx)
	})
	if *vp.err != nil {
		return "", *vp.err
	}

	value, ok := (*vp.values)[key]
	if !ok {
		return "", fmt.Errorf("vault secret %s does not contain key %s", vp.secretPath, key)
	}

	strValue, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("vault secret %s is not a string", key)
	}
	return strValue, nil
}

func (vp VaultProvider) load(ctx context.Context) (map[string]any, error) {
	secret, err := vp.client.KVv2(vp.mountPath).Get(ctx, vp.secretPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read vault secret %s: %w", vp.secretPath, err)
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("vault secret %s not found", vp.secretPath)
	}
	return secret.Data, nil
}

var _ config.Provider = VaultProvider{}

// InitVaultProvider layers Vault over environment variables when VAULT_ADDR is set.
// Environment variables win, so a key can be overridden locally without touching Vault.
type InitVaultProvider struct {
	Server     string `config:"VAULT_ADDR" default:"-"`
	Token      string `config:"VAULT_TOKEN" default:"-"`
	MountPath  string `config:"VAULT_MOUNT_PATH" default:"secret"`
	SecretPath string `config:"VAULT_SECRET_PATH" default:"agentindex"`
}

// Initialize installs the composite provider as the global config provider.
func (ivp InitVaultProvider) Initialize(ctx context.Context) (context.Context, error) {
	if ivp.Server == "-" {
		return ctx, nil
	}

	vaultProvider, err := NewVaultProvider(ivp.Server, unset(ivp.Token), ivp.MountPath, ivp.SecretPath)
	if err != nil {
		return ctx, fmt.Errorf("failed to initialize Vault provider: %w", err)
	}

	config.SetGlobalProvider(
		config.NewCompositeProvider(
			config.EnvVarProvider{},
			vaultProvider,
		),
	)
	return ctx, nil
}

func unset(v string) string {
	if v == "-" {
		return ""
	}
	return v
}
