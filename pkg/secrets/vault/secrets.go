package secrets

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrSecretNotFound is returned when the path or key holds no value.
var ErrSecretNotFound = errors.New("secret not found")

// GetKeyValue reads a value from Vault.
// If the key contains "/", it's treated as a separate path: {basePath}/{key} with data stored under "value".
// Otherwise, it's stored in {basePath}/keys with the key as a field name.
func (c *Client) GetKeyValue(ctx context.Context, key string) (string, error) {
	secretPath, dataKey := c.locate(key)

	secret, err := c.client.Logical().ReadWithContext(ctx, secretPath)
	if err != nil {
		return "", err
	}

	if secret == nil {
		return "", fmt.Errorf("%w at path: %s", ErrSecretNotFound, secretPath)
	}

	// KV v2 nests the payload under "data"
	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("unexpected secret data format at %s", secretPath)
	}

	value, ok := data[dataKey]
	if !ok {
		return "", fmt.Errorf("%w: key %s at path %s", ErrSecretNotFound, dataKey, secretPath)
	}

	strValue, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("value for key %s is not a string", dataKey)
	}

	return strValue, nil
}

// SetKeyValue writes a value to Vault, preserving sibling keys under {basePath}/keys.
func (c *Client) SetKeyValue(ctx context.Context, key, value string) error {
	secretPath, dataKey := c.locate(key)

	data := make(map[string]interface{})

	if !strings.Contains(key, "/") {
		secret, err := c.client.Logical().ReadWithContext(ctx, secretPath)
		if err == nil && secret != nil {
			if d, ok := secret.Data["data"].(map[string]interface{}); ok {
				data = d
			}
		}
	}

	data[dataKey] = value

	_, err := c.client.Logical().WriteWithContext(ctx, secretPath, map[string]interface{}{"data": data})

	return err
}

func (c *Client) locate(key string) (secretPath, dataKey string) {
	if strings.Contains(key, "/") {
		return c.path + "/" + key, "value"
	}

	return c.path + "/keys", key
}
