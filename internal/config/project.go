package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectSettings is the per-project notification settings file.
//
//	omni_enabled: true
//	omni_config:
//	  host: http://localhost:8882
//	  api_key: secret
//	  instance: whatsapp-1
//	  recipient: "5551234567"
//	  recipient_type: PhoneNumber
type ProjectSettings struct {
	OmniEnabled bool        `yaml:"omni_enabled"`
	OmniConfig  *OmniConfig `yaml:"omni_config,omitempty"`
}

// LoadProjectSettings reads settings from path. A missing file yields
// nil settings and no error, leaving the environment in charge.
func LoadProjectSettings(path string) (*ProjectSettings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading project settings %s: %w", path, err)
	}

	ps := &ProjectSettings{}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), ps); err != nil {
		return nil, fmt.Errorf("parsing project settings %s: %w", path, err)
	}
	return ps, nil
}

// Save writes the settings to path, creating parent directories.
func (ps *ProjectSettings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(ps)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// ApplyProjectSettings overlays the file's omni section on the env config.
// Timeout and cache TTL always come from the environment.
func (c *Config) ApplyProjectSettings(ps *ProjectSettings) {
	if ps == nil {
		return
	}
	c.Omni.Enabled = ps.OmniEnabled
	if ps.OmniConfig == nil {
		return
	}

	o := ps.OmniConfig
	if o.Host != "" {
		c.Omni.Host = o.Host
	}
	if o.APIKey != "" {
		c.Omni.APIKey = o.APIKey
	}
	if o.Instance != "" {
		c.Omni.Instance = o.Instance
	}
	if o.Recipient != "" {
		c.Omni.Recipient = o.Recipient
	}
	if o.RecipientType != "" {
		c.Omni.RecipientType = o.RecipientType
	}
}
