package zonopscfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML file from the given path and returns a deserialized
// Root. AZURE_SUBSCRIPTION_ID from the environment fills an empty
// azure.subscription_id. Validation is handled separately.
func Load(path string) (*Root, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	var cfg Root
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	if cfg.Azure.SubscriptionID == "" {
		cfg.Azure.SubscriptionID = os.Getenv("AZURE_SUBSCRIPTION_ID")
	}

	return &cfg, nil
}
