// Package zonopscfg defines the configuration schema (structs) for
// zonops.yml and its loading and validation helpers.
package zonopscfg

// Root is the root structure of zonops.yml.
type Root struct {
	Version  string   `yaml:"version"`
	Azure    Azure    `yaml:"azure"`
	Defaults Defaults `yaml:"defaults"`
}

// Azure holds the subscription and credential settings for the Azure DNS
// management API.
type Azure struct {
	SubscriptionID string `yaml:"subscription_id"` // env AZURE_SUBSCRIPTION_ID fallback
	AuthMethod     string `yaml:"auth_method"`     // see AuthMethods
	TenantID       string `yaml:"tenant_id,omitempty"`
	ClientID       string `yaml:"client_id,omitempty"`
	ClientSecret   string `yaml:"client_secret,omitempty"`
	// FederatedTokenFile is the projected service account token path for
	// workload_identity auth.
	FederatedTokenFile string `yaml:"federated_token_file,omitempty"`
}

// Defaults carries import/export defaults so they are explicit configuration
// rather than shared module state.
type Defaults struct {
	// ResourceGroup is used when a command does not name one.
	ResourceGroup string `yaml:"resource_group,omitempty"`
	// TTL is applied to imported records with no $TTL directive and no
	// per-record TTL. Zero selects the built-in default.
	TTL int64 `yaml:"ttl,omitempty"`
}

// AuthMethods lists the supported azure.auth_method values.
var AuthMethods = []string{
	"client_secret",
	"managed_identity",
	"workload_identity",
	"azure_cli",
	"azure_developer_cli",
	"default",
}
