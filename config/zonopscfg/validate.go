package zonopscfg

import (
	"fmt"

	"github.com/google/uuid"
)

// Validate performs semantic validation on the configuration tree. It runs
// before any network call so option-level problems never surface mid-batch.
func (r *Root) Validate() error {
	if r.Version != "" && r.Version != "v1" {
		return fmt.Errorf("version: unsupported config version %q", r.Version)
	}
	if err := r.Azure.validate(); err != nil {
		return fmt.Errorf("azure: %w", err)
	}
	if r.Defaults.TTL < 0 {
		return fmt.Errorf("defaults.ttl: negative TTL %d", r.Defaults.TTL)
	}
	return nil
}

func (a *Azure) validate() error {
	if a.SubscriptionID == "" {
		return fmt.Errorf("subscription_id is required (or set AZURE_SUBSCRIPTION_ID)")
	}
	if _, err := uuid.Parse(a.SubscriptionID); err != nil {
		return fmt.Errorf("subscription_id: not a valid UUID: %s", a.SubscriptionID)
	}

	method := a.AuthMethod
	if method == "" {
		method = "default"
	}
	known := false
	for _, m := range AuthMethods {
		if method == m {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("auth_method: unsupported value %q", a.AuthMethod)
	}

	switch method {
	case "client_secret":
		if a.TenantID == "" || a.ClientID == "" || a.ClientSecret == "" {
			return fmt.Errorf("client_secret auth requires tenant_id, client_id, client_secret")
		}
	case "workload_identity":
		if a.TenantID == "" || a.ClientID == "" || a.FederatedTokenFile == "" {
			return fmt.Errorf("workload_identity auth requires tenant_id, client_id, federated_token_file")
		}
	}
	return nil
}
