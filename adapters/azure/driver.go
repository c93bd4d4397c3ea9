// Package azure implements the domain DNS ports on the Azure resource
// management API (Microsoft.Network/dnszones) via the armdns SDK clients.
package azure

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/dns/armdns"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"

	"github.com/zonops/zonops/config/zonopscfg"
	"github.com/zonops/zonops/domain/model"
)

// Driver bundles the armdns clients for one subscription and exposes them
// through the domain ports.
type Driver struct {
	SubscriptionID  string
	TokenCredential azcore.TokenCredential

	zones   *armdns.ZonesClient
	records *armdns.RecordSetsClient
	groups  *armresources.ResourceGroupsClient
}

// New builds a Driver from the azure section of zonops.yml.
func New(cfg *zonopscfg.Azure) (*Driver, error) {
	if cfg == nil || cfg.SubscriptionID == "" {
		return nil, fmt.Errorf("azure subscription ID is required")
	}

	cred, err := newCredential(cfg)
	if err != nil {
		return nil, err
	}

	zones, err := armdns.NewZonesClient(cfg.SubscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("create DNS zones client: %w", err)
	}
	records, err := armdns.NewRecordSetsClient(cfg.SubscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("create DNS record sets client: %w", err)
	}
	groups, err := armresources.NewResourceGroupsClient(cfg.SubscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("create resource groups client: %w", err)
	}

	return &Driver{
		SubscriptionID:  cfg.SubscriptionID,
		TokenCredential: cred,
		zones:           zones,
		records:         records,
		groups:          groups,
	}, nil
}

// newCredential selects and constructs the token credential for the
// configured auth method.
func newCredential(cfg *zonopscfg.Azure) (azcore.TokenCredential, error) {
	method := cfg.AuthMethod
	if method == "" {
		method = "default"
	}

	var cred azcore.TokenCredential
	var err error
	switch method {
	case "client_secret":
		if cfg.TenantID == "" || cfg.ClientID == "" || cfg.ClientSecret == "" {
			return nil, fmt.Errorf("client_secret auth requires tenant_id, client_id, client_secret")
		}
		cred, err = azidentity.NewClientSecretCredential(cfg.TenantID, cfg.ClientID, cfg.ClientSecret, nil)
	case "managed_identity":
		opts := &azidentity.ManagedIdentityCredentialOptions{}
		if cfg.ClientID != "" {
			opts.ID = azidentity.ClientID(cfg.ClientID)
		}
		cred, err = azidentity.NewManagedIdentityCredential(opts)
	case "workload_identity":
		if cfg.TenantID == "" || cfg.ClientID == "" || cfg.FederatedTokenFile == "" {
			return nil, fmt.Errorf("workload_identity auth requires tenant_id, client_id, federated_token_file")
		}
		cred, err = azidentity.NewWorkloadIdentityCredential(&azidentity.WorkloadIdentityCredentialOptions{
			TenantID:      cfg.TenantID,
			ClientID:      cfg.ClientID,
			TokenFilePath: cfg.FederatedTokenFile,
		})
	case "azure_cli":
		cred, err = azidentity.NewAzureCLICredential(nil)
	case "azure_developer_cli":
		cred, err = azidentity.NewAzureDeveloperCLICredential(nil)
	case "default":
		cred, err = azidentity.NewDefaultAzureCredential(nil)
	default:
		return nil, fmt.Errorf("unsupported auth_method: %s", method)
	}
	if err != nil {
		return nil, fmt.Errorf("create Azure credential: %w", err)
	}
	return cred, nil
}

// Zones returns the ZonePort implementation.
func (d *Driver) Zones() model.ZonePort { return &zonesClient{d: d} }

// Records returns the RecordSetPort implementation.
func (d *Driver) Records() model.RecordSetPort { return &recordSetsClient{d: d} }
