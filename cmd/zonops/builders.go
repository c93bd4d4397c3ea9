package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zonops/zonops/adapters/azure"
	"github.com/zonops/zonops/config/zonopscfg"
	"github.com/zonops/zonops/usecase/recordset"
	"github.com/zonops/zonops/usecase/zone"
)

// loadConfig loads and validates the config file named by the --config flag.
func loadConfig(cmd *cobra.Command) (*zonopscfg.Root, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := zonopscfg.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// buildZoneUseCase constructs the zone use case from the loaded config.
func buildZoneUseCase(cmd *cobra.Command) (*zone.UseCase, *zonopscfg.Root, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	driver, err := azure.New(&cfg.Azure)
	if err != nil {
		return nil, nil, err
	}
	return &zone.UseCase{Ports: &zone.Ports{Zones: driver.Zones(), Records: driver.Records()}}, cfg, nil
}

// buildRecordSetUseCase constructs the record set use case from the loaded
// config.
func buildRecordSetUseCase(cmd *cobra.Command) (*recordset.UseCase, *zonopscfg.Root, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	driver, err := azure.New(&cfg.Azure)
	if err != nil {
		return nil, nil, err
	}
	return &recordset.UseCase{Ports: &recordset.Ports{Records: driver.Records()}}, cfg, nil
}
