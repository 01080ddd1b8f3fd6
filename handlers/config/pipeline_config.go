package config

import "fmt"

var pConfig *PipelineConfig

func GetPipelineConfigMap() *PipelineConfig {
	return pConfig
}

// GetPipelineConfig returns the Config for a specific pipeline config ID.
func GetPipelineConfig(pipelineConfigId string) (*Config, error) {
	if pConfig == nil {
		return nil, fmt.Errorf("pipeline config map not initialised")
	}
	conf, ok := pConfig.ConfigMap[pipelineConfigId]
	if !ok || !validatePipelineConfig(&conf) {
		return nil, fmt.Errorf("pipeline config not found or invalid for id: %s", pipelineConfigId)
	}
	return &conf, nil
}

func SetPipelineConfigMap(config *PipelineConfig) {
	pConfig = config
}

func validatePipelineConfig(c *Config) bool {
	if c == nil || c.ComponentConfig.FeasibilityComponentConfig.Size() == 0 {
		return false
	}
	return true
}
