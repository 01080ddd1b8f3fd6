package config

import (
	"encoding/json"
	"fmt"

	"github.com/knadh/koanf"
	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"

	"github.com/molstack/scoreflow/internal/errors"
	"github.com/molstack/scoreflow/pkg/configs"
	"github.com/molstack/scoreflow/pkg/logger"
)

const ConfigDelimiter = "."

// InitPipelineConfig loads the pipeline configuration file and installs it
// as the active pipeline config map.
func InitPipelineConfig(appConfigs *configs.AppConfigs) {
	path := appConfigs.Configs.PipelineConfigPath
	pipelineConfig, err := LoadPipelineConfig(path)
	if err != nil {
		logger.Panic(fmt.Sprintf("Error loading pipeline config from %s", path), err)
	}
	SetPipelineConfigMap(pipelineConfig)
	logger.Info(fmt.Sprintf("Pipeline config loaded with %d pipeline(s)", len(pipelineConfig.ConfigMap)))
}

// LoadPipelineConfig reads the pipeline config JSON file with koanf and
// decodes it into a PipelineConfig.
func LoadPipelineConfig(path string) (*PipelineConfig, error) {
	k := koanf.New(ConfigDelimiter)
	if err := k.Load(file.Provider(path), kjson.Parser()); err != nil {
		return nil, &errors.ParsingError{ErrorMsg: "failed to read pipeline config file: " + err.Error()}
	}

	// Round-trip through JSON so ComponentConfig.UnmarshalJSON builds the
	// ordered component maps.
	raw, err := json.Marshal(k.Raw())
	if err != nil {
		return nil, &errors.ParsingError{ErrorMsg: "failed to re-encode pipeline config: " + err.Error()}
	}
	var pipelineConfig PipelineConfig
	if err := json.Unmarshal(raw, &pipelineConfig); err != nil {
		return nil, &errors.ParsingError{ErrorMsg: "failed to parse pipeline config: " + err.Error()}
	}
	if len(pipelineConfig.ConfigMap) == 0 {
		return nil, &errors.ParsingError{ErrorMsg: "pipeline config map is empty"}
	}
	return &pipelineConfig, nil
}
