package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/diillson/azure-finops-report-go/internal/domain/repository"
	"github.com/diillson/azure-finops-report-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct {
	lookupEnv func(string) (string, bool)
}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{lookupEnv: os.LookupEnv}
}

type decodeFunc func(data []byte, v interface{}) error

var decoders = map[string]decodeFunc{
	".toml": toml.Unmarshal,
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".json": json.Unmarshal,
}

// envReference matches a value made only of an environment reference, e.g. ${AZURE_CLIENT_SECRET}.
var envReference = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
// A value written as ${NAME} is replaced by the environment variable NAME,
// which must be set. Any other value, including one containing "$", is kept as is.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))
	decode, ok := decoders[fileExtension]
	if !ok {
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config
	if err := decode(fileData, &config); err != nil {
		return nil, fmt.Errorf("error parsing %s file: %w", strings.ToUpper(strings.TrimPrefix(fileExtension, ".")), err)
	}

	if err := r.expandReferences(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func (r *ConfigRepositoryImpl) expandReferences(config *types.Config) error {
	values := []*string{
		&config.SubscriptionID,
		&config.DirectoryID,
		&config.ClientID,
		&config.ClientSecret,
		&config.TagValues,
		&config.Repository,
		&config.ReportName,
		&config.Dir,
		&config.ArchiveBucket,
		&config.ArchivePrefix,
		&config.PushgatewayURL,
		&config.PageTimeout,
	}
	for i := range config.IncludeTags {
		values = append(values, &config.IncludeTags[i])
	}
	for i := range config.ReportType {
		values = append(values, &config.ReportType[i])
	}

	for _, value := range values {
		match := envReference.FindStringSubmatch(*value)
		if match == nil {
			continue
		}
		resolved, ok := r.lookupEnv(match[1])
		if !ok {
			return fmt.Errorf("config value %s references unset environment variable %s", *value, match[1])
		}
		*value = resolved
	}
	return nil
}
