package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/kwargs/internal/codegen"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "KWGEN"

	// Config keys.
	cfgKeyKwargsImport = "kwargs_import"
	cfgKeyOutputSuffix = "output_suffix"
)

// configFile holds the structure written to config.yaml by kwgen init.
type configFile struct {
	KwargsImport string `yaml:"kwargs_import"`
	OutputSuffix string `yaml:"output_suffix"`
}

// loadConfig reads config.yaml from configDir using Viper. A missing file is
// not an error; defaults and KWGEN_* environment variables still apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyKwargsImport, codegen.DefaultKwargsImport)
	v.SetDefault(cfgKeyOutputSuffix, codegen.DefaultSuffix)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	logger.Printf("loaded %s", v.ConfigFileUsed())
	return v, nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. It reports whether a file was written.
func writeConfigIfMissing(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&configFile{
		KwargsImport: codegen.DefaultKwargsImport,
		OutputSuffix: codegen.DefaultSuffix,
	})
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := writeFileAtomic(path, append([]byte("# kwgen configuration\n"), data...)); err != nil {
		return false, err
	}
	return true, nil
}

// configPath returns the config.yaml path inside configDir.
func configPath(configDir string) string {
	return filepath.Join(configDir, configFileExt)
}
