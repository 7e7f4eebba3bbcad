package lib

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

type testConfig struct {
	Algorithm string
	Coref     struct {
		Language string
	}
	KeyNotInConfigMap string
}

var (
	algorithmValue = "statistical"
	languageValue  = "en"
	configFileName string
)

func TestMain(m *testing.M) {
	configMap := map[string]interface{}{
		"algorithm": algorithmValue,
		"coref": map[string]interface{}{
			"language": languageValue,
		},
	}

	filename, err := createConfigFile(configMap, ".", "*.yml")
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Remove(filename)
	os.Exit(code)
}

func TestInitializeConfigFromPath(t *testing.T) {
	resetFlags()

	var parsedConfig testConfig
	err := InitializeConfig(configFileName, map[string]interface{}{}, &parsedConfig)

	assert.NoError(t, err)
	assert.Equal(t, algorithmValue, parsedConfig.Algorithm)
	assert.Equal(t, languageValue, parsedConfig.Coref.Language)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	resetFlags()

	overrideValue := "neural"
	os.Setenv("ALGORITHM", overrideValue)
	os.Setenv("COREF_LANGUAGE", overrideValue)
	os.Setenv("KEYNOTINCONFIGMAP", overrideValue)

	var parsedConfig testConfig
	err := InitializeConfig(configFileName, map[string]interface{}{}, &parsedConfig)

	assert.NoError(t, err)
	assert.Equal(t, overrideValue, parsedConfig.Algorithm)
	assert.Equal(t, overrideValue, parsedConfig.Coref.Language)

	// an env var without a matching config key is invisible to viper
	assert.Equal(t, "", parsedConfig.KeyNotInConfigMap)

	os.Unsetenv("ALGORITHM")
	os.Unsetenv("COREF_LANGUAGE")
	os.Unsetenv("KEYNOTINCONFIGMAP")
}

func TestInitializeConfigWithFlag(t *testing.T) {
	resetFlags()

	overrideConfigPath := "*.yml"
	overrideValue := "hybrid"
	overrideConfigMap := map[string]interface{}{
		"algorithm": overrideValue,
	}

	filename, err := createConfigFile(overrideConfigMap, ".", overrideConfigPath)
	if err != nil {
		panic(err)
	}

	originalArgs := os.Args
	os.Args = []string{originalArgs[0], "--config", filename}
	defer func() { os.Args = originalArgs }()

	var parsedConfig testConfig
	err = InitializeConfig(configFileName, map[string]interface{}{}, &parsedConfig)

	assert.NoError(t, err)
	assert.Equal(t, overrideValue, parsedConfig.Algorithm)

	os.Remove(filename)
}

func createConfigFile(configMap map[string]interface{}, path, name string) (fileName string, err error) {
	file, err := ioutil.TempFile(path, name)
	if err != nil {
		return "", err
	}
	configFileName = file.Name()

	data, err := yaml.Marshal(&configMap)
	if err != nil {
		panic(err)
	}

	if err := ioutil.WriteFile(configFileName, data, 0); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func resetFlags() {
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
}
