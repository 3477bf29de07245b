package main

import (
	"os"
	"path/filepath"
	"testing"

	butt "github.com/jahkeup/buttonpanel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := loadConfig(filepath.Join(t.TempDir(), "buttonpanel.toml"))
	require.NoError(t, err)
	assert.Equal(t, butt.DefaultConfig(), *config)

	config, err = loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, butt.DefaultConfig(), *config)
}

func TestLoadConfigWrittenDefault(t *testing.T) {
	file := filepath.Join(t.TempDir(), "buttonpanel.toml")
	require.NoError(t, writeDefaultConfig(file))

	config, err := loadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, butt.DefaultConfig(), *config)
}

func TestLoadConfigMalformed(t *testing.T) {
	file := filepath.Join(t.TempDir(), "buttonpanel.toml")
	require.NoError(t, os.WriteFile(file, []byte("[mqtt\n"), 0600))

	_, err := loadConfig(file)
	assert.Error(t, err)
}

func TestApplyEnvOverridesCredentials(t *testing.T) {
	t.Setenv(envMQTTUsername, "operator")
	t.Setenv(envMQTTPassword, "s3cret")

	config := butt.DefaultConfig()
	config.MQTT.Username = "from-file"
	applyEnv(&config)

	assert.Equal(t, "operator", config.MQTT.Username)
	assert.Equal(t, "s3cret", config.MQTT.Password)
}

func TestApplyEnvKeepsFileCredentialsWhenUnset(t *testing.T) {
	t.Setenv(envMQTTUsername, "")
	t.Setenv(envMQTTPassword, "")

	config := butt.DefaultConfig()
	config.MQTT.Username = "from-file"
	config.MQTT.Password = "file-pass"
	applyEnv(&config)

	assert.Equal(t, "from-file", config.MQTT.Username)
	assert.Equal(t, "file-pass", config.MQTT.Password)
}

func TestLoadLayoutDefault(t *testing.T) {
	config := butt.DefaultConfig()
	layout, err := loadLayout(&config)
	require.NoError(t, err)
	assert.Equal(t, butt.DefaultLayout(), layout)
}

func TestLoadLayoutFromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(file, []byte("buttons:\n  - {label: AU, variant: power, x: 10, y: 20}\n"), 0600))

	config := butt.DefaultConfig()
	config.General.LayoutFile = file
	layout, err := loadLayout(&config)
	require.NoError(t, err)
	assert.Equal(t, []butt.LayoutEntry{{Label: "AU", Variant: "power", X: 10, Y: 20}}, layout.Buttons)
}
