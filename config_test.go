package buttonpanel

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	config, err := ParseConfig([]byte(`
[general]
topicnamespace = "DESK"
layoutfile = "layout.yaml"
presssuppressperiod = "250ms"

[mqtt]
brokeraddr = "tcp://10.0.0.2:1883"
username = "panel"

[assets]
basedir = "/usr/share/buttonpanel"
`))
	require.NoError(t, err)

	assert.Equal(t, "DESK", config.General.TopicNamespace)
	assert.Equal(t, "layout.yaml", config.General.LayoutFile)
	period, err := config.General.SuppressPeriod()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, period)

	assert.Equal(t, "tcp://10.0.0.2:1883", config.MQTT.BrokerAddr)
	assert.Equal(t, "panel", config.MQTT.Username)
	assert.Equal(t, DefaultMQTTClientID, config.MQTT.ClientID)

	assert.Equal(t, "/usr/share/buttonpanel", config.Assets.BaseDir)
	assert.Equal(t, DefaultFont, config.Assets.Font)
	assert.Equal(t, DefaultFontSize, config.Assets.FontSize)

	assert.Equal(t, DefaultConfig().Window, config.Window)
}

func TestParseConfigEmpty(t *testing.T) {
	config, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *config)
}

func TestParseConfigBadPeriod(t *testing.T) {
	_, err := ParseConfig([]byte(`
[general]
presssuppressperiod = "soon"
`))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "buttonpanel.toml")
	require.NoError(t, os.WriteFile(file, []byte("[window]\ntitle = \"Desk\"\n"), 0600))

	config, err := LoadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, "Desk", config.Window.Title)
	assert.Equal(t, DefaultWindowWidth, config.Window.Width)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestParseConfigIntegerFontSize(t *testing.T) {
	config, err := ParseConfig([]byte("[assets]\nfontsize = 18\n"))
	require.NoError(t, err)
	assert.Equal(t, 18, config.Assets.FontSize)
}
