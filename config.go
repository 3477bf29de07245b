package buttonpanel

import (
	"time"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
	DefaultWindowTitle  = "GUI"
	DefaultFont         = "font.ttf"
	DefaultFontSize     = 24
	DefaultAssetsDir    = "data"
)

type Config struct {
	General GeneralConfig
	MQTT    MQTTConfig
	Window  WindowConfig
	Assets  AssetsConfig
}

type GeneralConfig struct {
	TopicNamespace string
	// LayoutFile is a YAML panel layout. Empty selects DefaultLayout.
	LayoutFile string
	// PressSuppressPeriod is a duration string such as "300ms".
	PressSuppressPeriod string
}

type MQTTConfig struct {
	BrokerAddr string
	ClientID   string
	Username   string
	Password   string
}

type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

type AssetsConfig struct {
	BaseDir  string
	Font     string
	FontSize int
}

func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			TopicNamespace: DefaultTopicNamespace,
		},
		MQTT: MQTTConfig{
			BrokerAddr: DefaultMQTTBrokerAddr,
			ClientID:   DefaultMQTTClientID,
		},
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  DefaultWindowTitle,
		},
		Assets: AssetsConfig{
			BaseDir:  DefaultAssetsDir,
			Font:     DefaultFont,
			FontSize: DefaultFontSize,
		},
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
func LoadConfig(file string) (*Config, error) {
	tree, loadErr := toml.LoadFile(file)
	if loadErr != nil {
		return nil, errors.Wrapf(loadErr, "could not load config %s", file)
	}
	return configFromTree(tree)
}

// ParseConfig is LoadConfig for in-memory TOML.
func ParseConfig(data []byte) (*Config, error) {
	tree, loadErr := toml.LoadBytes(data)
	if loadErr != nil {
		return nil, errors.Wrap(loadErr, "could not parse config")
	}
	return configFromTree(tree)
}

func configFromTree(tree *toml.Tree) (*Config, error) {
	config := DefaultConfig()
	unmarshalErr := tree.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, errors.Wrap(unmarshalErr, "could not decode config")
	}
	if _, err := config.General.SuppressPeriod(); err != nil {
		return nil, err
	}
	config.fillDefaults()
	return &config, nil
}

// fillDefaults restores defaults for keys present but left empty.
func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.General.TopicNamespace == "" {
		c.General.TopicNamespace = def.General.TopicNamespace
	}
	if c.MQTT.BrokerAddr == "" {
		c.MQTT.BrokerAddr = def.MQTT.BrokerAddr
	}
	if c.MQTT.ClientID == "" {
		c.MQTT.ClientID = def.MQTT.ClientID
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		c.Window.Width, c.Window.Height = def.Window.Width, def.Window.Height
	}
	if c.Window.Title == "" {
		c.Window.Title = def.Window.Title
	}
	if c.Assets.BaseDir == "" {
		c.Assets.BaseDir = def.Assets.BaseDir
	}
	if c.Assets.Font == "" {
		c.Assets.Font = def.Assets.Font
	}
	if c.Assets.FontSize <= 0 {
		c.Assets.FontSize = def.Assets.FontSize
	}
}

func (g GeneralConfig) SuppressPeriod() (time.Duration, error) {
	if g.PressSuppressPeriod == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(g.PressSuppressPeriod)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid presssuppressperiod %q", g.PressSuppressPeriod)
	}
	return d, nil
}
