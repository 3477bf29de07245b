package main

import (
	"flag"

	butt "github.com/jahkeup/buttonpanel"
	"github.com/jahkeup/buttonpanel/display"
	"github.com/sirupsen/logrus"
)

var (
	flagConfig      = flag.String("config", "buttonpanel.toml", "TOML config file")
	flagWriteConfig = flag.Bool("write-config", false, "Write a default config to -config and exit")
	flagMQTTBroker  = flag.String("broker", "", "MQTT Broker to publish to, overrides the config")
	flagAssets      = flag.String("assets", "", "Directory holding images and font, overrides the config")
	flagLogLevel    = flag.String("log", "INFO", "Log level to write out at")
)

func main() {
	flag.Parse()

	level := logrus.InfoLevel
	if parsedLevel, err := logrus.ParseLevel(*flagLogLevel); err == nil {
		level = parsedLevel
	} else {
		logrus.Warnf("Could not parse provided log level %q, falling back to %s", *flagLogLevel, level)
	}
	butt.SetLogLevel(level)
	logrus.SetLevel(level)

	if *flagWriteConfig {
		if err := writeDefaultConfig(*flagConfig); err != nil {
			logrus.Fatal(err)
		}
		return
	}

	if err := run(); err != nil {
		logrus.Fatal(err)
	}
}

// run returns once the window is closed. The broker connection is closed on
// every return path.
func run() error {
	config, err := loadConfig(*flagConfig)
	if err != nil {
		return err
	}
	applyEnv(config)
	if *flagMQTTBroker != "" {
		config.MQTT.BrokerAddr = *flagMQTTBroker
	}
	if *flagAssets != "" {
		config.Assets.BaseDir = *flagAssets
	}
	if err := config.MQTT.Validate(); err != nil {
		return err
	}

	layout, err := loadLayout(config)
	if err != nil {
		return err
	}
	period, err := config.General.SuppressPeriod()
	if err != nil {
		return err
	}

	publisher := connectPublisher(config.MQTT)
	defer publisher.Close()

	assets := display.NewAssets(config.Assets.BaseDir)
	face, err := assets.LoadFont(config.Assets.Font, float64(config.Assets.FontSize))
	if err != nil {
		return err
	}

	registry := butt.NewRegistry(assets,
		butt.NewStatePublisher(config.General.TopicNamespace, publisher),
		butt.WithPressSuppression(butt.NewPressSuppressor(period)))
	if err := registry.RegisterLayout(layout); err != nil {
		return err
	}

	panel := display.NewPanel(registry, face, config.Window)
	return display.Run(panel, config.Window)
}

// connectPublisher falls back to a NopPublisher when the broker cannot be
// reached. The address must already be valid.
func connectPublisher(conf butt.MQTTConfig) butt.Publisher {
	publisher, err := butt.NewMQTTPublisher(conf)
	if err != nil {
		logrus.WithError(err).Warn("MQTT broker unavailable, button states will not be published")
		return butt.NopPublisher{}
	}
	return publisher
}
