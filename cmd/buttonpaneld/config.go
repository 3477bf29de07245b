package main

import (
	"os"

	butt "github.com/jahkeup/buttonpanel"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	envMQTTUsername = "BUTTONPANEL_MQTT_USERNAME"
	envMQTTPassword = "BUTTONPANEL_MQTT_PASSWORD"
)

func loadConfig(file string) (*butt.Config, error) {
	if file == "" {
		config := butt.DefaultConfig()
		return &config, nil
	}
	if _, err := os.Stat(file); os.IsNotExist(err) {
		logrus.Warnf("Config %s not found, using defaults", file)
		config := butt.DefaultConfig()
		return &config, nil
	}
	return butt.LoadConfig(file)
}

// applyEnv overrides broker credentials from the environment, reading .env
// first when there is one.
func applyEnv(config *butt.Config) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file loaded")
	}
	if v := os.Getenv(envMQTTUsername); v != "" {
		config.MQTT.Username = v
	}
	if v := os.Getenv(envMQTTPassword); v != "" {
		config.MQTT.Password = v
	}
}

func loadLayout(config *butt.Config) (butt.Layout, error) {
	if config.General.LayoutFile == "" {
		return butt.DefaultLayout(), nil
	}
	return butt.LoadLayout(config.General.LayoutFile)
}

func defaultConfig() []byte {
	tomlStr := `
[general]
topicnamespace = "GEMMA"
# layoutfile = "layout.yaml"
# presssuppressperiod = "300ms"

[mqtt]
brokeraddr = "tcp://localhost:1883"
clientid = "buttonpanel"

[window]
width = 800
height = 600
title = "GUI"

[assets]
basedir = "data"
font = "font.ttf"
fontsize = 24
`
	return []byte(tomlStr)
}

func writeDefaultConfig(file string) error {
	return errors.Wrapf(os.WriteFile(file, defaultConfig(), 0660), "could not write %s", file)
}
