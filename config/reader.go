package config

import (
	"github.com/spf13/viper"

	"github.com/gospike/nest/log"
)

var defaultConfig *Simulation

// ViperSetDefaults sets the default values for the viper config.
func ViperSetDefaults(v *viper.Viper) {
	setDefaults(v)
}

// ReadNamedConfig reads the config with the provided name.
func ReadNamedConfig(name string) (*Simulation, error) {
	return readNamedConfig(name)
}

// ReadConfig reads the config with the default 'config' name.
func ReadConfig() (*Simulation, error) {
	return readNamedConfig("config")
}

// ReadDefaultConfig reads the default configuration.
func ReadDefaultConfig() *Simulation {
	return readDefaultConfig()
}

func readNamedConfig(name string) (*Simulation, error) {
	v := viper.New()
	v.SetConfigName(name)

	v.AddConfigPath(".")
	v.AddConfigPath("configs")

	setDefaults(v)

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	s := &Simulation{}
	if err = v.Unmarshal(s); err != nil {
		log.Debugf("Unmarshaling Simulation Config failed. %v", err)
		return nil, err
	}

	return s, nil
}

func readDefaultConfig() *Simulation {
	if defaultConfig == nil {
		v := viper.New()
		setDefaults(v)

		s := &Simulation{}

		if err := v.Unmarshal(s); err != nil {
			log.Debugf("Unmarshaling Config failed: %v", err)
			panic(err)
		}
		defaultConfig = s
	}

	return defaultConfig
}

// Default values
func setDefaults(v *viper.Viper) {
	keys := map[string]interface{}{
		"naming_convention":   "snake",
		"timestep":            DefaultTimestep,
		"min_delay":           DefaultMinDelay,
		"max_delay":           DefaultMaxDelay,
		"threads":             1,
		"rng_seed":            DefaultRNGSeed,
		"spike_precision":     "off_grid",
		"recording_precision": DefaultRecordingPrecision,
		"t_flush":             -1.0,
	}

	for k, value := range keys {
		v.SetDefault(k, value)
	}
}
