/*
 * Copyright 2022 Medicines Discovery Catapult
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *     http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package lib

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFlag = "config"

type BaseConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

/**
	InitializeConfig standardises config initialization across the item extractor,
	the lexicon cache builder and the scoring api.

	Config is read from a yml file. By default this is located at defaultPath, but can be
	overridden with the --config flag, e.g. --config ./config/item-extractor.local.yml.

	Keys which exist in defaults but NOT in the yml file are still set. A list of
	acceptance intervals, for example, only has to be written down when it differs from
	the reference run.

	Env vars override config keys when the env var has the upper-cased name of the key,
	with "." replaced by "_": SELECTION_PER_LENGTH overrides selection.per_length.

	The log level of the global zerolog logger is set from the log_level key.

	target must be a pointer to a struct which the config can be unmarshalled to.
**/
func InitializeConfig(defaultPath string, defaults map[string]interface{}, target interface{}) error {
	if pflag.Lookup(configFlag) == nil {
		pflag.String(configFlag, defaultPath, "The config file path.")
	}
	if !pflag.Parsed() {
		pflag.Parse()
	}

	v := viper.New()
	if err := v.BindPFlags(pflag.CommandLine); err != nil {
		return err
	}

	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	if _, ok := defaults["log_level"]; !ok {
		v.SetDefault("log_level", "info")
	}

	if err := readConfigFile(v, v.GetString(configFlag)); err != nil {
		return err
	}

	var bc BaseConfig
	if err := v.Unmarshal(&bc); err != nil {
		return err
	}
	if err := SetLogLevel(bc.LogLevel); err != nil {
		return err
	}

	return v.Unmarshal(target)
}

// readConfigFile points viper at configFile and reads it. A missing file is not an error:
// the defaults and env vars are used instead.
func readConfigFile(v *viper.Viper, configFile string) error {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configFile == "" {
		log.Warn().Msg("no config file given, default settings applied")
		return nil
	}

	if !filepath.IsAbs(configFile) {
		abs, err := filepath.Abs(configFile)
		if err != nil {
			return err
		}
		configFile = abs
	}

	v.SetConfigName(strings.TrimSuffix(filepath.Base(configFile), filepath.Ext(configFile)))
	v.AddConfigPath(filepath.Dir(configFile))

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		log.Warn().Err(err).Msg("default settings applied")
		return nil
	}
	return err
}

// SetLogLevel sets the global zerolog level. An empty level means info.
func SetLogLevel(level string) error {
	if level == "" {
		level = zerolog.InfoLevel.String()
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}
