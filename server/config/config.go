/*
 *     Copyright 2024 The Orderstat Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import "fmt"

type Config struct {
	Server  ServerConfig `yaml:"server" mapstructure:"server"`
	Verbose bool         `yaml:"verbose" mapstructure:"verbose"`
	Console bool         `yaml:"console" mapstructure:"console"`
	LogDir  string       `yaml:"log-dir" mapstructure:"log-dir"`
}

type ServerConfig struct {
	IP   string `yaml:"ip" mapstructure:"ip"`
	Port int    `yaml:"port" mapstructure:"port"`
}

// New returns the default configuration: listen on all interfaces and
// log to the console.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			IP:   "0.0.0.0",
			Port: 8180,
		},
		Console: true,
		LogDir:  "logs",
	}
}

func (cfg *Config) Validate() error {
	if cfg.Server.IP == "" {
		return fmt.Errorf("server config error: ip is empty")
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server config error: invalid port %d", cfg.Server.Port)
	}

	if !cfg.Console && cfg.LogDir == "" {
		return fmt.Errorf("server config error: log-dir is required for file logging")
	}

	return nil
}
