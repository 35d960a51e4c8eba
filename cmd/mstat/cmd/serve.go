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

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	logger "github.com/orderstat/medianset/internal/mslog"
	"github.com/orderstat/medianset/server"
	"github.com/orderstat/medianset/server/config"
	"github.com/orderstat/medianset/version"
)

const shutdownTimeout = 10 * time.Second

var (
	serveConfig *config.Config
	cfgFile     string
)

var serveCmd = &cobra.Command{
	Use:               "serve",
	Short:             "run the median HTTP service",
	Long:              `serve exposes the multiset over HTTP: insert and remove values, read the lower median and stats.`,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("read config file: %w", err)
			}
			if err := viper.Unmarshal(serveConfig); err != nil {
				return fmt.Errorf("unmarshal config file: %w", err)
			}
		}

		if err := serveConfig.Validate(); err != nil {
			return err
		}

		// Init logger
		if err := logger.Init(serveConfig.Console, serveConfig.Verbose, serveConfig.LogDir); err != nil {
			return fmt.Errorf("init serve logger: %w", err)
		}
		logger.Infof("version:\n%s", version.Version())

		return runServe()
	},
}

func init() {
	// Initialize default serve config
	serveConfig = config.New()

	// Add flags
	flags := serveCmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "the path of the configuration file, values in it override flags")
	flags.StringVar(&serveConfig.Server.IP, "ip", serveConfig.Server.IP, "ip the server listens on")
	flags.IntVar(&serveConfig.Server.Port, "port", serveConfig.Server.Port, "port the server listens on")
	flags.BoolVar(&serveConfig.Verbose, "verbose", serveConfig.Verbose, "enable debug level logging")
	flags.BoolVar(&serveConfig.Console, "console", serveConfig.Console, "log to the console instead of files")
	flags.StringVar(&serveConfig.LogDir, "logdir", serveConfig.LogDir, "log directory for file logging")

	if err := viper.BindPFlags(flags); err != nil {
		panic(fmt.Errorf("bind serve flags to viper: %w", err))
	}

	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	srv := server.New(serveConfig)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Infof("received signal %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			return err
		}
		return <-errCh
	}
}
