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
	"os"

	"github.com/spf13/cobra"

	logger "github.com/orderstat/medianset/internal/mslog"
)

// rootDescription is used to describe the mstat command in details.
var rootDescription = `mstat tracks the lower median of a mutable multiset of integers.
It can replay an operation script from a file or stdin, compute sliding-window
medians over a value stream, or serve the multiset over HTTP.`

var rootCmd = &cobra.Command{
	Use:               "mstat <command> [flags]",
	Short:             "order-statistic multiset toolkit",
	Long:              rootDescription,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
