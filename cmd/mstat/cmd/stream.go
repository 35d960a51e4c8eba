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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	logger "github.com/orderstat/medianset/internal/mslog"
	"github.com/orderstat/medianset/pkg/container/medianset"
	"github.com/orderstat/medianset/pkg/math"
	"github.com/orderstat/medianset/pkg/stats"
)

var streamOptions struct {
	window  int
	follow  bool
	verbose bool
}

// streamDescription is used to describe the stream command in details.
var streamDescription = `stream replays an operation script from a file or stdin.
Each line is either a bare integer (inserted into the multiset), or one of:

  add N      insert one occurrence of N
  remove N   delete one occurrence of N
  median     print the current lower median

Lines starting with # are skipped. With --window N the stream is treated as a
plain value sequence and medians are computed over the last N values.`

var streamCmd = &cobra.Command{
	Use:               "stream [file]",
	Short:             "replay an operation script and print medians",
	Long:              streamDescription,
	Args:              cobra.MaximumNArgs(1),
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if streamOptions.verbose {
			logger.SetLevel(zapcore.DebugLevel)
		}

		in := io.Reader(os.Stdin)
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		return runStream(in, cmd.OutOrStdout(), streamOptions.window, streamOptions.follow)
	},
}

func init() {
	flags := streamCmd.Flags()
	flags.IntVarP(&streamOptions.window, "window", "w", 0,
		"sliding window capacity, 0 tracks the whole stream")
	flags.BoolVarP(&streamOptions.follow, "follow", "f", false,
		"print the median after every mutation")
	flags.BoolVar(&streamOptions.verbose, "verbose", false,
		"enable debug level logging")

	rootCmd.AddCommand(streamCmd)
}

// streamTracker narrows MedianSet and Window to what the replay loop
// needs. Window has no Remove on purpose: evictions are positional.
type streamTracker interface {
	Median() (int64, error)
	Len() int
}

func runStream(in io.Reader, out io.Writer, window int, follow bool) error {
	var (
		set     medianset.MedianSet[int64]
		win     *stats.Window[int64]
		tracker streamTracker
	)

	if window > 0 {
		w, err := stats.NewWindow[int64](window)
		if err != nil {
			return err
		}
		win, tracker = w, w
	} else {
		set = medianset.New[int64]()
		tracker = set
	}

	var (
		count    int
		min, max int64
	)

	push := func(v int64) {
		if win != nil {
			win.Push(v)
		} else {
			set.Add(v)
		}
		logger.Debugf("push %d", v)

		if count == 0 {
			min, max = v, v
		} else {
			min = math.Min(min, v)
			max = math.Max(max, v)
		}
		count++
	}

	printMedian := func(line int) error {
		m, err := tracker.Median()
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		fmt.Fprintf(out, "median %d\n", m)
		return nil
	}

	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		op := fields[0]
		if v, err := strconv.ParseInt(op, 10, 64); err == nil {
			push(v)
			if follow {
				if err := printMedian(line); err != nil {
					return err
				}
			}
			continue
		}

		switch op {
		case "add":
			v, err := parseOperand(fields, line)
			if err != nil {
				return err
			}
			push(v)
			if follow {
				if err := printMedian(line); err != nil {
					return err
				}
			}
		case "remove":
			if win != nil {
				return fmt.Errorf("line %d: remove is not supported in window mode", line)
			}
			v, err := parseOperand(fields, line)
			if err != nil {
				return err
			}
			if set.Remove(v) {
				fmt.Fprintf(out, "removed %d\n", v)
			} else {
				fmt.Fprintf(out, "absent %d\n", v)
			}
			if follow && tracker.Len() > 0 {
				if err := printMedian(line); err != nil {
					return err
				}
			}
		case "median":
			if err := printMedian(line); err != nil {
				return err
			}
		default:
			return fmt.Errorf("line %d: unknown operation %q", line, op)
		}
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	if count > 0 {
		logger.Infof("stream done: values=%d min=%d max=%d", count, min, max)
	}

	return nil
}

func parseOperand(fields []string, line int) (int64, error) {
	if len(fields) != 2 {
		return 0, fmt.Errorf("line %d: %s takes exactly one integer operand", line, fields[0])
	}

	v, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: %w", line, err)
	}

	return v, nil
}
