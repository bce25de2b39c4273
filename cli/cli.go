// Copyright 2023 Northern.tech AS
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//        http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.
package cli

import (
	"fmt"
	"runtime"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/mendersoftware/timemark/conf"
)

const (
	appDescription = "" +
		"timemark records named timing marks while running a sequence " +
		"of commands and renders an elapsed-time report per mark: time " +
		"since the first mark and time since the previous one.\n\n" +
		"Global flag remarks:\n" +
		"  - Supported log levels include: 'debug', 'info', " +
		"'warning', 'error', 'panic' and 'fatal'.\n"
	runDescription = "Each COMMAND is run through the shell in order. A " +
		"mark named 'start' is recorded first and one mark per command " +
		"after it finishes, so 'since previous' is the run time of each " +
		"command. A failing command aborts the sequence; the marks " +
		"recorded up to that point are still reported."
)

type logOptionsType struct {
	logLevel string
}

type runOptionsType struct {
	decimals   int
	reportFmt  string
	output     string
	logOptions logOptionsType
}

func ShowVersion() string {
	return fmt.Sprintf("%s\truntime: %s",
		conf.VersionString(), runtime.Version())
}

// SetupCLI parses the command line and runs the selected command.
func SetupCLI(args []string) error {
	runOptions := &runOptionsType{}

	app := &cli.App{
		Before:      runOptions.handleLogFlags,
		Description: appDescription,
		Name:        "timemark",
		Usage:       "record and report named timing marks.",
		Version:     ShowVersion(),
	}
	app.Commands = []*cli.Command{
		{
			Name:        "run",
			Usage:       "Time a sequence of shell commands.",
			Description: runDescription,
			ArgsUsage:   "<COMMAND>...",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:        "decimals",
					Aliases:     []string{"n"},
					Usage:       "Maximum `N`umber of decimals in the elapsed columns.",
					Value:       conf.DefaultReportDecimals,
					Destination: &runOptions.decimals},
				&cli.StringFlag{
					Name:        "format",
					Aliases:     []string{"f"},
					Usage:       "Report `FORMAT`: 'text', 'html' or 'chart'.",
					Value:       "text",
					Destination: &runOptions.reportFmt},
				&cli.StringFlag{
					Name:        "output",
					Aliases:     []string{"o"},
					Usage:       "Write the report to `FILE` instead of stdout.",
					Destination: &runOptions.output},
			},
			Action: runOptions.runCommand,
		},
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Aliases:     []string{"l"},
			Usage:       "Set logging `level`.",
			Value:       "warning",
			Destination: &runOptions.logOptions.logLevel},
	}
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintf(c.App.Writer, "%s\n", ShowVersion())
	}
	return app.Run(args)
}

func (runOptions *runOptionsType) handleLogFlags(_ *cli.Context) error {
	level, err := log.ParseLevel(runOptions.logOptions.logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	if level == log.DebugLevel {
		// Add the 'func' field to the logger to improve debug log messages
		log.SetReportCaller(true)
	}
	return nil
}
