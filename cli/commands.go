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
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/mendersoftware/timemark/render"
	"github.com/mendersoftware/timemark/timer"
)

const startMark = "start"

func (runOptions *runOptionsType) runCommand(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errors.New("no commands given, nothing to time")
	}

	tm := timer.New()
	tm.Mark(startMark)

	var runErr error
	for i, command := range ctx.Args().Slice() {
		log.Debugf("running stage %d: %s", i+1, command)
		cmd := exec.Command("/bin/sh", "-c", command)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		err := cmd.Run()
		tm.Mark(command)
		if err != nil {
			runErr = errors.Wrapf(err, "command %q failed", command)
			break
		}
	}

	if err := runOptions.writeReport(tm); err != nil {
		if runErr == nil {
			return err
		}
		// The command failure is the more interesting error.
		log.Errorf("failed to write report: %s", err.Error())
	}
	return runErr
}

func (runOptions *runOptionsType) writeReport(tm *timer.Timer) error {
	var out io.Writer = os.Stdout
	if runOptions.output != "" {
		fd, err := os.Create(runOptions.output)
		if err != nil {
			return errors.Wrapf(err,
				"failed to create report file %q", runOptions.output)
		}
		defer fd.Close()
		out = fd
	}
	switch runOptions.reportFmt {
	case "", "text":
		return render.WriteText(out, tm, runOptions.decimals)
	case "html":
		return render.WriteHTML(out, tm, runOptions.decimals)
	case "chart":
		return render.WriteChart(out, tm, runOptions.decimals)
	}
	return errors.Errorf("unknown report format %q", runOptions.reportFmt)
}
