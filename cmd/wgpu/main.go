/*
 * Copyright (c) 2024, NVIDIA CORPORATION.  All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	nvinfo "github.com/NVIDIA/go-nvlib/pkg/nvlib/info"
	"github.com/NVIDIA/go-nvml/pkg/nvml"
	cli "github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/NVIDIA/wgpu/internal/attribution"
	"github.com/NVIDIA/wgpu/internal/info"
	"github.com/NVIDIA/wgpu/internal/logger"
	"github.com/NVIDIA/wgpu/internal/render"
	"github.com/NVIDIA/wgpu/internal/resource"
	"github.com/NVIDIA/wgpu/internal/telemetry"
)

// exitCodeUnavailable is returned when the device-management layer cannot be
// initialized. The (empty) report is still printed in that case.
const exitCodeUnavailable = 2

// Config represents a collection of config options for wgpu.
type Config struct {
	gpu       int
	username  string
	color     string
	output    string
	verbosity int

	// newManager creates the device-management layer for a run.
	newManager func() resource.Manager
	// resolverOptions are passed to the process attribution resolver.
	resolverOptions []attribution.Option
}

func main() {
	config := &Config{
		newManager: newManager,
	}

	c := newApp(config, os.Stdout, os.Stderr)

	err := c.Run(os.Args)
	var initErr *resource.InitError
	switch {
	case errors.As(err, &initErr):
		os.Exit(exitCodeUnavailable)
	case err != nil:
		klog.Error(err)
		os.Exit(1)
	}
}

func newApp(config *Config, stdout io.Writer, stderr io.Writer) *cli.App {
	// -v selects the log verbosity, so --version has no short alias.
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}

	c := cli.NewApp()
	c.Name = "wgpu"
	c.Usage = "show who is using which GPU and what they are doing"
	c.Version = info.GetVersionString()
	c.Writer = stdout
	c.ErrWriter = stderr
	c.Before = func(ctx *cli.Context) error {
		return setupLogging(config.verbosity)
	}
	c.Action = func(ctx *cli.Context) error {
		return run(ctx, config)
	}

	c.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:        "gpu",
			Usage:       "select the ID of the GPU to highlight",
			Destination: &config.gpu,
		},
		&cli.StringFlag{
			Name:        "username",
			Usage:       "select the name of the user to highlight",
			Destination: &config.username,
		},
		&cli.StringFlag{
			Name:        "color",
			Value:       string(render.ColorAuto),
			Usage:       "when to style highlighted rows:\n\t\t[auto | always | never]",
			Destination: &config.color,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Value:       string(render.FormatTable),
			Usage:       "the output format of the report:\n\t\t[table | json | yaml]",
			Destination: &config.output,
		},
		&cli.IntFlag{
			Name:        "v",
			Value:       0,
			Usage:       "the log level verbosity",
			Destination: &config.verbosity,
		},
	}

	return c
}

// setupLogging configures klog. Operational logs are only shown at the requested verbosity.
func setupLogging(verbosity int) error {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	if err := fs.Set("v", strconv.Itoa(verbosity)); err != nil {
		return fmt.Errorf("unable to set log verbosity: %v", err)
	}
	return nil
}

func newManager() resource.Manager {
	nvmllib := nvml.New()
	infolib := nvinfo.New(
		nvinfo.WithNvmlLib(nvmllib),
	)
	return resource.NewManager(infolib, nvmllib, logger.ToKlog)
}

func run(c *cli.Context, config *Config) error {
	format, err := render.ParseFormat(config.output)
	if err != nil {
		return fmt.Errorf("unable to validate flags: %v", err)
	}
	colorMode, err := render.ParseColorMode(config.color)
	if err != nil {
		return fmt.Errorf("unable to validate flags: %v", err)
	}

	opts := []render.Option{
		render.WithFormat(format),
		render.WithStyler(render.NewStyler(colorMode, c.App.Writer)),
	}
	if c.IsSet("gpu") {
		opts = append(opts, render.WithWatchGPU(config.gpu))
	}
	if c.IsSet("username") {
		opts = append(opts, render.WithWatchUser(config.username))
	}

	snapshot, collectErr := telemetry.NewCollector(config.newManager()).Collect()
	for _, d := range snapshot.Diagnostics {
		fmt.Fprintln(c.App.ErrWriter, d)
	}
	if collectErr != nil {
		fmt.Fprintln(c.App.ErrWriter, collectErr)
	}

	attribution.NewResolver(config.resolverOptions...).Resolve(snapshot.Devices)

	if err := render.NewRenderer(opts...).Render(c.App.Writer, snapshot); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}

	return collectErr
}
