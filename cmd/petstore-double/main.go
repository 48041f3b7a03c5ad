/*
Copyright 2026 the Petstore E2E Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/zapr"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/petstore-e2e/petstore/pkg/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	code := run(ctx, os.Args[1:])

	stop()
	os.Exit(code)
}

// run serves until the context is cancelled and returns the process exit
// code. Logs are flushed on every path.
func run(ctx context.Context, args []string) int {
	flags := pflag.NewFlagSet("petstore-double", pflag.ContinueOnError)

	options := server.NewOptions()
	options.AddFlags(flags)

	logLevel := flags.String("log-level", "info", "Log level, debug logs every request.")

	if err := flags.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	level, err := zapcore.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)

	zapLogger, err := config.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	defer func() {
		_ = zapLogger.Sync()
	}()

	logger := zapr.NewLogger(zapLogger).WithName("petstore-double")
	logger.Info("service starting")

	s, err := server.New(options, logger)
	if err != nil {
		logger.Error(err, "failed to create server")
		return 1
	}

	if err := s.Run(ctx); err != nil {
		logger.Error(err, "server exited")
		return 1
	}

	return 0
}
