// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rc3/fleet-controller/internal/cmdutil"
	"github.com/rc3/fleet-controller/internal/gatewayhub"
)

func main() {
	defaults := gatewayhub.DefaultConfig()

	var (
		port              int
		healthPort        int
		rednetConfigPath  string
		gatewayTimeout    time.Duration
		heartbeatInterval time.Duration
		heartbeatTimeout  time.Duration
		logLevel          string
	)

	flag.IntVar(&port, "port", cmdutil.GetEnvInt("PORT", defaults.Port), "Gateway/link server port")
	flag.IntVar(&healthPort, "health-port", cmdutil.GetEnvInt("HEALTH_PORT", defaults.HealthPort), "Healthz/metrics server port")
	flag.StringVar(&rednetConfigPath, "rednet-config", cmdutil.GetEnv("ROCKET_REDNET", ""), "Path to the rednet route table YAML file")
	flag.DurationVar(&gatewayTimeout, "gateway-timeout", defaults.GatewayTimeout, "How long a /gateway request waits for an RPC reply")
	flag.DurationVar(&heartbeatInterval, "heartbeat-interval", defaults.HeartbeatInterval, "Listener ping interval")
	flag.DurationVar(&heartbeatTimeout, "heartbeat-timeout", defaults.HeartbeatTimeout, "Listener pong deadline")
	flag.StringVar(&logLevel, "log-level", cmdutil.GetEnv("LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	flag.Parse()

	logger := cmdutil.SetupLogger(logLevel)

	if rednetConfigPath == "" {
		logger.Error("rednet config path is required (--rednet-config or ROCKET_REDNET)")
		os.Exit(1)
	}

	logger.Info("starting rednet gateway hub",
		"port", port,
		"healthPort", healthPort,
		"rednetConfig", rednetConfigPath,
		"gatewayTimeout", gatewayTimeout,
		"heartbeatInterval", heartbeatInterval,
		"heartbeatTimeout", heartbeatTimeout,
	)

	cfg := defaults
	cfg.Port = port
	cfg.HealthPort = healthPort
	cfg.RednetConfigPath = rednetConfigPath
	cfg.GatewayTimeout = gatewayTimeout
	cfg.HeartbeatInterval = heartbeatInterval
	cfg.HeartbeatTimeout = heartbeatTimeout

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := gatewayhub.New(cfg, logger)
	if err := srv.Start(ctx); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}
