// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a flag.Value holding a host:port pair. An empty host means
// all interfaces.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line arguments (without the program name) into a
// [StructuredConfig]. Unset flags leave their fields zero.
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	var serverAddress NetAddress
	var jsonConfigPath string
	var version string
	var lifetimeMinutes int
	var maxUploadBytes int64
	var strictIDs bool
	var requestTimeout time.Duration
	var uploadTimeout time.Duration
	var statsInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&version, "version", "", "Reported server version")
	fs.IntVar(&lifetimeMinutes, "lifetime", 0, "Batch lifetime in minutes")
	fs.Int64Var(&maxUploadBytes, "max-upload-bytes", 0, "Maximum upload request size in bytes, -1 for no limit")
	fs.BoolVar(&strictIDs, "strict-ids", false, "Never replace a live batch on id collision")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&uploadTimeout, "upload-timeout", 0, "Upload body read timeout (e.g., 10m)")
	fs.DurationVar(&statsInterval, "stats-interval", 0, "Registry stats log interval (e.g., 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Version: version,
		},
		Storage: Storage{
			Registry: Registry{
				LifetimeMinutes: lifetimeMinutes,
				MaxUploadBytes:  maxUploadBytes,
				StrictIDs:       strictIDs,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			UploadTimeout:  uploadTimeout,
		},
		Workers: Workers{
			StatsInterval: statsInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return a.Host + ":" + strconv.Itoa(a.Port)
}

func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}
	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
