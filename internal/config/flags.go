package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-page entry mode (main, update, update_local, config, hide, alarmd)
//	-params fetch params for update pages
//	-toggle setting flipped by the config page
//	-a companion address in format [host]:[port]
//	-grpc-address companion gRPC health address in format [host]:[port]
//	-d database DSN
//	-f snapshot file path
//	-c/-config JSON or TOML file path with configs
//	-lang message language
//	-log log file path
//	-headless disable the terminal display
//	-hash-key request signing key
//	-request-timeout channel request timeout (e.g., "5s")
//	-fetch-interval background wake interval (e.g., "5m")
//	-listen companion simulator address in format [host]:[port]
//	-listen-grpc companion simulator gRPC health address
//	-assets companion simulator image directory
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("drip-watch", flag.ContinueOnError)

	var adapterAddress, adapterGRPCAddress, listenAddress, listenGRPCAddress NetAddress
	var page, params, toggle string
	var databaseDSN, snapshotPath, configPath string
	var language, logPath, hashKey, assetsDir string
	var headless bool
	var requestTimeout, fetchInterval time.Duration

	fs.StringVar(&page, "page", "", "Entry mode")
	fs.StringVar(&params, "params", "", "Fetch params for update pages")
	fs.StringVar(&toggle, "toggle", "", "Setting flipped by the config page")
	fs.Var(&adapterAddress, "a", "Companion address host:port")
	fs.Var(&adapterGRPCAddress, "grpc-address", "Companion gRPC health address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&snapshotPath, "f", "", "Snapshot file path")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&language, "lang", "", "Message language")
	fs.StringVar(&logPath, "log", "", "Log file path")
	fs.BoolVar(&headless, "headless", false, "Disable the terminal display")
	fs.StringVar(&hashKey, "hash-key", "", "Request signing key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 5s)")
	fs.DurationVar(&fetchInterval, "fetch-interval", 0, "Background wake interval (e.g., 5m)")
	fs.Var(&listenAddress, "listen", "Companion simulator address host:port")
	fs.Var(&listenGRPCAddress, "listen-grpc", "Companion simulator gRPC health address host:port")
	fs.StringVar(&assetsDir, "assets", "", "Companion simulator image directory")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	var headlessValue string
	if headless {
		headlessValue = "true"
	}

	return &StructuredConfig{
		App: App{
			Language: language,
			LogPath:  logPath,
			Headless: headlessValue,
		},
		Launch: Launch{
			Page:   page,
			Params: params,
			Toggle: toggle,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				SnapshotPath: snapshotPath,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress.String(),
			GRPCAddress:    adapterGRPCAddress.String(),
			RequestTimeout: requestTimeout,
			HashKey:        hashKey,
		},
		Sync: Sync{
			FetchInterval: fetchInterval,
		},
		Server: Server{
			HTTPAddress: listenAddress.String(),
			GRPCAddress: listenGRPCAddress.String(),
			HashKey:     hashKey,
			AssetsDir:   assetsDir,
		},
		ConfigFilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
