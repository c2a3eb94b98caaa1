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

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a daemon listen address in format [host]:[port]
//	-driver storage driver ("sqlite" or "file")
//	-d storage path (sqlite database or JSON document)
//	-page-area page area JSON document path
//	-remote account service base URL
//	-remote-timeout remote call timeout (e.g., "3s", "500ms")
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("vaultlocker", flag.ContinueOnError)

	var daemonAddress NetAddress
	var storageDriver string
	var storagePath string
	var pageAreaPath string
	var remoteBaseURL string
	var remoteTimeout time.Duration
	var jsonConfigPath string

	fs.Var(&daemonAddress, "a", "Net address host:port")
	fs.StringVar(&storageDriver, "driver", "", "Storage driver (sqlite or file)")
	fs.StringVar(&storagePath, "d", "", "Storage path")
	fs.StringVar(&pageAreaPath, "page-area", "", "Page area document path")
	fs.StringVar(&remoteBaseURL, "remote", "", "Account service base URL")
	fs.DurationVar(&remoteTimeout, "remote-timeout", 0, "Remote call timeout (e.g., 3s, 500ms)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Storage: Storage{
			Driver:       storageDriver,
			Path:         storagePath,
			PageAreaPath: pageAreaPath,
		},
		Daemon: Daemon{
			Address: daemonAddress.String(),
		},
		Remote: Remote{
			BaseURL: remoteBaseURL,
			Timeout: remoteTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or "" when
// neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the
// NetAddress. It validates the port range and checks IP correctness unless
// host is "localhost".
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
