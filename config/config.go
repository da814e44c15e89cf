// Package config loads avrd's YAML configuration the way the teacher's
// cmd/multiserver does: a koanf instance seeded with this package's
// struct defaults, then overlaid with whatever a YAML file on disk
// provides, missing file tolerated.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	yml "github.com/go-yaml/yaml"
)

// DeviceConfig is one registered AVR, the config-file counterpart of the
// Register host action.
type DeviceConfig struct {
	Name   string `koanf:"name" yaml:"name"`
	Serial string `koanf:"serial" yaml:"serial"`
	Host   string `koanf:"host" yaml:"host"`
	Port   int    `koanf:"port" yaml:"port"`
}

// Config holds every tunable of the daemon: the static device list and
// the ambient timing/host-IPC/callback settings.
type Config struct {
	// Devices lists the AVRs to register at startup.
	Devices []DeviceConfig `koanf:"devices" yaml:"devices"`

	// ReconnectPeriodSeconds is how often a disconnected device is retried.
	ReconnectPeriodSeconds int `koanf:"reconnectPeriodSeconds" yaml:"reconnectPeriodSeconds"`
	// PingPeriodSeconds is the keep-alive probe interval.
	PingPeriodSeconds int `koanf:"pingPeriodSeconds" yaml:"pingPeriodSeconds"`
	// TimeoutSeconds is both the connect timeout and the probe-silence
	// timeout.
	TimeoutSeconds int `koanf:"timeoutSeconds" yaml:"timeoutSeconds"`

	// SocketPath is the Unix domain socket the host-IPC listener binds.
	SocketPath string `koanf:"socketPath" yaml:"socketPath"`
	// APIKey must match the apikey field of every inbound host message.
	APIKey string `koanf:"apikey" yaml:"apikey"`
	// CallbackURL receives outbound notification batches via HTTP POST.
	CallbackURL string `koanf:"callback" yaml:"callback"`
	// WatchdogSeconds is the period of the daemon-level Ping event; 0
	// disables it.
	WatchdogSeconds int `koanf:"watchdogSeconds" yaml:"watchdogSeconds"`

	// PIDFile is where the running process writes its PID.
	PIDFile string `koanf:"pidfile" yaml:"pidfile"`

	// DiagAddr is the listen address for the read-only HTTP diagnostics
	// surface, e.g. "127.0.0.1:8080". Empty disables it.
	DiagAddr string `koanf:"diagAddr" yaml:"diagAddr"`
}

// Default returns the built-in configuration, matching the original
// daemon's hardcoded defaults (_socket_port, _cycleConnect,
// _watchDogTimer, ...) translated into this package's field names.
func Default() Config {
	return Config{
		ReconnectPeriodSeconds: 60,
		PingPeriodSeconds:      30,
		TimeoutSeconds:         3,
		SocketPath:             "/tmp/avrd.sock",
		APIKey:                 "",
		CallbackURL:            "http://127.0.0.1:80/plugins/denonavr/core/php/jeeDenonAVR.php",
		WatchdogSeconds:        300,
		PIDFile:                "/tmp/avrd.pid",
		DiagAddr:               "",
	}
}

// k is the package-level koanf instance, mirroring cmd/multiserver's
// package-level `k = koanf.New(".")`.
var k = koanf.New(".")

// Load seeds k with Default()'s values, then overlays path if it exists.
// A missing file is not an error (matching cmd/multiserver's "no such"
// tolerance); any other read/parse error is returned.
func Load(path string) (Config, error) {
	k = koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return Config{}, err
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if !strings.Contains(err.Error(), "no such") {
			return Config{}, err
		}
	}
	var c Config
	if err := k.Unmarshal("", &c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// WriteDefault writes Default()'s values to path as YAML, for the
// daemon's "mkconf" command.
func WriteDefault(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return yml.NewEncoder(f).Encode(Default())
}
