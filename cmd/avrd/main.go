// Command avrd is a supervisor daemon for Denon/Marantz AVRs: it keeps a
// persistent control session open to each registered receiver, exposes
// a host-IPC command intake, and forwards state-change notifications to
// a callback URL. Command dispatch mirrors cmd/multiserver's switch on
// os.Args[1].
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/hcavr/avrd/avr"
	"github.com/hcavr/avrd/config"
	"github.com/hcavr/avrd/hostipc"
	"github.com/hcavr/avrd/server"
	"github.com/hcavr/avrd/session"
	"github.com/hcavr/avrd/supervisor"
)

// Version is the version number, injected via ldflags with git build.
var Version = "dev"

// ConfigFileName is the default configuration file name, read from the
// current directory.
const ConfigFileName = "avrd.yml"

func root() {
	str := `avrd is a supervisor daemon for Denon/Marantz AVRs over TCP/23.
It maintains a persistent control session per registered receiver and
exposes a host-IPC command intake over a Unix domain socket.

Usage:
	avrd <command>

Commands:
	run
	help
	mkconf
	conf
	version`
	fmt.Println(str)
}

func help() {
	str := `avrd is configured via a YAML file (default: avrd.yml in the working
directory). When no configuration is found, built-in defaults are used.
The command mkconf writes the defaults to avrd.yml; conf prints the
configuration currently in effect.`
	fmt.Println(str)
}

func mkconf() {
	if err := config.WriteDefault(ConfigFileName); err != nil {
		log.Fatal(err)
	}
}

func printConf() {
	c, err := config.Load(ConfigFileName)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%+v\n", c)
}

func printVersion() {
	fmt.Printf("avrd version %v\n", Version)
}

func run() {
	c, err := config.Load(ConfigFileName)
	if err != nil {
		log.Fatal(err)
	}

	if err := writePID(c.PIDFile); err != nil {
		log.Printf("avrd: could not write pid file %s: %v", c.PIDFile, err)
	}
	defer os.Remove(c.PIDFile)

	sup := supervisor.New(
		time.Duration(c.ReconnectPeriodSeconds)*time.Second,
		time.Duration(c.TimeoutSeconds)*time.Second,
		time.Duration(c.PingPeriodSeconds)*time.Second,
	)

	sink := hostipc.NewSink(c.CallbackURL)
	go sink.Run()
	defer sink.Stop()

	sup.NotifyMe(
		func(name string, s *session.Session, def avr.CommandDef, value avr.Cell) {
			n := supervisor.BuildNotification(name, s, def, value)
			sink.Add(n.Key, n)
		},
		func(name, serial string, s *session.Session, kind avr.EventKind) {
			n := supervisor.BuildEvent(name, serial, kind)
			sink.Add(n.Key, n)
		},
	)

	for _, d := range c.Devices {
		sup.Register(d.Name, d.Serial, d.Host, d.Port)
	}

	listener, err := hostipc.New(c.SocketPath, c.APIKey, sup)
	if err != nil {
		log.Fatalf("avrd: could not open host-IPC socket %s: %v", c.SocketPath, err)
	}
	go func() {
		if err := listener.Serve(); err != nil {
			log.Printf("avrd: host-IPC listener stopped: %v", err)
		}
	}()

	sink.SendImmediate("daemon", hostipc.DaemonEvent{Event: "Listening"})
	log.Printf("avrd: listening on %s, callback %s", c.SocketPath, c.CallbackURL)

	if c.DiagAddr != "" {
		diag := server.New(sup)
		go func() {
			if err := http.ListenAndServe(c.DiagAddr, diag.Routes()); err != nil {
				log.Printf("avrd: diagnostics server stopped: %v", err)
			}
		}()
		log.Printf("avrd: diagnostics on %s", c.DiagAddr)
	}

	if c.WatchdogSeconds > 0 {
		go watchdog(sink, time.Duration(c.WatchdogSeconds)*time.Second)
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	log.Printf("avrd: shutting down")
	sink.SendImmediate("daemon", hostipc.DaemonEvent{Event: "Shutdown"})
	listener.Close()
	sup.UnregisterAll()
}

func watchdog(sink *hostipc.Sink, period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for range ticker.C {
		sink.Add("daemon", hostipc.DaemonEvent{Event: "Ping"})
	}
}

func writePID(path string) error {
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o644)
}

func main() {
	args := os.Args
	if len(args) == 1 {
		root()
		return
	}
	cmd := strings.ToLower(args[1])
	switch cmd {
	case "help":
		help()
	case "mkconf":
		mkconf()
	case "conf":
		printConf()
	case "run":
		run()
	case "version":
		printVersion()
	default:
		log.Fatalf("unknown command %q", cmd)
	}
}
