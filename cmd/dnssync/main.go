package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
	"github.com/ykanggit/goDaddy-API/internal/config"
	"github.com/ykanggit/goDaddy-API/internal/healthchecksio"
	"github.com/ykanggit/goDaddy-API/internal/httpclient"
	"github.com/ykanggit/goDaddy-API/internal/models"
	"golang.org/x/term"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	err := loadEnvFile(os.Getenv("ENV_FILE"))
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	ctx, cancel := context.WithCancel(ctx)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, reader, os.Args, logger, buildInfo, time.Now)
	}()

	select {
	case <-ctx.Done():
		stop()
		logger.Warn("Caught OS signal, shutting down")
	case err := <-errorCh:
		stop()
		close(errorCh)
		if err == nil {
			os.Exit(0)
		}
		logger.Error(err.Error())
		cancel()
	}

	const shutdownGracePeriod = 5 * time.Second
	timer := time.NewTimer(shutdownGracePeriod)
	select {
	case err := <-errorCh:
		if !timer.Stop() {
			<-timer.C
		}
		if err != nil {
			logger.Error(err.Error())
		}
		logger.Info("Shutdown successful")
	case <-timer.C:
		logger.Warn("Shutdown timed out")
	}

	os.Exit(1)
}

// loadEnvFile loads the variables of the .env file without overriding
// the variables already set. The default .env file is optional.
func loadEnvFile(path string) (err error) {
	if path == "" {
		path = ".env"
		_, err = os.Stat(path)
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
	}

	err = godotenv.Load(path)
	if err != nil {
		return fmt.Errorf("loading environment file: %w", err)
	}
	return nil
}

var ErrCommandUnknown = errors.New("command is unknown")

func _main(ctx context.Context, reader *reader.Reader, args []string, logger log.LoggerInterface,
	buildInfo models.BuildInformation, timeNow func() time.Time) (err error) {
	command := commandReconcile
	var commandArgs []string
	if len(args) > 1 {
		command = strings.TrimLeft(args[1], "-")
		commandArgs = args[2:]
	}

	switch command {
	case "version":
		fmt.Println(buildInfo.VersionString())
		return nil
	case "help", "h":
		printUsage()
		return nil
	case commandReconcile, commandScan, commandRotateIP:
		printSplash(buildInfo)
	case commandGet, commandSet, commandDelete, commandAvailable, commandNotify:
	default:
		printUsage()
		return fmt.Errorf("%w: %s", ErrCommandUnknown, command)
	}

	config, err := readConfig(reader, logger)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: config.Client.Timeout}
	client = httpclient.NewLogging(client, logger.New(log.SetComponent("http")))
	defer httpclient.CloseIdleConnections(client)

	notifier, closeNotifier := makeNotifier(config, client, logger)
	defer closeNotifier()

	c := &commands{
		config:   config,
		client:   client,
		logger:   logger,
		notifier: notifier,
		timeNow:  timeNow,
		stdout:   os.Stdout,
		confirmation: confirmation{
			in:         os.Stdin,
			out:        os.Stdout,
			isTerminal: term.IsTerminal(int(os.Stdin.Fd())),
			env:        reader.String("CONFIRM"),
		},
	}

	switch command {
	case commandReconcile, commandScan, commandRotateIP:
	default:
		return c.run(ctx, command, commandArgs)
	}

	hioClient := healthchecksio.New(client, config.Health.HealthchecksioBaseURL,
		config.Health.HealthchecksioUUID)
	runID := uuid.NewString()
	err = hioClient.Ping(ctx, healthchecksio.Start, runID, "")
	if err != nil {
		logger.Warn("pinging healthchecks.io: " + err.Error())
	}

	err = c.run(ctx, command, commandArgs)
	if err != nil {
		exitHealthchecksio(hioClient, runID, logger, healthchecksio.Exit1, err.Error())
		return err
	}
	exitHealthchecksio(hioClient, runID, logger, healthchecksio.Exit0, "")
	return nil
}

// exitHealthchecksio uses its own context so the exit status is
// reported even if the main context is canceled.
func exitHealthchecksio(hioClient *healthchecksio.Client, runID string,
	logger log.LoggerInterface, state healthchecksio.State, message string) {
	const timeout = 3 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	err := hioClient.Ping(ctx, state, runID, message)
	if err != nil {
		logger.Error(err.Error())
	}
}

func printUsage() {
	fmt.Println(`Usage: dnssync [command] [arguments]

Commands:
  reconcile            update the A record of TARGET_HOSTNAME if the public IP changed (default)
  get                  print the A records published for TARGET_HOSTNAME
  set <ipv4>           set the A record of TARGET_HOSTNAME to the given IPv4 address
  delete [--yes]       delete the A record set of TARGET_HOSTNAME
  available <domain>   check if domain names can be registered
  scan                 look for available SCAN_LENGTH letters names under SCAN_TLD
  rotate-ip            rotate the elastic IP of EC2_INSTANCE_NAME and update the A record
  notify <message>     send a message through the configured notifiers
  version              print the program version`)
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "ykanggit",
		Repository: "goDaddy-API",
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Println(line)
	}
}

func readConfig(reader *reader.Reader, logger log.LoggerInterface) (
	config config.Config, err error) {
	err = config.Read(reader, logger)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Info(config.String())

	return config, nil
}
