// Package scan looks for available short domain names under a
// top level domain.
package scan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . AvailabilityChecker,Sender

type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, domainName string) (available bool, err error)
}

type Sender interface {
	Send(ctx context.Context, message string)
}

type Logger interface {
	Debug(s string)
	Info(s string)
}

type Settings struct {
	TLD      string
	Length   int
	Throttle time.Duration
}

const MaxLength = 3

var (
	ErrLengthNotValid = errors.New("length is not valid")
	ErrTLDNotSet      = errors.New("top level domain is not set")
)

func (s Settings) Validate() (err error) {
	switch {
	case s.TLD == "":
		return ErrTLDNotSet
	case s.Length < 1 || s.Length > MaxLength:
		return fmt.Errorf("%w: %d must be between 1 and %d",
			ErrLengthNotValid, s.Length, MaxLength)
	}
	return nil
}

type Scanner struct {
	settings Settings
	checker  AvailabilityChecker
	sender   Sender
	logger   Logger
	sleep    func(ctx context.Context, d time.Duration) error
}

func New(settings Settings, checker AvailabilityChecker,
	sender Sender, logger Logger) *Scanner {
	settings.TLD = strings.TrimPrefix(strings.ToLower(settings.TLD), ".")
	return &Scanner{
		settings: settings,
		checker:  checker,
		sender:   sender,
		logger:   logger,
		sleep:    sleep,
	}
}

// Scan checks every name sequentially, waiting for the throttle
// duration between two checks, and sends the available names found
// as a single message. It stops at the first error.
func (s *Scanner) Scan(ctx context.Context) (available []string, err error) {
	err = s.settings.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	names := Names(s.settings.TLD, s.settings.Length)
	s.logger.Info(fmt.Sprintf("checking availability of %d domain names", len(names)))

	available = []string{}
	for i, name := range names {
		if i > 0 {
			err = s.sleep(ctx, s.settings.Throttle)
			if err != nil {
				return available, fmt.Errorf("waiting between checks: %w", err)
			}
		}

		isAvailable, err := s.checker.IsAvailable(ctx, name)
		if err != nil {
			return available, fmt.Errorf("checking %s: %w", name, err)
		}

		if isAvailable {
			s.logger.Info(name + " is available")
			available = append(available, name)
		} else {
			s.logger.Debug(name + " is not available")
		}
	}

	s.sender.Send(ctx, Message(s.settings, available))
	return available, nil
}

// Message formats the result of a scan.
func Message(settings Settings, available []string) string {
	if len(available) == 0 {
		return fmt.Sprintf("No .%s domain name of %d letters is available",
			settings.TLD, settings.Length)
	}
	return fmt.Sprintf("%d .%s domain names of %d letters are available: %s",
		len(available), settings.TLD, settings.Length, strings.Join(available, ", "))
}

// Names returns every name made of length letters from a to z
// under the top level domain, in lexicographic order.
func Names(tld string, length int) (names []string) {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	count := 1
	for i := 0; i < length; i++ {
		count *= len(letters)
	}

	names = make([]string, count)
	label := make([]byte, length)
	for i := range names {
		n := i
		for position := length - 1; position >= 0; position-- {
			label[position] = letters[n%len(letters)]
			n /= len(letters)
		}
		names[i] = string(label) + "." + tld
	}
	return names
}

func sleep(ctx context.Context, d time.Duration) (err error) {
	timer := time.NewTimer(d)
	select {
	case <-ctx.Done():
		if !timer.Stop() {
			<-timer.C
		}
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
