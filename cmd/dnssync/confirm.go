package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

type confirmation struct {
	in         io.Reader
	out        io.Writer
	isTerminal bool
	// env is the value of the CONFIRM environment variable.
	env string
}

// confirm returns true if the yes flag is set, if the CONFIRM
// environment variable is yes, or if the user answers yes to the
// question on an interactive terminal.
func (c confirmation) confirm(yes bool, question string) (confirmed bool, err error) {
	switch {
	case yes, strings.EqualFold(c.env, "yes"):
		return true, nil
	case !c.isTerminal:
		return false, nil
	}

	fmt.Fprint(c.out, question+" [y/N] ")
	answer, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func parseYesFlag(command string, args []string) (yes bool, err error) {
	flagSet := flag.NewFlagSet(command, flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.BoolVar(&yes, "yes", false, "skip the confirmation")
	err = flagSet.Parse(args)
	if err != nil {
		return false, fmt.Errorf("parsing %s flags: %w", command, err)
	}
	if flagSet.NArg() > 0 {
		return false, fmt.Errorf("%w: %s takes no argument, got %s",
			ErrArgumentsCount, command, strings.Join(flagSet.Args(), " "))
	}
	return yes, nil
}
