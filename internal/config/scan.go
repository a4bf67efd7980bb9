package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/ykanggit/goDaddy-API/internal/scan"
)

type Scan struct {
	TLD      string
	Length   int
	Throttle time.Duration
}

func (s *Scan) setDefaults() {
	s.TLD = gosettings.DefaultComparable(s.TLD, "ai")
	const defaultLength = 2
	s.Length = gosettings.DefaultComparable(s.Length, defaultLength)
	const defaultThrottle = 100 * time.Millisecond
	s.Throttle = gosettings.DefaultComparable(s.Throttle, defaultThrottle)
}

func (s Scan) Validate() (err error) {
	err = s.ToSettings().Validate()
	if err != nil {
		return err
	}
	if s.Throttle < 0 {
		return fmt.Errorf("%w: throttle %s is negative", ErrTimeoutTooLow, s.Throttle)
	}
	return nil
}

func (s Scan) ToSettings() scan.Settings {
	return scan.Settings{
		TLD:      s.TLD,
		Length:   s.Length,
		Throttle: s.Throttle,
	}
}

func (s Scan) String() string {
	return s.toLinesNode().String()
}

func (s Scan) toLinesNode() *gotree.Node {
	node := gotree.New("Domain scan")
	node.Appendf("Top level domain: %s", s.TLD)
	node.Appendf("Length: %d", s.Length)
	node.Appendf("Throttle: %s", s.Throttle)
	return node
}

func (s *Scan) read(r *reader.Reader) (err error) {
	s.TLD = strings.TrimPrefix(r.String("SCAN_TLD"), ".")
	s.Length, err = r.Int("SCAN_LENGTH")
	if err != nil {
		return err
	}
	s.Throttle, err = r.Duration("SCAN_THROTTLE")
	return err
}
