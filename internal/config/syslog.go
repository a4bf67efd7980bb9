package config

import (
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Syslog struct {
	Enabled *bool
	Tag     string
}

func (s *Syslog) setDefaults() {
	s.Enabled = gosettings.DefaultPointer(s.Enabled, false)
	s.Tag = gosettings.DefaultComparable(s.Tag, "dnssync")
}

func (s Syslog) Validate() (err error) {
	return nil
}

func (s Syslog) String() string {
	return s.toLinesNode().String()
}

func (s Syslog) toLinesNode() *gotree.Node {
	if !*s.Enabled {
		return gotree.New("Syslog: disabled")
	}
	node := gotree.New("Syslog")
	node.Appendf("Tag: %s", s.Tag)
	return node
}

func (s *Syslog) read(r *reader.Reader) (err error) {
	s.Enabled, err = r.BoolPtr("SYSLOG_ENABLED")
	if err != nil {
		return err
	}
	s.Tag = r.String("SYSLOG_TAG", reader.ForceLowercase(false))
	return nil
}
