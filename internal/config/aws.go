package config

import (
	"fmt"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type AWS struct {
	Profile         string
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	// HostedZone is the Route 53 hosted zone name, and defaults
	// to the registered domain of the target hostname.
	HostedZone   string
	InstanceName string
}

func (a *AWS) setDefaults() {
	a.Region = gosettings.DefaultComparable(a.Region, "us-west-2")
}

func (a AWS) Validate() (err error) {
	if (a.AccessKeyID == "") != (a.SecretAccessKey == "") {
		return fmt.Errorf("%w", ErrCredentialsPair)
	}
	return nil
}

func (a AWS) String() string {
	return a.toLinesNode().String()
}

func (a AWS) toLinesNode() *gotree.Node {
	node := gotree.New("AWS")
	switch {
	case a.AccessKeyID != "":
		node.Appendf("Access key ID: %s", obfuscate(a.AccessKeyID))
		node.Appendf("Secret access key: %s", obfuscate(a.SecretAccessKey))
	case a.Profile != "":
		node.Appendf("Profile: %s", a.Profile)
	default:
		node.Appendf("Credentials: default chain")
	}
	node.Appendf("Region: %s", a.Region)
	if a.HostedZone != "" {
		node.Appendf("Hosted zone: %s", a.HostedZone)
	}
	if a.InstanceName != "" {
		node.Appendf("EC2 instance name: %s", a.InstanceName)
	}
	return node
}

func (a *AWS) read(r *reader.Reader) {
	a.Profile = r.String("AWS_PROFILE", reader.ForceLowercase(false))
	a.AccessKeyID = r.String("AWS_ACCESS_KEY_ID", reader.ForceLowercase(false))
	a.SecretAccessKey = r.String("AWS_SECRET_ACCESS_KEY", reader.ForceLowercase(false))
	a.Region = r.String("AWS_REGION")
	a.HostedZone = r.String("AWS_HOSTED_ZONE")
	a.InstanceName = r.String("EC2_INSTANCE_NAME", reader.ForceLowercase(false))
}
