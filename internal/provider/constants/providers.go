package constants

type Provider string

// All possible provider values.
const (
	GoDaddy Provider = "godaddy"
	Route53 Provider = "route53"
)

func ProviderChoices() []Provider {
	return []Provider{
		GoDaddy,
		Route53,
	}
}
