package config

import (
	"fmt"
	"net/url"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/ykanggit/goDaddy-API/internal/provider/providers/godaddy"
)

type GoDaddy struct {
	Key     string
	Secret  string
	BaseURL string
}

func (g *GoDaddy) setDefaults() {
	g.BaseURL = gosettings.DefaultComparable(g.BaseURL, godaddy.DefaultBaseURL)
}

// Validate does not require the key and secret since only
// some commands use the registrar API.
func (g GoDaddy) Validate() (err error) {
	u, err := url.Parse(g.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrURLNotValid, err)
	} else if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("%w: scheme %q is not http or https", ErrURLNotValid, u.Scheme)
	}
	return nil
}

func (g GoDaddy) String() string {
	return g.toLinesNode().String()
}

func (g GoDaddy) toLinesNode() *gotree.Node {
	node := gotree.New("GoDaddy")
	node.Appendf("API key: %s", obfuscate(g.Key))
	node.Appendf("API secret: %s", obfuscate(g.Secret))
	node.Appendf("API URL: %s", g.BaseURL)
	return node
}

func (g *GoDaddy) read(r *reader.Reader) {
	g.Key = r.String("GODADDY_API_KEY", reader.ForceLowercase(false))
	g.Secret = r.String("GODADDY_API_SECRET", reader.ForceLowercase(false))
	g.BaseURL = r.String("GODADDY_API_URL", reader.ForceLowercase(false))
}

