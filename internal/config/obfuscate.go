package config

import "github.com/qdm12/gosettings"

func obfuscate(secret string) string {
	if secret == "" {
		return "[not set]"
	}
	return gosettings.ObfuscateKey(secret)
}
