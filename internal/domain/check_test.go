package domain

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ykanggit/goDaddy-API/internal/provider/errors"
)

func Test_CheckDomain(t *testing.T) {
	t.Parallel()
	testCases := map[string]struct {
		domain     string
		errWrapped error
		errMessage string
	}{
		"empty_domain": {
			domain:     "",
			errWrapped: errors.ErrDomainNotSet,
			errMessage: "domain is not set",
		},
		"root_dot_only": {
			domain:     ".",
			errWrapped: errors.ErrDomainNotSet,
			errMessage: "domain is not set",
		},
		"lowercase_valid": {
			domain: "example.com",
		},
		"uppercase_valid": {
			domain: "EXAMPLE.com",
		},
		"trailing_dot_valid": {
			domain: "or1.iooi.life.",
		},
		"hyphen_valid": {
			domain: "foo-bar.com",
		},
		"digit_label_valid": {
			domain: "4runner.oakridge.io",
		},
		"single_label": {
			domain:     "localhost",
			errWrapped: ErrDomainTLDMissing,
			errMessage: `domain has missing top level domain: "localhost"`,
		},
		"domain_too_long": {
			domain:     strings.Repeat("a.", 130) + "com",
			errWrapped: ErrDomainTooLong,
			errMessage: "domain name is too long: 263 characters exceeding the maximum of 253",
		},
		"label_too_long": {
			domain:     strings.Repeat("a", 70) + ".com",
			errWrapped: ErrDomainLabelTooLong,
			errMessage: fmt.Sprintf(`label 1 of "%s.com": domain label is too long: `+
				`70 characters exceeding the maximum of 63`, strings.Repeat("a", 70)),
		},
		"empty_middle_label": {
			domain:     "example..com",
			errWrapped: ErrDomainLabelEmpty,
			errMessage: `label 2 of "example..com": domain label is empty`,
		},
		"two_trailing_dots": {
			domain:     "example.com..",
			errWrapped: ErrDomainLabelEmpty,
			errMessage: `label 3 of "example.com.": domain label is empty`,
		},
		"invalid_character_space": {
			domain:     "not a.domain",
			errWrapped: ErrDomainInvalidCharacter,
			errMessage: `label 1 of "not a.domain": domain name has invalid character: ' '`,
		},
		"invalid_character_à": {
			domain:     "exàmple.com",
			errWrapped: ErrDomainInvalidCharacter,
			errMessage: `label 1 of "exàmple.com": domain name has invalid character: 'à'`,
		},
		"invalid_rune": {
			domain:     "www.\xbd\xb2.com",
			errWrapped: ErrDomainInvalidCharacter,
			errMessage: `label 2 of "www.\xbd\xb2.com": domain name has invalid character: invalid rune at offset 0`,
		},
		"starts_hyphen": {
			domain:     "-example.com",
			errWrapped: ErrDomainInvalidCharacter,
			errMessage: `label 1 of "-example.com": domain name has invalid character: starts with '-'`,
		},
		"tld_ends_hyphen": {
			domain:     "example.com-",
			errWrapped: ErrDomainInvalidCharacter,
			errMessage: `label 2 of "example.com-": domain name has invalid character: ends with '-'`,
		},
		"tld_starts_digit": {
			domain:     "example.1com",
			errWrapped: ErrDomainInvalidCharacter,
			errMessage: `domain name has invalid character: top level domain "1com" starts with a digit`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := CheckDomain(testCase.domain)

			require.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}
