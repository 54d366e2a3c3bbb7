package edgegrid

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// credentialsSection is one named identity in a credentials file.
type credentialsSection struct {
	Host         string `yaml:"host"`
	ClientToken  string `yaml:"client_token"`
	ClientSecret string `yaml:"client_secret"`
	AccessToken  string `yaml:"access_token"`
}

// LoadCredentials reads one named section from a YAML credentials file:
//
//	default:
//	  host: akab-xxxx.luna.akamaiapis.net
//	  client_token: akab-xxxx
//	  client_secret: xxxx
//	  access_token: akab-xxxx
//
// An empty section selects "default". The loaded values go through
// NewCredentials, so a section with missing fields fails with
// ErrInvalidCredentials.
func LoadCredentials(path, section string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("edgegrid: read credentials file: %w", err)
	}

	var sections map[string]credentialsSection
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("edgegrid: parse credentials file: %w", err)
	}

	if section == "" {
		section = "default"
	}

	s, ok := sections[section]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSectionNotFound, section)
	}

	return NewCredentials(s.Host, s.ClientToken, s.ClientSecret, s.AccessToken)
}

// CredentialsFromEnv builds Credentials from AKAMAI_HOST,
// AKAMAI_CLIENT_TOKEN, AKAMAI_CLIENT_SECRET, and AKAMAI_ACCESS_TOKEN. A
// non-default section scopes the variables, e.g. section "ccu" reads
// AKAMAI_CCU_HOST. Unset variables fail with ErrInvalidCredentials.
func CredentialsFromEnv(section string) (*Credentials, error) {
	prefix := "AKAMAI_"
	if section != "" && section != "default" {
		prefix += strings.ToUpper(section) + "_"
	}

	return NewCredentials(
		os.Getenv(prefix+"HOST"),
		os.Getenv(prefix+"CLIENT_TOKEN"),
		os.Getenv(prefix+"CLIENT_SECRET"),
		os.Getenv(prefix+"ACCESS_TOKEN"),
	)
}
