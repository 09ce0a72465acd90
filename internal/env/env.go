package env

import (
	"encoding"
	"fmt"
	"strings"
)

type Environment string

var _ encoding.TextUnmarshaler = (*Environment)(nil)

const (
	Development Environment = "development"
	Production  Environment = "production"
)

func (e Environment) IsDevelopment() bool { return e == Development }
func (e Environment) IsProduction() bool  { return e == Production }

func (e Environment) String() string { return string(e) }

func Parse(s string) (Environment, error) {
	switch strings.ToLower(s) {
	case "development", "dev":
		return Development, nil
	case "production", "prod":
		return Production, nil
	default:
		return "", fmt.Errorf("invalid environment: %q (valid: development, production)", s)
	}
}

func (e *Environment) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
