package config

import (
	"fmt"
	"os"
	"strings"
)

// EnvPrefix prefixes the environment variable of every field: RENTBUY_HOME_VAL.
const EnvPrefix = "RENTBUY_"

// Source supplies raw field values by name.
type Source interface {
	Lookup(name string) (string, bool)
}

// MapSource serves values from a map.
type MapSource map[string]string

func (m MapSource) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// FileSource converts the decoded scenario section of a config file.
func FileSource(values map[string]interface{}) MapSource {
	m := make(MapSource, len(values))
	for k, v := range values {
		if v == nil {
			continue
		}
		m[k] = fmt.Sprint(v)
	}
	return m
}

// EnvSource reads <Prefix><NAME> from the environment; empty variables are ignored.
type EnvSource struct {
	Prefix string
}

func (e EnvSource) Lookup(name string) (string, bool) {
	v := os.Getenv(e.Prefix + strings.ToUpper(name))
	return v, v != ""
}

// FuncSource adapts a lookup function, e.g. over command-line flags.
type FuncSource func(name string) (string, bool)

func (f FuncSource) Lookup(name string) (string, bool) { return f(name) }
