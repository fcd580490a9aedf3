package config

import "os"

// Source is where configuration values are looked up.
//
// Implementations report whether the key is present. Callers treat a present
// but empty value the same way as an absent one.
//
// Example implementations:
//   - EnvSource: the process environment
//   - MapSource: a fixed set of values, useful for embedding and tests
type Source interface {
	Lookup(key string) (value string, ok bool)
}

// EnvSource reads values from the process environment.
type EnvSource struct{}

// Lookup returns the environment variable named key.
func (EnvSource) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapSource serves values from a map. A nil MapSource has no entries.
type MapSource map[string]string

// Lookup returns the entry stored under key.
func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// resolve applies the default for key when src has no non-empty value for it.
// Values are adopted verbatim, whitespace included.
func resolve(src Source, key Key) string {
	if src != nil {
		if v, ok := src.Lookup(string(key)); ok && v != "" {
			return v
		}
	}
	return Default(key)
}
