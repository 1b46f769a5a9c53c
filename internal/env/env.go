// Package env holds the configuration and theming values shared by every
// window. Values are addressed through typed keys that carry a default.
package env

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/atomicstack/popup-shell/internal/logging"
)

const envPrefix = "POPUP_SHELL_ENV"

// Env is a bag of named values. The zero value is ready to use.
type Env struct {
	values map[string]interface{}
}

// Key names an Env value of type V and supplies its default.
type Key[V any] struct {
	name string
	def  V
}

// NewKey declares a key. Names are case-insensitive and may be dotted
// ("theme.accent") to match nested sections in an env file.
func NewKey[V any](name string, def V) Key[V] {
	return Key[V]{name: strings.ToLower(name), def: def}
}

// Name returns the key name.
func (k Key[V]) Name() string {
	return k.name
}

// Default returns the value used when the key is unset.
func (k Key[V]) Default() V {
	return k.def
}

// New returns an empty Env.
func New() *Env {
	return &Env{values: map[string]interface{}{}}
}

// Get returns the value stored for key, converting values read from files to
// V. Unset keys and values that cannot be converted yield the default; the
// latter is logged.
func Get[V any](e *Env, key Key[V]) V {
	if e == nil || e.values == nil {
		return key.def
	}
	raw, ok := e.values[key.name]
	if !ok {
		return key.def
	}
	if v, ok := raw.(V); ok {
		return v
	}
	converted, err := convert(raw, key.def)
	if err != nil {
		logging.Warnf("env key %q: %v", key.name, err)
		return key.def
	}
	v, ok := converted.(V)
	if !ok {
		logging.Warnf("env key %q: cannot use %T as %T", key.name, raw, key.def)
		return key.def
	}
	return v
}

// Set stores v under key.
func Set[V any](e *Env, key Key[V], v V) {
	if e.values == nil {
		e.values = map[string]interface{}{}
	}
	e.values[key.name] = v
}

// Has reports whether a value is stored for the named key.
func (e *Env) Has(name string) bool {
	if e == nil {
		return false
	}
	_, ok := e.values[strings.ToLower(name)]
	return ok
}

// Keys returns the stored key names in sorted order.
func (e *Env) Keys() []string {
	if e == nil {
		return nil
	}
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a shallow copy.
func (e *Env) Clone() *Env {
	dup := New()
	if e == nil {
		return dup
	}
	for k, v := range e.values {
		dup.values[k] = v
	}
	return dup
}

// Load reads an env file (any format viper understands) into a new Env.
// Environment variables prefixed POPUP_SHELL_ENV_ override file values for
// keys present in the file. An empty path yields an empty Env.
func Load(path string) (*Env, error) {
	e := New()
	if strings.TrimSpace(path) == "" {
		return e, nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	for _, key := range v.AllKeys() {
		e.values[key] = v.Get(key)
	}
	return e, nil
}

func convert(raw interface{}, def interface{}) (interface{}, error) {
	switch def.(type) {
	case string:
		return cast.ToStringE(raw)
	case bool:
		return cast.ToBoolE(raw)
	case int:
		return cast.ToIntE(raw)
	case int64:
		return cast.ToInt64E(raw)
	case uint32:
		return cast.ToUint32E(raw)
	case float64:
		return cast.ToFloat64E(raw)
	case time.Duration:
		return cast.ToDurationE(raw)
	case []string:
		return cast.ToStringSliceE(raw)
	default:
		return nil, fmt.Errorf("no conversion from %T to %T", raw, def)
	}
}
