package renderutils

import (
	"strconv"
	"strings"

	"github.com/magiconair/properties"
)

// Properties is the per-invocation key=value configuration supplied next to a
// template value. Keys keep the order of their first occurrence.
type Properties struct {
	keys   []string
	values map[string]string
}

// ParseProperties parses a newline-delimited key=value block in the Java
// properties syntax. It never fails: on any parse error the returned
// Properties is empty. When a key is repeated the last value wins.
func ParseProperties(s string) Properties {
	if strings.TrimSpace(s) == "" {
		return Properties{}
	}
	l := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := l.LoadBytes([]byte(s))
	if err != nil {
		return Properties{}
	}
	keys := p.Keys()
	values := make(map[string]string, len(keys))
	for _, k := range keys {
		v, _ := p.Get(k)
		values[k] = v
	}
	return Properties{keys: keys, values: values}
}

// PropertiesOf returns Properties holding the given pairs, in key order of the
// variadic arguments. It is mainly useful to callers that do not have a text
// block to parse.
func PropertiesOf(pairs ...string) Properties {
	p := Properties{values: make(map[string]string, len(pairs)/2)}
	for i := 0; i+1 < len(pairs); i += 2 {
		if _, ok := p.values[pairs[i]]; !ok {
			p.keys = append(p.keys, pairs[i])
		}
		p.values[pairs[i]] = pairs[i+1]
	}
	return p
}

// Len returns the number of keys.
func (p Properties) Len() int {
	return len(p.keys)
}

// Keys returns the keys in order.
func (p Properties) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Get returns the value of key and whether it is present.
func (p Properties) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// String returns the value of key, or def if key is absent.
func (p Properties) String(key, def string) string {
	if v, ok := p.values[key]; ok {
		return v
	}
	return def
}

// Int returns the value of key as an int. It returns def if key is absent or
// its value is not a valid integer.
func (p Properties) Int(key string, def int) int {
	v, ok := p.values[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

// Bool returns true if the value of key is "true" in any case, false for any
// other present value and def if key is absent.
func (p Properties) Bool(key string, def bool) bool {
	v, ok := p.values[key]
	if !ok {
		return def
	}
	return strings.EqualFold(strings.TrimSpace(v), "true")
}
