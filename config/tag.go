package config

import (
	"reflect"
	"strconv"

	"github.com/allape/bongocat/bongo/window"
)

type TagString reflect.StructTag

func (d TagString) GetInt(key string, defaultValue int) (int, error) {
	value := reflect.StructTag(d).Get(key)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}

func (d TagString) GetBool(key string, defaultValue bool) (bool, error) {
	value := reflect.StructTag(d).Get(key)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.ParseBool(value)
}

func (d TagString) Get(key string) string {
	return reflect.StructTag(d).Get(key)
}

// HintsTag
// Optional window hints, unset keys keep their default.
// Example: skip_taskbar:"true" shadow:"false"
type HintsTag TagString

func (d HintsTag) Get() (window.Hints, error) {
	hints := window.DefaultHints()
	for _, hint := range window.AllHints {
		value, err := TagString(d).GetBool(string(hint), hints.Get(hint))
		if err != nil {
			return hints, err
		}
		hints.Set(hint, value)
	}
	return hints, nil
}
