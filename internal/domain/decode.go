package domain

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// Decode copies the JSON-shaped map src into the struct pointed to by out,
// matching keys against the struct's json tags. Every key named in required
// must be present in src; the missing ones are reported together as a
// *ValidationError. Keys absent from src leave the zero value in place.
//
// Time fields accept RFC 3339 strings, with or without a zone offset.
func Decode(src map[string]any, out any, required ...string) error {
	fields := make(map[string]string)
	for _, key := range required {
		if v, ok := src[key]; !ok || v == nil {
			fields[key] = MsgRequired
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     out,
		TagName:    "json",
		Squash:     true,
		DecodeHook: stringToTimeHook,
	})
	if err != nil {
		return fmt.Errorf("building decoder: %w", err)
	}

	if err := dec.Decode(src); err != nil {
		return &ValidationError{Fields: map[string]string{"record": err.Error()}}
	}
	return nil
}

// Power BI emits both zoned and zone-less timestamps depending on endpoint.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

func stringToTimeHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeFor[time.Time]() {
		return data, nil
	}

	s, _ := data.(string)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return nil, fmt.Errorf("parsing time %q", s)
}
