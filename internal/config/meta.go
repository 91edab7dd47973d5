package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// It stays in sync when new fields are added to Settings.
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"reload": "R",
			"quit":   []string{"q", "x"},
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "splash"
		case reflect.Int, reflect.Int64:
			switch fieldName {
			case "anchor_ms":
				return int64(1762194514910)
			case "max_log_files":
				return 1000
			case "serve_port":
				return DefaultServePort
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "api_url":
			return "https://api.github.com/"
		case "authorized_keys":
			return "~/.ssh/authorized_keys"
		case "owner":
			return DefaultOwner
		case "repo":
			return DefaultRepo
		case "serve_host":
			return DefaultServeHost
		default:
			return "example"
		}
	}

	return nil
}
