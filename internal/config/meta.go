package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
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

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"checkpoint": "s",
			"help":       []string{"?", "h"},
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			// confirm_reset and auto_save default on
			return fieldName != "debug"
		case reflect.Int:
			switch fieldName {
			case "max_log_files":
				return 1000
			case "save_interval_minutes":
				return DefaultSaveIntervalMinutes
			case "ssh_port":
				return DefaultSSHPort
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "authorized_keys":
			return "~/.ssh/authorized_keys"
		case "ssh_host":
			return DefaultSSHHost
		default:
			return "example"
		}
	}

	return nil
}
