// Package configloader populates the run configuration from
// environment variables. mdslim deliberately has no config file; the
// precedence is defaults, then environment, then CLI flags.
package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/mdslim/pkg/config"
)

// envVarPrefix is the prefix for all mdslim environment variables.
const envVarPrefix = "MDSLIM_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"SOURCE":          {field: "source", typ: envTypeString},
	"DEST":            {field: "dest", typ: envTypeString},
	"FORMAT":          {field: "format", typ: envTypeString},
	"JOBS":            {field: "jobs", typ: envTypeInt},
	"PRESERVE_CODE":   {field: "preserve_code", typ: envTypeBool},
	"FOLLOW_SYMLINKS": {field: "follow_symlinks", typ: envTypeBool},
	"IGNORE":          {field: "ignore", typ: envTypeSlice},
	"EXTENSIONS":      {field: "extensions", typ: envTypeSlice},
}

// LoadFromEnv applies environment variable overrides to the
// configuration. Variables are prefixed with MDSLIM_ (e.g. MDSLIM_JOBS).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "source":
		cfg.Source = value
	case "dest":
		cfg.Dest = value
	case "format":
		format := config.OutputFormat(value)
		if !format.IsValid() {
			return fmt.Errorf("invalid output format: %q", value)
		}
		cfg.Format = format
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "preserve_code":
		cfg.PreserveCode = value
	case "follow_symlinks":
		cfg.FollowSymlinks = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	case "extensions":
		cfg.Extensions = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// ListEnvVars returns all supported environment variables with their
// descriptions, for the env subcommand.
func ListEnvVars() map[string]string {
	return map[string]string{
		"MDSLIM_SOURCE":          "Source root directory scanned for Markdown files",
		"MDSLIM_DEST":            "Destination root the slimmed copies are written under",
		"MDSLIM_FORMAT":          "Output format: text, summary, or json",
		"MDSLIM_JOBS":            "Number of parallel workers (0 = auto)",
		"MDSLIM_PRESERVE_CODE":   "Keep fenced code blocks verbatim: true or false",
		"MDSLIM_FOLLOW_SYMLINKS": "Traverse directory symlinks: true or false",
		"MDSLIM_IGNORE":          "Comma-separated list of ignore glob patterns",
		"MDSLIM_EXTENSIONS":      "Comma-separated list of Markdown file extensions",
		// Read by the logging package at startup, not by LoadFromEnv.
		"MDSLIM_LOG_LEVEL": "Initial log level: debug, info, warn, or error",
	}
}
