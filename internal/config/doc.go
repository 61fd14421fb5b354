// Package config provides configuration loading for the converter.
//
// # Configuration Sources
//
// Configuration is assembled from the following sources in order of precedence:
//
//	1. Environment variables (highest priority, prefix YCSB_)
//	2. YAML file: $YCSB_CONFIG_FILE, converter.yaml, configs/converter.yaml
//	   or converter.yaml next to the executable
//	3. Default values (lowest priority)
//
// A .env file in the working directory is loaded into the environment
// before any of the above, without overriding variables already set.
//
// # Environment Variables
//
//	YCSB_LOGGING_LEVEL=debug
//	YCSB_LOGGING_OUTPUT=both
//	YCSB_LAYOUT_SOURCE_SHEET=evaluation
//	YCSB_LAYOUT_ROW_LIMIT=720
//	YCSB_OUTPUT_CSV_PATH=summary.csv
//	YCSB_TELEMETRY_TRACE_EXPORTER=stdout
//	YCSB_TELEMETRY_METRICS_FILE=converter.prom
//
// # Validation
//
// Load validates the result with go-playground/validator, including the
// cross-field layout rules (trial rows fit in a block, data starts after
// the header, the row limit is past the first data row).
package config
