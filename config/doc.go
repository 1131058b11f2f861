// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// A .env file and TRAIN_TRACKER_* environment variables override the file,
// so the dataset path can be supplied without editing YAML.
package config
