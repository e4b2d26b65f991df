// Package config provides configuration loading, merging, and validation
// facilities for the watch app and the companion simulator.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or TOML config file
//
// The main entry points are [GetWatchConfig] for the watch process and
// [GetCompanionConfig] for the companion simulator. Both map the merged
// [StructuredConfig] into a typed view with defaults applied once.
package config
