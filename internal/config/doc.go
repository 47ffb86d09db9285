// Package config provides configuration loading, merging, and validation
// facilities for the server and the client of go-list-sync.
//
// Configuration is assembled from multiple sources. Sources are merged with
// mergo in the following order, where an earlier source wins and later
// sources only fill fields that are still zero:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetServerConfig] for the repository server and
// [GetClientConfig] for the terminal client.
package config
