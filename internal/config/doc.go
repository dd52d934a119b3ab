// Package config provides configuration loading, merging, and validation
// facilities for the nutri-track server and its terminal client.
//
// Server configuration is assembled from multiple sources. For each field the
// first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the terminal client.
package config
