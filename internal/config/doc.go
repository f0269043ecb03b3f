// Package config provides configuration loading, merging, and validation
// for the console and the development server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The entry points are [GetClientConfig] for the console and
// [GetServerConfig] for the development server.
package config
