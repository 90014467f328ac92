// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the settings of the report-keeper server and client.
//
// The server configuration is merged with mergo from four layers, each
// overriding the non-zero fields of the previous one: built-in defaults,
// environment variables, command-line flags and finally the JSON file named
// by -c. [GetStructuredConfig] returns the validated result.
//
// The client reads only the ADAPTER_* variables; see [GetAdapterConfig].
package config
