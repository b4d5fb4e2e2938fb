// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads pokedex configuration.
//
// Values are layered, later layers winning:
//
//  1. [Default]
//  2. a config file, YAML or (for .json/.jsonc) JSON with comments,
//     named by Options.Path or POKEDEX_CONFIG
//  3. the environment, after loading a .env file with godotenv:
//     POKEDEX_API_URL, VITE_API_URL, POKEDEX_PER_PAGE, POKEDEX_SNAPSHOT,
//     POKEDEX_LOG_LEVEL
//  4. command-line flags, applied by the binary before [Config.Validate]
//
// VITE_API_URL is the variable the web client reads; honouring it lets
// one .env file serve both. POKEDEX_API_URL wins when both are set.
//
// String values in the file may reference the environment as ${NAME}
// or ${NAME:-default}.
package config
