// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the metering console process.
//
// It wires the local session storage, the API gateway, the client services
// and the terminal UI into a single process lifecycle, and keeps the
// signed-in user's profile fresh in the background.
package client
