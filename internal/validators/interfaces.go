// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the request bodies accepted by the development
// API server before they reach the directory or the token issuer.
//
// A Validator takes the value and, optionally, the names of the fields to
// check. Without field names every field of the value is checked.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
