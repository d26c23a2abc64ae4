// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-pass-gen/models"
)

// Client defines the lifecycle contract of a single passgen invocation.
type Client interface {
	// Run executes one invocation described by opts and returns when the
	// user-facing flow is finished.
	Run(ctx context.Context, opts models.RunOptions) error
}
