// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the passgen run: either view the stored
// passwords, or generate a list and walk the user through saving and
// encrypting it.
package client
