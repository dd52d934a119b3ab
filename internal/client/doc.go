// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It alternates the terminal login flow and the diary screen, and ends the
// server session whenever the user logs out.
package client
