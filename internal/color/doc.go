// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color provides ANSI control codes for terminal text formatting,
// honouring the NO_COLOR and FORCE_COLOR conventions.
package color
