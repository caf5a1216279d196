// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger built on slog. The log
// level is read from the PSSCRIPT_LOG_LEVEL environment variable and the
// default handler formats records in a human-readable way.
package ctxlog
