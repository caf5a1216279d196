// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package linewriter provides a line-buffered tee on the write side: data
// written through it reaches the destination a whole line at a time, with
// each line echoed to a second writer first. This is useful for showing the
// commands fed to a child process's stdin as they are sent.
package linewriter
