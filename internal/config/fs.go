// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import "github.com/spf13/afero"

// FsFactory is a function that returns an afero filesystem.
// It can be stubbed in tests to use an in-memory filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}
