// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package version

import (
	"bytes"
	"context"
	"testing"

	"github.com/matt-FFFFFF/psscript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestVersionCmd(t *testing.T) {
	buf := &bytes.Buffer{}

	c := &cli.Command{
		Name:     "psscript",
		Writer:   buf,
		Commands: []*cli.Command{VersionCmd},
	}

	require.NoError(t, c.Run(context.Background(), []string{"psscript", "version"}))
	assert.Contains(t, buf.String(), "psscript "+psscript.Version)
	assert.Contains(t, buf.String(), psscript.Commit)
}
