// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package version

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/psscript"
	"github.com/urfave/cli/v3"
)

// VersionCmd prints the build version and commit.
var VersionCmd = &cli.Command{
	Name:  "version",
	Usage: "Print version information",
	Action: func(_ context.Context, cmd *cli.Command) error {
		_, err := fmt.Fprintf(cmd.Writer, "psscript %s (%s)\n", psscript.Version, psscript.Commit)
		return err
	},
}
