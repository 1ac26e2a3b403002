// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/go-ngdb/ngdb"
)

func openGuides(dirs []string) ([]*ngdb.Guide, []error) {
	var guides []*ngdb.Guide
	var errs []error

	for _, dir := range dirs {
		opened, openErrs := ngdb.OpenAll(dir)
		guides = append(guides, opened...)
		errs = append(errs, openErrs...)
	}

	return guides, errs
}

var listCommand = &cli.Command{
	Name:      "list",
	Usage:     "List guides found under the data directories",
	ArgsUsage: "[DIR...]",
	Action: func(c *cli.Context) error {
		dirs := c.StringSlice("data-dir")
		dirs = append(dirs, c.Args().Slice()...)

		guides, errs := openGuides(dirs)
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err)
		}
		defer func() {
			for _, g := range guides {
				g.Close()
			}
		}()

		tbl := table.New("Title", "Menus", "Made With", "Path")
		for _, g := range guides {
			tbl.AddRow(g.Title(), len(g.Menus()), g.MadeWith(), g.Path())
		}
		tbl.Print()

		if len(errs) > 0 {
			return cli.Exit(ErrNgutil, ExitCodeUnknownError)
		}
		return nil
	},
}
