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

	"github.com/urfave/cli/v2"

	"github.com/go-ngdb/ngdb"
	"github.com/go-ngdb/ngdb/markup"
)

var walkCommand = &cli.Command{
	Name:      "walk",
	Usage:     "Dump a guide's menus and entries as plain text",
	ArgsUsage: "GUIDE",
	Action: func(c *cli.Context) error {
		if c.Args().Len() != 1 {
			return cli.Exit(fmt.Errorf("%w: expected a single guide path", ErrFlagParse), ExitCodeFlagParseError)
		}
		path := c.Args().First()

		return ngdb.OpenGuide(path, func(g *ngdb.Guide) error {
			fmt.Printf("%s (%s)\n", g.Title(), g.MadeWith())

			for i, m := range g.Menus() {
				fmt.Printf("menu %d: %s\n", i, m.Title)
				for _, p := range m.Prompts {
					fmt.Printf("  - %s\n", p.Text)
				}
			}

			for e := range g.Entries() {
				dumpEntry(e)
			}

			return nil
		})
	},
}

func dumpEntry(e ngdb.Entry) {
	switch v := e.(type) {
	case *ngdb.ShortEntry:
		fmt.Printf("--- short entry @%#x ---\n", v.Offset())
		for _, line := range v.Lines() {
			fmt.Println(markup.PlainText(markup.Parse(line.Text)))
		}
	case *ngdb.LongEntry:
		fmt.Printf("--- long entry @%#x ---\n", v.Offset())
		for _, line := range v.Lines() {
			fmt.Println(markup.PlainText(markup.Parse(line)))
		}
		for _, sa := range v.SeeAlsos() {
			fmt.Fprintf(os.Stderr, "see also: %s (@%#x)\n", sa.Text, sa.Offset)
		}
	}
}
