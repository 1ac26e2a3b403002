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

	"github.com/urfave/cli/v2"

	"github.com/go-ngdb/ngdb"
)

var searchCommand = &cli.Command{
	Name:      "search",
	Usage:     "Find menu prompts matching a query in a guide",
	ArgsUsage: "GUIDE QUERY",
	Action: func(c *cli.Context) error {
		if c.Args().Len() != 2 {
			return cli.Exit(fmt.Errorf("%w: expected a guide path and a query", ErrFlagParse), ExitCodeFlagParseError)
		}
		path := c.Args().Get(0)
		query := c.Args().Get(1)

		return ngdb.OpenGuide(path, func(g *ngdb.Guide) error {
			matches := g.FindPrompt(query)
			if len(matches) == 0 {
				fmt.Println("no matches")
				return nil
			}
			for _, m := range matches {
				fmt.Printf("%s @%#x\n", m.Text, m.Offset)
			}
			return nil
		})
	},
}
