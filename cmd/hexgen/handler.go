/*
Copyright © 2025 Jayson Grace <jayson.e.grace@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

package main

import (
	"github.com/hexkit/hexgen/cli"
	"github.com/hexkit/hexgen/scaffold"
	"github.com/spf13/cobra"
)

var handlerOpts cli.GenerateCLIOptions

var handlerCmd = &cobra.Command{
	Use:   "handler [name]",
	Short: "Generate a handler",
	Long: `Generate a handler file, optionally with a validation schema
alongside it (--schema).`,
	Args: cobra.ExactArgs(1),
	RunE: runHandler,
}

func init() {
	handlerCmd.Flags().StringVarP(&handlerOpts.Domain, "domain", "d", "", "Associated domain")
	handlerCmd.Flags().BoolVar(&handlerOpts.WithSchema, "schema", false, "Also generate a validation schema")
	addCommitFlags(handlerCmd, &handlerOpts)
}

func runHandler(cmd *cobra.Command, args []string) error {
	handlerOpts.Name = args[0]
	return runGenerate(cmd, scaffold.ComponentHandler, handlerOpts)
}
