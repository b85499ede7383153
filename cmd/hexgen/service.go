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

var serviceOpts cli.GenerateCLIOptions

var serviceCmd = &cobra.Command{
	Use:   "service [name]",
	Short: "Generate a service",
	Long: `Generate a service file. With --domain, the service imports the
domain's model (and its port when an adapter type is given) at their
conventional locations; the referenced files do not need to exist yet.`,
	Args: cobra.ExactArgs(1),
	RunE: runService,
}

func init() {
	serviceCmd.Flags().StringVarP(&serviceOpts.Domain, "domain", "d", "", "Associated domain")
	serviceCmd.Flags().StringVarP(&serviceOpts.AdapterType, "adapter-type", "a", scaffold.AdapterNone, "Adapter type of the domain port to import")
	serviceCmd.Flags().StringVar(&serviceOpts.PortName, "port-name", "", "Custom name of the port to import")
	addCommitFlags(serviceCmd, &serviceOpts)
}

func runService(cmd *cobra.Command, args []string) error {
	serviceOpts.Name = args[0]
	return runGenerate(cmd, scaffold.ComponentService, serviceOpts)
}
