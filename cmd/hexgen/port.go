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

var portOpts cli.GenerateCLIOptions

var portCmd = &cobra.Command{
	Use:   "port [name]",
	Short: "Generate a port",
	Long: `Generate a port interface. The port name carries the adapter type
and a Port suffix by convention (e.g. PaymentRepositoryPort); a custom
--port-name that already ends in Port keeps a single suffix.`,
	Args: cobra.ExactArgs(1),
	RunE: runPort,
}

func init() {
	portCmd.Flags().StringVarP(&portOpts.Domain, "domain", "d", "", "Associated domain")
	portCmd.Flags().StringVarP(&portOpts.AdapterType, "adapter-type", "a", scaffold.AdapterRepository, "Adapter type (repository, rest, graphql, queue, cache, storage, none)")
	portCmd.Flags().StringVar(&portOpts.PortName, "port-name", "", "Custom port name")
	addCommitFlags(portCmd, &portOpts)
}

func runPort(cmd *cobra.Command, args []string) error {
	portOpts.Name = args[0]
	return runGenerate(cmd, scaffold.ComponentPort, portOpts)
}
