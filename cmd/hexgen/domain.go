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

var domainOpts cli.GenerateCLIOptions

var domainCmd = &cobra.Command{
	Use:   "domain [name]",
	Short: "Generate a domain (model, service, port, and adapter)",
	Long: `Generate a domain as one unit: a model, a service, a port, and an
adapter for the chosen adapter type. Each sub-artifact can be toggled off
independently; the adapter is produced whenever ports are enabled and the
adapter type is not "none". The service imports the model and the port by
relative path.`,
	Args: cobra.ExactArgs(1),
	RunE: runDomain,
}

func init() {
	domainCmd.Flags().StringVarP(&domainOpts.AdapterType, "adapter-type", "a", scaffold.AdapterRepository, "Adapter type (repository, rest, graphql, queue, cache, storage, none)")
	domainCmd.Flags().BoolVar(&domainOpts.WithModel, "model", true, "Generate the model")
	domainCmd.Flags().BoolVar(&domainOpts.WithService, "service", true, "Generate the service")
	domainCmd.Flags().BoolVar(&domainOpts.WithPort, "port", true, "Generate the port")
	domainCmd.Flags().StringVar(&domainOpts.ModelName, "model-name", "", "Custom model name")
	domainCmd.Flags().StringVar(&domainOpts.ServiceName, "service-name", "", "Custom service name")
	domainCmd.Flags().StringVar(&domainOpts.PortName, "port-name", "", "Custom port name")
	domainCmd.Flags().StringVar(&domainOpts.AdapterName, "adapter-name", "", "Custom adapter name")
	addCommitFlags(domainCmd, &domainOpts)
}

func runDomain(cmd *cobra.Command, args []string) error {
	domainOpts.Name = args[0]
	return runGenerate(cmd, scaffold.ComponentDomain, domainOpts)
}
