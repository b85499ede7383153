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

package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func domainOpts(adapterType string) GenerateOptions {
	return GenerateOptions{
		Domain:      "payment",
		AdapterType: adapterType,
		WithModel:   true,
		WithService: true,
		WithPort:    true,
		OutputBase:  "out",
	}
}

func artifactPaths(artifacts []Artifact) []string {
	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		paths = append(paths, a.Path)
	}
	return paths
}

func TestGenerateDomain(t *testing.T) {
	gen := NewGenerator(DefaultConfig())

	artifacts, err := gen.Generate(ComponentDomain, "payment", domainOpts(AdapterRepository))
	require.NoError(t, err)
	require.Len(t, artifacts, 4)

	assert.Equal(t, []string{
		filepath.Join("out", "src", "payment", "models", "Payment.ts"),
		filepath.Join("out", "src", "payment", "services", "PaymentService.ts"),
		filepath.Join("out", "src", "payment", "ports", "PaymentRepositoryPort.ts"),
		filepath.Join("out", "src", "infra", "repository", "PaymentRepositoryAdapter.ts"),
	}, artifactPaths(artifacts))

	model, service, port, adapter := artifacts[0], artifacts[1], artifacts[2], artifacts[3]

	assert.Contains(t, model.Content, "export class Payment {")

	assert.Contains(t, service.Content, "import { Payment } from '../models/Payment';")
	assert.Contains(t, service.Content, "import { PaymentRepositoryPort } from '../ports/PaymentRepositoryPort';")
	assert.Contains(t, service.Content, "export class PaymentService {")
	assert.Contains(t, service.Content, "private readonly paymentRepositoryPort: PaymentRepositoryPort<Payment>")

	assert.Contains(t, port.Content, "export interface PaymentRepositoryPort<T = unknown> {")

	assert.Contains(t, adapter.Content, "import { PaymentRepositoryPort } from '../../payment/ports/PaymentRepositoryPort';")
	assert.Contains(t, adapter.Content, "import { Payment } from '../../payment/models/Payment';")
	assert.Contains(t, adapter.Content, "export class PaymentRepositoryAdapter implements PaymentRepositoryPort<Payment> {")
}

func TestGenerateDomainAdapterNone(t *testing.T) {
	gen := NewGenerator(DefaultConfig())

	artifacts, err := gen.Generate(ComponentDomain, "payment", domainOpts(AdapterNone))
	require.NoError(t, err)

	// No adapter artifact, and the port drops the adapter-type infix.
	require.Len(t, artifacts, 3)
	assert.Equal(t, filepath.Join("out", "src", "payment", "ports", "PaymentPort.ts"), artifacts[2].Path)
	assert.Contains(t, artifacts[1].Content, "import { PaymentPort } from '../ports/PaymentPort';")
}

func TestGenerateDomainToggles(t *testing.T) {
	gen := NewGenerator(DefaultConfig())

	t.Run("model only", func(t *testing.T) {
		opts := domainOpts(AdapterRepository)
		opts.WithService = false
		opts.WithPort = false

		artifacts, err := gen.Generate(ComponentDomain, "payment", opts)
		require.NoError(t, err)
		require.Len(t, artifacts, 1)
		assert.Equal(t, RoleModel, artifacts[0].Role)
	})

	t.Run("no port suppresses the adapter", func(t *testing.T) {
		opts := domainOpts(AdapterRepository)
		opts.WithPort = false

		artifacts, err := gen.Generate(ComponentDomain, "payment", opts)
		require.NoError(t, err)
		require.Len(t, artifacts, 2)
		assert.Equal(t, RoleModel, artifacts[0].Role)
		assert.Equal(t, RoleService, artifacts[1].Role)
	})

	t.Run("service without port uses the plain body", func(t *testing.T) {
		opts := domainOpts(AdapterRepository)
		opts.WithModel = false
		opts.WithPort = false

		artifacts, err := gen.Generate(ComponentDomain, "payment", opts)
		require.NoError(t, err)
		require.Len(t, artifacts, 1)
		assert.NotContains(t, artifacts[0].Content, "import {")
		assert.Contains(t, artifacts[0].Content, "async execute(): Promise<void>")
	})

	t.Run("custom sub-artifact names", func(t *testing.T) {
		opts := domainOpts(AdapterRepository)
		opts.ModelName = "Invoice"
		opts.ServiceName = "Billing"

		artifacts, err := gen.Generate(ComponentDomain, "payment", opts)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("out", "src", "payment", "models", "Invoice.ts"), artifacts[0].Path)
		assert.Equal(t, filepath.Join("out", "src", "payment", "services", "BillingService.ts"), artifacts[1].Path)
		assert.Contains(t, artifacts[1].Content, "import { Invoice } from '../models/Invoice';")
	})
}

func TestGenerateHandler(t *testing.T) {
	t.Run("handler with schema in snake case", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.FileNameCase = CaseSnake
		gen := NewGenerator(cfg)

		artifacts, err := gen.Generate(ComponentHandler, "createUser", GenerateOptions{
			WithSchema: true,
			OutputBase: "out",
		})
		require.NoError(t, err)
		require.Len(t, artifacts, 2)

		handler, schema := artifacts[0], artifacts[1]
		assert.Equal(t, filepath.Join("out", "src", "handlers", "create_user.handler.ts"), handler.Path)
		assert.Equal(t, filepath.Join("out", "src", "handlers", "schemas", "create_user.schema.ts"), schema.Path)

		assert.Contains(t, handler.Content, "export class CreateUserHandler {")
		assert.Contains(t, handler.Content, "import { createUserSchema } from './schemas/create_user.schema';")
		assert.Contains(t, schema.Content, "export const createUserSchema = {")
	})

	t.Run("handler without schema has no imports", func(t *testing.T) {
		gen := NewGenerator(DefaultConfig())

		artifacts, err := gen.Generate(ComponentHandler, "createUser", GenerateOptions{OutputBase: "out"})
		require.NoError(t, err)
		require.Len(t, artifacts, 1)

		assert.Equal(t, filepath.Join("out", "src", "handlers", "CreateUser.handler.ts"), artifacts[0].Path)
		assert.NotContains(t, artifacts[0].Content, "import {")
	})

	t.Run("handler suffix is never doubled", func(t *testing.T) {
		gen := NewGenerator(DefaultConfig())

		artifacts, err := gen.Generate(ComponentHandler, "CreateUserHandler", GenerateOptions{OutputBase: "out"})
		require.NoError(t, err)
		assert.Contains(t, artifacts[0].Content, "export class CreateUserHandler {")
		assert.Equal(t, filepath.Join("out", "src", "handlers", "CreateUser.handler.ts"), artifacts[0].Path)
	})
}

func TestGeneratePort(t *testing.T) {
	gen := NewGenerator(DefaultConfig())

	tests := []struct {
		name           string
		componentName  string
		opts           GenerateOptions
		expectedSymbol string
	}{
		{
			name:           "derived name carries the adapter-type infix",
			componentName:  "user",
			opts:           GenerateOptions{AdapterType: AdapterRepository, OutputBase: "out"},
			expectedSymbol: "UserRepositoryPort",
		},
		{
			name:           "custom name gains the suffix",
			componentName:  "user",
			opts:           GenerateOptions{AdapterType: AdapterRepository, PortName: "UserRepository", OutputBase: "out"},
			expectedSymbol: "UserRepositoryPort",
		},
		{
			name:           "custom name with suffix is not doubled",
			componentName:  "user",
			opts:           GenerateOptions{AdapterType: AdapterRepository, PortName: "UserRepositoryPort", OutputBase: "out"},
			expectedSymbol: "UserRepositoryPort",
		},
		{
			name:           "no adapter type means no infix",
			componentName:  "user",
			opts:           GenerateOptions{OutputBase: "out"},
			expectedSymbol: "UserPort",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			artifacts, err := gen.Generate(ComponentPort, tt.componentName, tt.opts)
			require.NoError(t, err)
			require.Len(t, artifacts, 1)
			assert.Contains(t, artifacts[0].Content, "export interface "+tt.expectedSymbol+"<T = unknown> {")
			assert.Equal(t, tt.expectedSymbol+".ts", filepath.Base(artifacts[0].Path))
		})
	}
}

func TestGenerateService(t *testing.T) {
	gen := NewGenerator(DefaultConfig())

	t.Run("standalone service with no domain", func(t *testing.T) {
		artifacts, err := gen.Generate(ComponentService, "billing", GenerateOptions{OutputBase: "out"})
		require.NoError(t, err)
		require.Len(t, artifacts, 1)

		assert.Equal(t, filepath.Join("out", "src", "services", "BillingService.ts"), artifacts[0].Path)
		assert.NotContains(t, artifacts[0].Content, "import {")
	})

	t.Run("domain-associated service imports by convention", func(t *testing.T) {
		artifacts, err := gen.Generate(ComponentService, "billing", GenerateOptions{
			Domain:      "payment",
			AdapterType: AdapterRepository,
			OutputBase:  "out",
		})
		require.NoError(t, err)
		require.Len(t, artifacts, 1)

		service := artifacts[0]
		assert.Equal(t, filepath.Join("out", "src", "payment", "services", "BillingService.ts"), service.Path)
		assert.Contains(t, service.Content, "import { Payment } from '../models/Payment';")
		assert.Contains(t, service.Content, "import { PaymentRepositoryPort } from '../ports/PaymentRepositoryPort';")
	})
}

func TestGenerateAdapter(t *testing.T) {
	gen := NewGenerator(DefaultConfig())

	artifacts, err := gen.Generate(ComponentAdapter, "payment", GenerateOptions{
		Domain:      "payment",
		AdapterType: AdapterRest,
		OutputBase:  "out",
	})
	require.NoError(t, err)
	require.Len(t, artifacts, 1)

	adapter := artifacts[0]
	assert.Equal(t, filepath.Join("out", "src", "infra", "rest", "PaymentRestAdapter.ts"), adapter.Path)
	assert.Contains(t, adapter.Content, "export class PaymentRestAdapter implements PaymentRestPort<Payment> {")
	assert.Contains(t, adapter.Content, "import { PaymentRestPort } from '../../payment/ports/PaymentRestPort';")
}

func TestGenerateErrors(t *testing.T) {
	gen := NewGenerator(DefaultConfig())

	t.Run("empty name", func(t *testing.T) {
		_, err := gen.Generate(ComponentDomain, "  ", domainOpts(AdapterRepository))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")
	})

	t.Run("unknown adapter type suggests a fix", func(t *testing.T) {
		opts := domainOpts("repositry")
		_, err := gen.Generate(ComponentDomain, "payment", opts)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown adapter type "repositry"`)
		assert.Contains(t, err.Error(), `did you mean "repository"?`)
	})

	t.Run("unknown component type suggests a fix", func(t *testing.T) {
		_, err := gen.Generate(ComponentType("handlr"), "createUser", GenerateOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown component type "handlr"`)
		assert.Contains(t, err.Error(), `did you mean "handler"?`)
	})
}

func TestGenerateKebabEndToEnd(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FileNameCase = CaseKebab
	gen := NewGenerator(cfg)

	artifacts, err := gen.Generate(ComponentService, "orderProcessing", GenerateOptions{OutputBase: "out"})
	require.NoError(t, err)
	require.Len(t, artifacts, 1)

	// The stem is case-transformed, the extension survives, and the symbol
	// stays PascalCase.
	assert.Equal(t, filepath.Join("out", "src", "services", "order-processing-service.ts"), artifacts[0].Path)
	assert.Contains(t, artifacts[0].Content, "export class OrderProcessingService {")
}

func TestPrerequisiteWarnings(t *testing.T) {
	t.Run("missing prerequisites are reported", func(t *testing.T) {
		gen := NewGenerator(DefaultConfig())

		warnings := gen.PrerequisiteWarnings(ComponentService, "billing", GenerateOptions{
			Domain:      "payment",
			AdapterType: AdapterRepository,
			OutputBase:  t.TempDir(),
		})
		require.Len(t, warnings, 2)
		assert.Contains(t, warnings[0], "Payment.ts")
		assert.Contains(t, warnings[1], "PaymentRepositoryPort.ts")
	})

	t.Run("existing prerequisites stay silent", func(t *testing.T) {
		gen := NewGenerator(DefaultConfig())
		out := t.TempDir()

		modelDir := filepath.Join(out, "src", "payment", "models")
		portDir := filepath.Join(out, "src", "payment", "ports")
		require.NoError(t, os.MkdirAll(modelDir, 0o755))
		require.NoError(t, os.MkdirAll(portDir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(modelDir, "Payment.ts"), []byte("export class Payment {}\n"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(portDir, "PaymentRepositoryPort.ts"), []byte("export interface PaymentRepositoryPort {}\n"), 0o644))

		warnings := gen.PrerequisiteWarnings(ComponentService, "billing", GenerateOptions{
			Domain:      "payment",
			AdapterType: AdapterRepository,
			OutputBase:  out,
		})
		assert.Empty(t, warnings)
	})

	t.Run("no domain means no warnings", func(t *testing.T) {
		gen := NewGenerator(DefaultConfig())
		assert.Empty(t, gen.PrerequisiteWarnings(ComponentService, "billing", GenerateOptions{OutputBase: t.TempDir()}))
	})
}
