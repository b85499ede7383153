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
	"fmt"
	"strings"
)

// Fixed code-body templates. Once names and import paths are resolved, the
// generated content is a straightforward fill of these strings.
const (
	modelBodyTemplate = `export class {{className}} {
  id: string;
  createdAt: Date;
  updatedAt: Date;

  constructor(partial: Partial<{{className}}> = {}) {
    Object.assign(this, partial);
  }
}
`

	serviceBodyTemplate = `{{imports}}export class {{className}} {
  constructor(private readonly {{portProperty}}: {{portClass}}<{{modelClass}}>) {}

  async getById(id: string): Promise<{{modelClass}} | null> {
    return this.{{portProperty}}.findById(id);
  }

  async save(entity: {{modelClass}}): Promise<void> {
    await this.{{portProperty}}.save(entity);
  }
}
`

	plainServiceBodyTemplate = `export class {{className}} {
  async execute(): Promise<void> {
    throw new Error('Not implemented');
  }
}
`

	portBodyTemplate = `export interface {{className}}<T = unknown> {
  findById(id: string): Promise<T | null>;
  save(entity: T): Promise<void>;
  delete(id: string): Promise<void>;
}
`

	adapterBodyTemplate = `{{imports}}export class {{className}} implements {{portClass}}<{{modelClass}}> {
  async findById(id: string): Promise<{{modelClass}} | null> {
    throw new Error('Not implemented');
  }

  async save(entity: {{modelClass}}): Promise<void> {
    throw new Error('Not implemented');
  }

  async delete(id: string): Promise<void> {
    throw new Error('Not implemented');
  }
}
`

	handlerBodyTemplate = `{{imports}}export class {{className}} {
  async handle(input: unknown): Promise<void> {
    // TODO: implement {{name}} handling
    throw new Error('Not implemented');
  }
}
`

	schemaBodyTemplate = `export const {{camelName}}Schema = {
  type: 'object',
  properties: {},
  required: [],
} as const;
`
)

// importLine renders one TypeScript named import.
func importLine(symbol, fromPath string) string {
	return fmt.Sprintf("import { %s } from '%s';", symbol, fromPath)
}

// importBlock joins import lines into the block substituted for
// {{imports}}, followed by a blank line. An empty list yields an empty
// string so bodies without imports start at the first declaration.
func importBlock(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n\n"
}
