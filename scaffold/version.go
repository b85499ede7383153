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

	"github.com/Masterminds/semver/v3"
)

// CheckRequires validates the project config's optional "requires"
// constraint against the running hexgen version. It returns advisory
// warnings only; an unsatisfied or malformed constraint never blocks
// generation. Development builds (non-semver versions such as "dev") skip
// the check.
func CheckRequires(constraint, toolVersion string) []string {
	if constraint == "" {
		return nil
	}

	current, err := semver.NewVersion(strings.TrimPrefix(toolVersion, "v"))
	if err != nil {
		// Not a release build; nothing meaningful to compare against.
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return []string{fmt.Sprintf("invalid requires constraint %q: %v", constraint, err)}
	}

	if !c.Check(current) {
		return []string{fmt.Sprintf(
			"project requires hexgen %s, but current version is %s",
			constraint, current.String(),
		)}
	}

	return nil
}
