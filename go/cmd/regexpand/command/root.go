/*
Copyright 2026 The Regexpand Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/regexpand/regexpand/go/regexpand"
)

var (
	flags          string
	propertyEscape bool
	dotAll         bool
	useUnicodeFlag bool

	Root = &cobra.Command{
		Use:   "regexpand <pattern>",
		Short: "regexpand rewrites Unicode-dependent regular expressions into plain code-point classes.",
		Long: "`regexpand` lowers a regular expression that relies on Unicode-dependent matching\n" +
			"semantics (the u flag, \\p{...} property escapes, case-insensitive Unicode matching)\n" +
			"into an equivalent pattern built only from explicit character classes, so it can run\n" +
			"on engines or modes without native support.",
		Args: cobra.ExactArgs(1),
		RunE: run,
	}
)

func init() {
	Root.Flags().StringVar(&flags, "flags", "", "Pattern flags to honor: i, u, and s.")
	Root.Flags().BoolVar(&propertyEscape, "property-escape", false, "Recognize \\p{...} and \\P{...} in the input.")
	Root.Flags().BoolVar(&dotAll, "dot-all", false, "Honor an s flag for dot-all wildcard matching.")
	Root.Flags().BoolVar(&useUnicodeFlag, "use-unicode-flag", false, "Allow Unicode-flag syntax in the output.")
}

func run(cmd *cobra.Command, args []string) error {
	out, err := regexpand.RewritePattern(args[0], flags, regexpand.Options{
		UnicodePropertyEscape: propertyEscape,
		DotAllFlag:            dotAll,
		UseUnicodeFlag:        useUnicodeFlag,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
