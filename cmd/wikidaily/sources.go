package main

import (
	"fmt"
	"strings"
)

// Run executes the sources command.
func (c *SourcesCmd) Run(deps *Dependencies) error {
	for _, src := range deps.Sources {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", src.ID, src.Language, src.Type, src.Kind())
	}
	fmt.Fprintf(deps.Stdout, "featured: %s\n", strings.Join(deps.Languages, ", "))
	return nil
}
