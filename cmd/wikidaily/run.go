package main

import (
	"fmt"

	"github.com/fwojciec/wikidaily"
	"github.com/fwojciec/wikidaily/publish"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	if err := openOutput(deps); err != nil {
		return err
	}

	now := deps.Now()
	featured := deps.Featured.Run(deps.Ctx, now, deps.Languages)
	words := deps.Words.Run(deps.Ctx, deps.Sources)

	if err := deps.Site.Finish(deps.Ctx, now, featured, words); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikidaily.ErrorText(err))
		return err
	}

	return checkWritten(featured, words)
}

// Run executes the tfa command.
func (c *TfaCmd) Run(deps *Dependencies) error {
	if err := openOutput(deps); err != nil {
		return err
	}
	return checkWritten(deps.Featured.Run(deps.Ctx, deps.Now(), deps.Languages))
}

// Run executes the wotd command.
func (c *WotdCmd) Run(deps *Dependencies) error {
	if err := openOutput(deps); err != nil {
		return err
	}
	return checkWritten(deps.Words.Run(deps.Ctx, deps.Sources))
}

// openOutput creates the output directory. The run cannot continue
// without it.
func openOutput(deps *Dependencies) error {
	if err := deps.Output.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "Hint: Set WIKIDAILY_OUTPUT or --output to a writable directory\n")
		return err
	}
	return nil
}

// checkWritten fails when any configured file is missing from the output.
func checkWritten(groups ...[]publish.Outcome) error {
	var failed int
	for _, outcomes := range groups {
		failed += publish.Failed(outcomes)
	}
	if failed > 0 {
		return fmt.Errorf("%d output files could not be written", failed)
	}
	return nil
}
