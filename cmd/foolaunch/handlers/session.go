// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/imamik/foolaunch/internal/config"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadDocument searches the config paths for a profile document.
	loadDocument = config.LoadDocument

	// output receives command results.
	output io.Writer = os.Stdout
)

// openSession loads the profile document from the explicit paths and the
// default search paths, then applies profiles in order on top of "default".
func openSession(configPaths, profiles []string) (*config.Session, config.LoadResult, error) {
	result := loadDocument(config.SearchPaths(configPaths...)...)
	reportSkipped(result.Skipped)

	session, err := config.NewSession(result.Document)
	if err != nil {
		return nil, result, err
	}
	for _, name := range profiles {
		if err := session.Apply(name); err != nil {
			return nil, result, explainConfigError(err, result)
		}
	}
	return session, result, nil
}

// reportSkipped logs candidates that exist but could not be used. Missing
// files are the normal case and stay quiet.
func reportSkipped(skipped []config.SkippedCandidate) {
	for _, c := range skipped {
		if errors.Is(c.Err, fs.ErrNotExist) {
			continue
		}
		log.Printf("Skipping config file %s: %v", c.Path, c.Err)
	}
}

func explainConfigError(err error, result config.LoadResult) error {
	if errors.Is(err, config.ErrUnknownProfile) && !result.Found() {
		return fmt.Errorf("%w\nNo config file found; searched %v", err, config.DefaultSearchPaths)
	}
	return err
}
