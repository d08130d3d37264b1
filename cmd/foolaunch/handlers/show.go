package handlers

import (
	"bytes"
	"context"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Show prints the options that launching the given profiles would use,
// without contacting AWS.
func Show(_ context.Context, configPaths, profiles []string) error {
	session, result, err := openSession(configPaths, profiles)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if result.Found() {
		fmt.Fprintf(&buf, "# source: %s\n", result.Source)
	} else {
		buf.WriteString("# source: none\n")
	}
	if applied := session.Applied(); len(applied) > 0 {
		fmt.Fprintf(&buf, "# profiles: %v\n", applied)
	}

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(session.Options); err != nil {
		return fmt.Errorf("failed to encode options: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode options: %w", err)
	}

	_, err = output.Write(buf.Bytes())
	return err
}
