package handlers

import (
	"context"
	"fmt"
	"sort"

	"github.com/imamik/foolaunch/internal/config"
)

// ProfileInfo summarizes one profile of the loaded document.
type ProfileInfo struct {
	Name     string
	Includes []string
	Options  int
	Invalid  bool
}

// Profiles lists the profiles of the first usable config file.
func Profiles(_ context.Context, configPaths []string) error {
	result := loadDocument(config.SearchPaths(configPaths...)...)
	reportSkipped(result.Skipped)

	if !result.Found() {
		fmt.Fprintf(output, "No config file found. Searched: %v\n", config.SearchPaths(configPaths...))
		return nil
	}

	fmt.Fprint(output, renderProfiles(result.Source, describeProfiles(result.Document)))
	return nil
}

// describeProfiles returns the document's profiles sorted by name. A
// profile is marked invalid when it cannot be resolved.
func describeProfiles(doc config.Document) []ProfileInfo {
	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	sort.Strings(names)

	infos := make([]ProfileInfo, 0, len(names))
	for _, name := range names {
		info := ProfileInfo{Name: name}
		body, ok := doc[name].(map[string]any)
		if !ok {
			info.Invalid = true
			infos = append(infos, info)
			continue
		}
		for key, value := range body {
			if key != config.IncludeKey {
				info.Options++
				continue
			}
			if list, ok := value.([]any); ok {
				for _, item := range list {
					info.Includes = append(info.Includes, fmt.Sprint(item))
				}
			}
		}
		if _, err := config.Resolve(doc, name); err != nil {
			info.Invalid = true
		}
		infos = append(infos, info)
	}
	return infos
}

// ProfileNames returns the sorted profile names of the first usable config
// file. Used for shell completion, so load problems are not reported.
func ProfileNames(configPaths []string) []string {
	result := loadDocument(config.SearchPaths(configPaths...)...)
	names := make([]string, 0, len(result.Document))
	for name := range result.Document {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
