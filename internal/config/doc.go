// Package config loads launch profiles and turns them into typed launch options.
//
// A profile document is a JSON object mapping profile names to profile
// bodies. It is read from the first usable file of a search path (see
// [SearchPaths] and [LoadDocument]). A profile body maps option names to
// values and may carry an include list under the "*" key:
//
//	{
//	    "default": {"region": "us-east-1"},
//	    "web":     {"*": ["default"], "instance_type": "m4.large", "count": 2}
//	}
//
// [Resolve] flattens a profile and its includes into [ResolvedOptions].
// [Options.Apply] maps the flat set onto the typed [Options] struct, and a
// [Session] ties both together, applying the "default" profile on creation.
//
// Runtime settings that are not part of a profile (poll interval, catalog
// source, credentials) are read from flags and FOOLAUNCH_* environment
// variables by [LoadSettings].
package config
