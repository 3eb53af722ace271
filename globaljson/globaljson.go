// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package globaljson

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dnxdev/dnx-core/fileutil"
)

// FileName is the project-root marker file.
const FileName = "global.json"

// VersionToken is an sdk version value together with where it came from.
// File, Line, and Column point at the version scalar inside global.json so
// callers can anchor diagnostics at the exact location. A token obtained
// from somewhere other than a config file carries no provenance.
type VersionToken struct {
	Value  string
	File   string
	Line   int
	Column int
}

// FindProjectRoot walks from startDir up through its ancestors, inclusive,
// and returns the first directory that directly contains global.json. The
// closest directory wins. When no ancestor carries the marker, startDir is
// returned unchanged: a missing global.json is not an error, it only means
// no version is pinned for the project.
func FindProjectRoot(startDir string) string {
	dir := filepath.Clean(startDir)
	for {
		if fileutil.FileExists(dir, FileName) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return startDir
		}
		dir = parent
	}
}

// Path returns the global.json path for a project root.
func Path(projectRoot string) string {
	return filepath.Join(projectRoot, FileName)
}

// ReadSdkVersion reads the sdk.version value from the global.json at path.
// A missing file yields (nil, nil); a file without an sdk.version field
// yields (nil, nil) as well. A file that cannot be read or parsed is an
// error: silently defaulting on a malformed config risks resolving the
// wrong runtime.
//
// The document is parsed into a node tree (YAML is a superset of JSON) so
// the returned token carries the line and column of the version scalar.
func ReadSdkVersion(path string) (*VersionToken, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	node := findMappingValue(documentRoot(&doc), "sdk")
	node = findMappingValue(node, "version")
	if node == nil || node.Kind != yaml.ScalarNode {
		return nil, nil
	}

	return &VersionToken{
		Value:  node.Value,
		File:   path,
		Line:   node.Line,
		Column: node.Column,
	}, nil
}

func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		return doc.Content[0]
	}
	return doc
}

// findMappingValue returns the value node for key inside a mapping node.
// Mapping content alternates key and value nodes.
func findMappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
