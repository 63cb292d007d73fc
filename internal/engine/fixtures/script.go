// Package fixtures implements the three pipeline stages of the
// generate-test-lockfile-fixtures goal: discovery of fixture
// declarations, resolution of their requirement sets, and rendering of
// the resulting lockfiles into the workspace.
package fixtures

import _ "embed"

// collectScriptName is the path of the embedded collection script inside
// the discovery sandbox, and doubles as the argv entry handed to the
// interpreter.
const collectScriptName = "collect_fixtures.py"

// testsJSONName is the single output file the collection script writes.
const testsJSONName = "tests.json"

//go:embed collect_fixtures.py
var collectScript []byte
