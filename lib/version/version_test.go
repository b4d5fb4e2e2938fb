// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"bytes"
	"strings"
	"testing"
)

func TestInfoMarksDirtyBuilds(t *testing.T) {
	savedCommit, savedDirty := GitCommit, GitDirty
	t.Cleanup(func() { GitCommit, GitDirty = savedCommit, savedDirty })

	GitCommit = "abc1234"
	GitDirty = "true"
	if got := Info(); !strings.Contains(got, "abc1234-dirty") {
		t.Errorf("Info() = %q, want it to contain %q", got, "abc1234-dirty")
	}

	GitDirty = "false"
	if got := Info(); strings.Contains(got, "-dirty") {
		t.Errorf("Info() = %q, clean build should not be marked dirty", got)
	}
}

func TestPrintNamesBinary(t *testing.T) {
	var buffer bytes.Buffer
	Print(&buffer, "pokedex")
	output := buffer.String()
	if !strings.HasPrefix(output, "pokedex "+Version) {
		t.Errorf("Print output = %q, want prefix %q", output, "pokedex "+Version)
	}
	if !strings.Contains(output, "Platform:") {
		t.Errorf("Print output = %q, missing platform line", output)
	}
}
