// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chain_test

import (
	"os"
	"path/filepath"
	"testing"

	"cloudeng.io/chain/chaintestutil"
	"github.com/stretchr/testify/require"
)

func TestScripts(t *testing.T) {
	spec, err := os.ReadFile(filepath.Join("testdata", "scripts.yaml"))
	require.NoError(t, err)
	scripts, err := chaintestutil.ParseScripts(spec)
	require.NoError(t, err)
	require.NotEmpty(t, scripts)
	for _, s := range scripts {
		t.Run(s.Name, func(t *testing.T) {
			s.Run(t)
		})
	}
}
