package main

import (
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/amonks/taskdown/internal/testsupport"
)

func TestOverdueScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/overdue",
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
	})
}
