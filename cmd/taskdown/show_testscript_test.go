package main

import (
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/amonks/taskdown/internal/testsupport"
)

func TestShowScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/show",
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
	})
}
