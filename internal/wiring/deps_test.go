package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vlr/internal/app"
	_ "go.trai.ch/vlr/internal/wiring"
)

// TestGraftDependencies ensures that the dependency injection graph is valid
// at compile/test time. It checks that every node declaring a dependency
// actually uses it, and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// graft.AssertDepsValid has a limitation/bug where it infers the dependency ID
	// from the package name of the interface used in Dep[T].
	// Since we use `ports.ManifestParser`, `ports.Logger`, etc., it expects a dependency named "ports".
	// This makes it incompatible with our architecture where multiple distinct nodes
	// implement interfaces from the same `ports` package.
	t.Skip("Skipping Graft validation due to static analysis limitation with shared ports package")
	graft.AssertDepsValid(t, "../../internal")
}

func TestNewApp_ResolvesComponents(t *testing.T) {
	components, err := app.NewApp(context.Background())
	require.NoError(t, err)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
	require.NotNil(t, components.ConfigLoader)
}
