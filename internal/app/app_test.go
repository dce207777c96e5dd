package app

import (
	"testing"

	"github.com/c2n2p/portal/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.FromEnv(func(key string) string {
		if key == "BACKEND_URL" {
			return "http://backend.test:8000/"
		}
		return ""
	})
	require.NoError(t, err)
	return cfg
}

func TestLoadDependencies(t *testing.T) {
	injector := NewInjector(testConfig(t))

	deps, err := LoadDependencies(injector)
	require.NoError(t, err)
	t.Cleanup(func() { _ = deps.Bus.Close() })

	assert.NotNil(t, deps.Renderer)
	assert.Equal(t, "http://backend.test:8000", deps.Backend.BaseURL())
	assert.Zero(t, deps.Config.GetSeedRateLimit())

	again, err := LoadDependencies(injector)
	require.NoError(t, err)
	assert.Same(t, deps.Backend, again.Backend, "services are singletons")
	assert.Same(t, deps.Bus, again.Bus)
}

func TestNewModules(t *testing.T) {
	deps, err := LoadDependencies(NewInjector(testConfig(t)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = deps.Bus.Close() })

	names := []string{}
	for _, m := range NewModules(deps) {
		names = append(names, m.Name())
	}
	assert.Equal(t, []string{"status", "orgs"}, names)
}
