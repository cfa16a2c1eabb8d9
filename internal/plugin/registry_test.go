package plugin_test

import (
	"errors"
	"sync"
	"testing"

	domainErrors "github.com/cassiomorais/codgateway/internal/domain/errors"
	"github.com/cassiomorais/codgateway/internal/plugin"
	"github.com/cassiomorais/codgateway/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestRegistry_LoadAndGet(t *testing.T) {
	reg := plugin.NewRegistry()
	mock := testutil.NewMockGateway("payments.mock", true)
	reg.Register("mock", true, testutil.MockFactory(mock, nil))

	p, err := reg.Load("mock", nil, nil)
	require.NoError(t, err)
	assert.Same(t, mock, p)

	got, err := reg.Get("payments.mock")
	require.NoError(t, err)
	assert.Same(t, mock, got)
	assert.True(t, got.IsActive())
}

func TestRegistry_Load_UnknownEntryPoint(t *testing.T) {
	reg := plugin.NewRegistry()

	p, err := reg.Load("missing", nil, nil)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, domainErrors.ErrPluginNotFound)
	assert.Contains(t, err.Error(), "unknown entry point")
}

func TestRegistry_Load_FactoryError(t *testing.T) {
	reg := plugin.NewRegistry()
	reg.Register("broken", true, testutil.MockFactory(nil, domainErrors.ErrConfigKeyMissing))

	_, err := reg.Load("broken", nil, nil)
	assert.ErrorIs(t, err, domainErrors.ErrConfigKeyMissing)
	assert.Empty(t, reg.List())
}

func TestRegistry_Load_ActiveOverride(t *testing.T) {
	reg := plugin.NewRegistry()
	mock := testutil.NewMockGateway("payments.mock", true)
	reg.Register("mock", true, testutil.MockFactory(mock, nil))

	p, err := reg.Load("mock", nil, boolPtr(false))
	require.NoError(t, err)
	assert.False(t, p.IsActive())
}

func TestRegistry_Load_RegisteredDefault(t *testing.T) {
	reg := plugin.NewRegistry()
	reg.Register("off", false, testutil.MockFactory(testutil.NewMockGateway("payments.off", true), nil))
	reg.Register("on", true, testutil.MockFactory(testutil.NewMockGateway("payments.on", false), nil))

	off, err := reg.Load("off", nil, nil)
	require.NoError(t, err)
	assert.False(t, off.IsActive())

	on, err := reg.Load("on", nil, nil)
	require.NoError(t, err)
	assert.True(t, on.IsActive())
}

func TestRegistry_Load_Twice(t *testing.T) {
	reg := plugin.NewRegistry()
	reg.Register("mock", true, testutil.MockFactory(testutil.NewMockGateway("payments.mock", true), nil))

	_, err := reg.Load("mock", nil, nil)
	require.NoError(t, err)

	_, err = reg.Load("mock", nil, nil)
	assert.ErrorIs(t, err, domainErrors.ErrPluginAlreadyLoaded)
	assert.Len(t, reg.List(), 1)
}

func TestRegistry_Get_Unknown(t *testing.T) {
	reg := plugin.NewRegistry()

	_, err := reg.Get("payments.none")
	assert.True(t, errors.Is(err, domainErrors.ErrPluginNotFound))
}

func TestRegistry_List_LoadOrder(t *testing.T) {
	reg := plugin.NewRegistry()
	reg.Register("b", true, testutil.MockFactory(testutil.NewMockGateway("payments.b", true), nil))
	reg.Register("a", true, testutil.MockFactory(testutil.NewMockGateway("payments.a", true), nil))

	_, err := reg.Load("b", nil, nil)
	require.NoError(t, err)
	_, err = reg.Load("a", nil, nil)
	require.NoError(t, err)

	list := reg.List()
	require.Len(t, list, 2)
	assert.Equal(t, "payments.b", list[0].Manifest().ID)
	assert.Equal(t, "payments.a", list[1].Manifest().ID)
	assert.Equal(t, []string{"a", "b"}, reg.EntryPoints())
}

func TestRegistry_SetActive(t *testing.T) {
	reg := plugin.NewRegistry()
	reg.Register("mock", true, testutil.MockFactory(testutil.NewMockGateway("payments.mock", true), nil))
	_, err := reg.Load("mock", nil, nil)
	require.NoError(t, err)

	require.NoError(t, reg.SetActive("payments.mock", false))
	p, _ := reg.Get("payments.mock")
	assert.False(t, p.IsActive())

	assert.ErrorIs(t, reg.SetActive("payments.none", true), domainErrors.ErrPluginNotFound)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := plugin.NewRegistry()
	reg.Register("mock", true, testutil.MockFactory(testutil.NewMockGateway("payments.mock", true), nil))
	_, err := reg.Load("mock", nil, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = reg.SetActive("payments.mock", i%2 == 0)
		}(i)
		go func() {
			defer wg.Done()
			_, _ = reg.Get("payments.mock")
			_ = reg.List()
		}()
	}
	wg.Wait()
}
