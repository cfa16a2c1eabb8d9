package plugin

import (
	"fmt"
	"sort"
	"sync"

	"github.com/cassiomorais/codgateway/internal/domain/errors"
)

// Registry maps entry point names to plugin factories and keeps the loaded
// plugin instances by plugin ID.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]registration
	plugins   map[string]PaymentGateway
	order     []string
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]registration),
		plugins:   make(map[string]PaymentGateway),
	}
}

type registration struct {
	factory       Factory
	defaultActive bool
}

// Register makes a factory loadable under the given entry point name.
// defaultActive is used when Load is given no stored activation.
func (r *Registry) Register(entryPoint string, defaultActive bool, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[entryPoint] = registration{factory: f, defaultActive: defaultActive}
}

// EntryPoints returns the registered entry point names, sorted.
func (r *Registry) EntryPoints() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load instantiates the plugin behind entryPoint. A nil active falls back to
// the activation the entry point was registered with.
func (r *Registry) Load(entryPoint string, configuration []ConfigItem, active *bool) (PaymentGateway, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg, ok := r.factories[entryPoint]
	if !ok {
		return nil, fmt.Errorf("unknown entry point %q: %w", entryPoint, errors.ErrPluginNotFound)
	}

	isActive := reg.defaultActive
	if active != nil {
		isActive = *active
	}

	p, err := reg.factory(configuration, isActive)
	if err != nil {
		return nil, fmt.Errorf("load plugin %q: %w", entryPoint, err)
	}

	id := p.Manifest().ID
	if _, exists := r.plugins[id]; exists {
		return nil, fmt.Errorf("plugin %q: %w", id, errors.ErrPluginAlreadyLoaded)
	}
	r.plugins[id] = p
	r.order = append(r.order, id)
	return p, nil
}

// Get returns a loaded plugin by its plugin ID.
func (r *Registry) Get(pluginID string) (PaymentGateway, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.plugins[pluginID]
	if !ok {
		return nil, fmt.Errorf("plugin %q: %w", pluginID, errors.ErrPluginNotFound)
	}
	return p, nil
}

// List returns the loaded plugins in load order.
func (r *Registry) List() []PaymentGateway {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]PaymentGateway, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.plugins[id])
	}
	return out
}

func (r *Registry) SetActive(pluginID string, active bool) error {
	p, err := r.Get(pluginID)
	if err != nil {
		return err
	}
	p.SetActive(active)
	return nil
}
