// Package redirect implements the mounted redirect component: it shows a
// transient placeholder and navigates to an external URL once per distinct
// target.
package redirect

import (
	"context"
	"net/url"
	"sync"

	"github.com/nfrund/actorkit-site/internal/effect"
)

// State is the lifecycle state of a redirect instance.
type State int

const (
	// StatePending: placeholder shown, navigation scheduled or fired.
	StatePending State = iota
	// StateDeparted: the instance was unmounted. Irreversible.
	StateDeparted
)

func (s State) String() string {
	if s == StateDeparted {
		return "departed"
	}
	return "pending"
}

// Placeholder is the view model of the non-interactive "redirecting" view.
type Placeholder struct {
	URL  string
	Host string
}

// Instance is one mounted redirect. It is owned by a single render loop (one
// HTTP request in production). The render context is handed to the effect
// through the instance, so Render serialises calls itself rather than relying
// on the keyed effect's locking; the navigator is called under that lock.
type Instance struct {
	nav    Navigator
	mu     sync.Mutex
	ctx    context.Context
	effect *effect.Keyed[string]
}

// NewInstance mounts a redirect instance that navigates through nav.
func NewInstance(nav Navigator) *Instance {
	i := &Instance{nav: nav, ctx: context.Background()}
	i.effect = effect.NewKeyed(func(target string) {
		i.nav.Navigate(i.ctx, target)
	})
	return i
}

// Render returns the placeholder for target and, after that commit, navigates
// if target differs from the last rendered one. Renders after Unmount only
// return the placeholder.
func (i *Instance) Render(ctx context.Context, target string) Placeholder {
	p := Placeholder{URL: target}
	if u, err := url.Parse(target); err == nil {
		p.Host = u.Host
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	i.ctx = ctx
	i.effect.Commit(target)
	return p
}

// Unmount moves the instance to StateDeparted.
func (i *Instance) Unmount() {
	i.effect.Stop()
}

// State returns the lifecycle state.
func (i *Instance) State() State {
	if i.effect.Stopped() {
		return StateDeparted
	}
	return StatePending
}

// Navigations returns how many navigations this instance has triggered.
func (i *Instance) Navigations() int {
	return i.effect.Runs()
}
