package redirect

import "context"

// Navigator performs the navigation side effect. Navigation is fire-and-forget:
// once called it cannot be cancelled, and failures are the implementation's to
// log.
type Navigator interface {
	Navigate(ctx context.Context, url string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(ctx context.Context, url string)

// Navigate calls f(ctx, url).
func (f NavigatorFunc) Navigate(ctx context.Context, url string) {
	f(ctx, url)
}

type multi []Navigator

func (m multi) Navigate(ctx context.Context, url string) {
	for _, n := range m {
		n.Navigate(ctx, url)
	}
}

// Multi fans a navigation out to every non-nil navigator, in order.
func Multi(navigators ...Navigator) Navigator {
	out := make(multi, 0, len(navigators))
	for _, n := range navigators {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Recorder is a Navigator that remembers every call. It is used by the CLI's
// dry-run resolution and by tests.
type Recorder struct {
	URLs []string
}

// Navigate appends url to the recorded calls.
func (r *Recorder) Navigate(_ context.Context, url string) {
	r.URLs = append(r.URLs, url)
}
