package neopop

// Decorations keeps one View per key, for screens that pop several
// surfaces (cards, banners, list rows) without a Button around them.
//
// Views are reused across Apply calls, so re-applying an unchanged model
// costs nothing.
type Decorations[K comparable] struct {
	views map[K]*View
	opts  []ViewOption
}

// NewDecorations returns an empty set. opts are applied to every View it
// creates.
func NewDecorations[K comparable](opts ...ViewOption) *Decorations[K] {
	return &Decorations[K]{views: make(map[K]*View), opts: opts}
}

// Apply configures the view stored under key, creating it on first use.
func (d *Decorations[K]) Apply(key K, bounds Rect, m ViewModel) *View {
	v, ok := d.views[key]
	if !ok {
		v = NewView(bounds, d.opts...)
		d.views[key] = v
	} else {
		v.SetBounds(bounds)
	}
	v.Configure(m)
	return v
}

// View returns the view stored under key.
func (d *Decorations[K]) View(key K) (*View, bool) {
	v, ok := d.views[key]
	return v, ok
}

// Remove forgets the view stored under key.
func (d *Decorations[K]) Remove(key K) {
	delete(d.views, key)
}

// Len returns the number of views.
func (d *Decorations[K]) Len() int { return len(d.views) }
