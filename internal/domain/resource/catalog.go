package resource

var catalog = []*Resource{
	Shelters,
	Alerts,
	RiskAreas,
	Occurrences,
	Campaigns,
	Reports,
}

var bySlug = func() map[string]*Resource {
	m := make(map[string]*Resource, len(catalog))
	for _, r := range catalog {
		m[r.Slug] = r
	}
	return m
}()

// All returns every resource in navigation order.
func All() []*Resource {
	out := make([]*Resource, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a resource by its URL slug.
func Lookup(slug string) (*Resource, bool) {
	r, ok := bySlug[slug]
	return r, ok
}
