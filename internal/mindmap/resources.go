package mindmap

// ResourcePrefix is the archive directory that holds embedded binaries.
const ResourcePrefix = "resources/"

// AliasPrefix is prepended to resource paths by an older image-addressing
// convention. Image src values may use either form, so every resource is
// stored under both keys.
const AliasPrefix = "xap:"

// Resources maps archive-relative paths to raw embedded content.
type Resources map[string][]byte

// Add stores data under both the raw path and its aliased form.
func (r Resources) Add(path string, data []byte) {
	r[path] = data
	r[AliasPrefix+path] = data
}

// Lookup fetches a resource by either addressing convention.
func (r Resources) Lookup(src string) ([]byte, bool) {
	data, ok := r[src]
	return data, ok
}
