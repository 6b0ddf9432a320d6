package releasecfg

// Builder assembles a Config one answer at a time. Methods are value
// receivers returning a derived copy, so each assembly step yields a new
// value instead of mutating shared state.
type Builder struct {
	cfg Config
}

// NewBuilder returns a Builder seeded with the scaffold defaults: patch
// releases, no targets, sync all.
func NewBuilder() Builder {
	return Builder{cfg: Config{
		ReleaseType: Patch,
		Paths:       map[Target]string{},
		SyncMode:    SyncAll,
	}}
}

// WithReleaseType sets the default release type.
func (b Builder) WithReleaseType(rt ReleaseType) Builder {
	b.cfg = b.cfg.clone()
	b.cfg.ReleaseType = rt
	return b
}

// WithTarget appends an enabled target and its manifest path.
func (b Builder) WithTarget(t Target, path string) Builder {
	b.cfg = b.cfg.clone()
	b.cfg.Targets = append(b.cfg.Targets, t)
	b.cfg.Paths[t] = path
	return b
}

// WithSyncMode sets the synchronization policy.
func (b Builder) WithSyncMode(mode SyncMode) Builder {
	b.cfg = b.cfg.clone()
	b.cfg.SyncMode = mode
	return b
}

// WithGroup appends one sync group verbatim, in selection order.
func (b Builder) WithGroup(group []Target) Builder {
	b.cfg = b.cfg.clone()
	b.cfg.Groups = append(b.cfg.Groups, append([]Target(nil), group...))
	return b
}

// Build returns the assembled Config.
func (b Builder) Build() Config {
	return b.cfg.clone()
}
