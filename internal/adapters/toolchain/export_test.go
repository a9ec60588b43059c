package toolchain

// NewResolverWithEnv creates a Resolver searching the PATH entry of env.
func NewResolverWithEnv(env []string) *Resolver {
	return &Resolver{environ: func() []string { return env }}
}
