package retriever

const (
	// DefaultThreshold is the cosine-distance cutoff used when the caller
	// does not supply one. Rows at or above it are not counted as relevant.
	DefaultThreshold = 0.6

	// DefaultLimit is the result-page size used when the caller does not
	// supply one.
	DefaultLimit = 10

	// hybridCandidateFactor widens the per-signal candidate pools fed into
	// rank fusion so the fused top-K is stable.
	hybridCandidateFactor = 2

	// hybridMaxDistance disables threshold filtering for the hybrid vector
	// leg: fusion ranks on position, not distance cutoff.
	hybridMaxDistance = 2.0
)
