package config

const (
	// MaxBriefTitleLength is the maximum length for brief titles.
	// Limited to 500 to fit in PostgreSQL VARCHAR(500) and keep
	// titles short enough to render in list views.
	MaxBriefTitleLength = 500

	// MaxUploadBytes is the maximum accepted size for a single
	// uploaded document. Matches the multipart form limit in the
	// upload handler.
	MaxUploadBytes = 25 << 20

	// MaxListLimit caps page sizes on list endpoints.
	MaxListLimit = 100
)
