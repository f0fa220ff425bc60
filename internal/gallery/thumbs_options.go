package gallery

// ThumbsOptions configure a thumbnail run.
type ThumbsOptions struct {
	Path     string
	Force    bool
	MaxWidth int
	Quality  int
	Workers  int
}

// SkipUnchanged tests if up-to-date thumbnails are kept.
func (o *ThumbsOptions) SkipUnchanged() bool {
	return !o.Force
}

// ThumbsOptionsDefault returns options that only update outdated thumbnails.
func ThumbsOptionsDefault() ThumbsOptions {
	return ThumbsOptions{
		Path:    "/",
		Force:   false,
		Workers: 2,
	}
}

// ThumbsOptionsForce returns options that recreate all thumbnails.
func ThumbsOptionsForce() ThumbsOptions {
	result := ThumbsOptionsDefault()
	result.Force = true

	return result
}
