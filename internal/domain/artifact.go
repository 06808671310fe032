package domain

// GeneratedArtifact is the output of one generation. It is never stored.
type GeneratedArtifact struct {
	Text string `json:"text"`
	// ImageURL is an https URL or a data: URI. Empty when no image was made.
	ImageURL string `json:"image_url,omitempty"`
}

// HasImage reports whether an image was produced.
func (a GeneratedArtifact) HasImage() bool {
	return a.ImageURL != ""
}

// Result is either an artifact or a failure, never both.
type Result struct {
	Artifact *GeneratedArtifact `json:"artifact,omitempty"`
	Failure  *Failure           `json:"failure,omitempty"`
}

// Success wraps an artifact.
func Success(a GeneratedArtifact) Result {
	return Result{Artifact: &a}
}

// Failed wraps err as a failure result.
func Failed(err error) Result {
	return Result{Failure: FailureFrom(err)}
}

// OK reports whether the result carries an artifact.
func (r Result) OK() bool {
	return r.Artifact != nil
}
