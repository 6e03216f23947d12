package embedding

import "errors"

// ErrEmbedding marks any failure of the embedding service or its output.
// It is not retried within a request.
var ErrEmbedding = errors.New("embedding failed")
