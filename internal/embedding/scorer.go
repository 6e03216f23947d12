package embedding

import (
	"context"
	"fmt"
	"strings"
)

// Encode returns the vector for a single text.
func (s *Scorer) Encode(ctx context.Context, text string) ([]float32, error) {
	vecs, err := s.EncodeBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

// EncodeBatch returns one vector per text. Cached texts are served locally and
// the rest go to the service in a single call. Blank texts map to the zero
// vector, so their similarity to anything is 0.
func (s *Scorer) EncodeBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))

	var misses []string
	missIdx := make(map[string][]int)
	var blanks []int

	for i, text := range texts {
		if strings.TrimSpace(text) == "" {
			blanks = append(blanks, i)
			continue
		}
		if vec, ok := s.cache.Get(text); ok {
			out[i] = vec
			continue
		}
		if _, seen := missIdx[text]; !seen {
			misses = append(misses, text)
		}
		missIdx[text] = append(missIdx[text], i)
	}

	if len(misses) > 0 {
		s.l.Debugf(ctx, "%s: embedding %d texts (%d cached)", LogPrefixEncode, len(misses), len(texts)-len(misses)-len(blanks))

		vecs, err := s.svc.Embed(ctx, misses)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEmbedding, err)
		}
		if len(vecs) != len(misses) {
			return nil, fmt.Errorf("%w: expected %d vectors, got %d", ErrEmbedding, len(misses), len(vecs))
		}

		for _, vec := range vecs {
			if err := s.checkDim(vec); err != nil {
				return nil, err
			}
		}
		for j, vec := range vecs {
			s.cache.Add(misses[j], vec)
			for _, i := range missIdx[misses[j]] {
				out[i] = vec
			}
		}
	}

	if len(blanks) > 0 {
		zero := make([]float32, s.Dim())
		for _, i := range blanks {
			out[i] = zero
		}
	}

	return out, nil
}

// Dim is the vector length observed from the service, or 0 before the first call.
func (s *Scorer) Dim() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dim
}

func (s *Scorer) checkDim(vec []float32) error {
	if len(vec) == 0 {
		return fmt.Errorf("%w: empty vector", ErrEmbedding)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dim == 0 {
		s.dim = len(vec)
		return nil
	}
	if len(vec) != s.dim {
		return fmt.Errorf("%w: dimension %d, want %d", ErrEmbedding, len(vec), s.dim)
	}
	return nil
}
