package search

import "errors"

var ErrSearch = errors.New("search failed")
