package normalize

import (
	"strings"

	"github.com/dmitrijs2005/uniswap/internal/common"
)

// Normalizer resolves uploaded filenames against one backend base URL.
type Normalizer struct {
	baseURL string
}

func New(baseURL string) *Normalizer {
	if baseURL == "" {
		baseURL = common.DefaultAPIBaseURL
	}
	return &Normalizer{baseURL: strings.TrimRight(baseURL, "/")}
}

func (n *Normalizer) BaseURL() string { return n.baseURL }
