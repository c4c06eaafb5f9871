// SPDX-License-Identifier: MIT

// Package render: the Format operation.

package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/infseq/seq"
)

// Format renders the first values of s as
//
//	<Sequence: v0 v1 v2 v3 v4 v5 ...>
//
// using the resolved options (DefaultPreviewLength values unless
// overridden). Values print with %v. A repeat call serves entirely
// from the sequence's cache.
//
// Errors: any generator error from resolving the previewed indices,
// propagated unchanged.
func Format[T any](s *seq.Sequence[T], opts ...Option) (string, error) {
	o := gatherOptions(opts...)

	head, err := s.Preview(o.previewLength)
	if err != nil {
		return "", err
	}

	parts := make([]string, len(head))
	for i, v := range head {
		parts[i] = fmt.Sprintf("%v", v)
	}

	return fmt.Sprintf("<Sequence: %s %s>", strings.Join(parts, o.separator), o.ellipsis), nil
}
