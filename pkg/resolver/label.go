package resolver

import (
	"github.com/stackb/groovy-resolve/pkg/psi"
)

// ResolveLabeledStatement finds the labeled statement a break or continue
// label refers to, searching preceding siblings level by level.  The search
// does not leave the enclosing member or closure.
func ResolveLabeledStatement(label string, place psi.Node) (psi.Node, bool) {
	for !place.IsNil() {
		for run := place; !run.IsNil(); run = run.PrevSibling() {
			if run.Kind() == psi.KindLabeledStatement && run.Name() == label {
				return run, true
			}
		}

		place = place.Context()

		if place.Kind().IsMember() || place.Kind() == psi.KindClosableBlock {
			break
		}
	}
	return psi.Node{}, false
}
