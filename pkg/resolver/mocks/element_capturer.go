package mocks

import (
	"testing"

	mock "github.com/stretchr/testify/mock"

	psi "github.com/stackb/groovy-resolve/pkg/psi"
	types "github.com/stackb/groovy-resolve/pkg/types"
)

// ElementCapturer records the elements offered to a mock ScopeProcessor.
type ElementCapturer struct {
	Processor *ScopeProcessor
	Got       []psi.Element
	// Limit, when positive, makes Execute return false once that many
	// elements have been captured.
	Limit int
}

func (c *ElementCapturer) capture(element psi.Element) bool {
	c.Got = append(c.Got, element)
	return true
}

func (c *ElementCapturer) proceed(psi.Element, types.Substitutor) bool {
	return c.Limit <= 0 || len(c.Got) < c.Limit
}

// Names returns the names of the captured elements.
func (c *ElementCapturer) Names() (names []string) {
	for _, element := range c.Got {
		names = append(names, element.Name())
	}
	return
}

// NewElementCapturer returns a capturer whose processor carries the given
// name hint ("" for none).
func NewElementCapturer(t *testing.T, hint string) *ElementCapturer {
	c := &ElementCapturer{
		Processor: NewScopeProcessor(t),
	}

	c.Processor.
		On("NameHint").
		Maybe().
		Return(hint, hint != "")

	c.Processor.
		On("Execute", mock.MatchedBy(c.capture), mock.Anything).
		Maybe().
		Return(c.proceed)

	return c
}
