package mocks

import (
	context "context"

	annotation "github.com/weit-project/eit-toolkit/lib/annotation"
	mock "github.com/stretchr/testify/mock"
)

// Annotator is a mock type for the Annotator type
type Annotator struct {
	mock.Mock
}

// Annotate provides a mock function with given fields: ctx, sentence
func (_m *Annotator) Annotate(ctx context.Context, sentence string) (*annotation.Sentence, error) {
	ret := _m.Called(ctx, sentence)

	var r0 *annotation.Sentence
	if rf, ok := ret.Get(0).(func(context.Context, string) *annotation.Sentence); ok {
		r0 = rf(ctx, sentence)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*annotation.Sentence)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, sentence)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
