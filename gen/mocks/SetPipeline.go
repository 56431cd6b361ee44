package mocks

import mock "github.com/stretchr/testify/mock"

// SetPipeline is a mock type for the SetPipeline type
type SetPipeline struct {
	mock.Mock
}

// ExecSet provides a mock function with given fields:
func (_m *SetPipeline) ExecSet() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Set provides a mock function with given fields: word, rarity
func (_m *SetPipeline) Set(word string, rarity float64) {
	_m.Called(word, rarity)
}

// Size provides a mock function with given fields:
func (_m *SetPipeline) Size() int {
	ret := _m.Called()

	var r0 int
	if rf, ok := ret.Get(0).(func() int); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(int)
	}

	return r0
}
