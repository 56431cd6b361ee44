package mocks

import (
	remote "github.com/weit-project/eit-toolkit/lib/cache/remote"
	mock "github.com/stretchr/testify/mock"
)

// RemoteClient is a mock type for the Client type
type RemoteClient struct {
	mock.Mock
}

// Clear provides a mock function with given fields:
func (_m *RemoteClient) Clear() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Exists provides a mock function with given fields:
func (_m *RemoteClient) Exists() bool {
	ret := _m.Called()

	var r0 bool
	if rf, ok := ret.Get(0).(func() bool); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

// NewSetPipeline provides a mock function with given fields: size
func (_m *RemoteClient) NewSetPipeline(size int) remote.SetPipeline {
	ret := _m.Called(size)

	var r0 remote.SetPipeline
	if rf, ok := ret.Get(0).(func(int) remote.SetPipeline); ok {
		r0 = rf(size)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(remote.SetPipeline)
		}
	}

	return r0
}

// Ready provides a mock function with given fields:
func (_m *RemoteClient) Ready() bool {
	ret := _m.Called()

	var r0 bool
	if rf, ok := ret.Get(0).(func() bool); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

// Scan provides a mock function with given fields: onEntry
func (_m *RemoteClient) Scan(onEntry func(string, float64) error) error {
	ret := _m.Called(onEntry)

	var r0 error
	if rf, ok := ret.Get(0).(func(func(string, float64) error) error); ok {
		r0 = rf(onEntry)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
