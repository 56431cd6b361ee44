package mocks

import mock "github.com/stretchr/testify/mock"

// CacheClient is a mock type for the Client type
type CacheClient struct {
	mock.Mock
}

// Exists provides a mock function with given fields:
func (_m *CacheClient) Exists() bool {
	ret := _m.Called()

	var r0 bool
	if rf, ok := ret.Get(0).(func() bool); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

// Load provides a mock function with given fields:
func (_m *CacheClient) Load() (map[string]float64, error) {
	ret := _m.Called()

	var r0 map[string]float64
	if rf, ok := ret.Get(0).(func() map[string]float64); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(map[string]float64)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Save provides a mock function with given fields: entries
func (_m *CacheClient) Save(entries map[string]float64) error {
	ret := _m.Called(entries)

	var r0 error
	if rf, ok := ret.Get(0).(func(map[string]float64) error); ok {
		r0 = rf(entries)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
