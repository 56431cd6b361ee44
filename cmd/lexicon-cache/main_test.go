package main

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/weit-project/eit-toolkit/gen/mocks"
	"github.com/weit-project/eit-toolkit/lib/cache/remote"
)

func TestSave(t *testing.T) {
	entries := map[string]float64{"Haus": 5.1}

	client := &mocks.CacheClient{}
	client.On("Save", entries).Return(nil).Once()
	assert.NoError(t, save(client, entries, time.Minute))
	client.AssertExpectations(t)
}

func TestSave_GivesUpAfterTimeout(t *testing.T) {
	client := &mocks.CacheClient{}
	client.On("Save", mock.Anything).Return(remote.ErrNotReady).Once()

	err := save(client, map[string]float64{}, 0)
	assert.ErrorIs(t, err, remote.ErrNotReady)
	client.AssertExpectations(t)
}

func TestSave_OtherErrorsAreNotRetried(t *testing.T) {
	broken := errors.New("broken")
	client := &mocks.CacheClient{}
	client.On("Save", mock.Anything).Return(broken).Once()

	assert.ErrorIs(t, save(client, map[string]float64{}, time.Hour), broken)
}
