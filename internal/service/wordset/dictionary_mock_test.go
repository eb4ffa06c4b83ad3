package wordset

import (
	"context"
	"sync"

	"github.com/heartmarshall/alphalearn-backend/internal/provider"
)

var _ dictionary = &dictionaryMock{}

type dictionaryMock struct {
	LookupFunc func(ctx context.Context, word string) (*provider.Definition, error)

	calls struct {
		Lookup []struct {
			Ctx  context.Context
			Word string
		}
	}
	lockLookup sync.RWMutex
}

func (mock *dictionaryMock) Lookup(ctx context.Context, word string) (*provider.Definition, error) {
	if mock.LookupFunc == nil {
		panic("dictionaryMock.LookupFunc: method is nil but dictionary.Lookup was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{Ctx: ctx, Word: word}
	mock.lockLookup.Lock()
	mock.calls.Lookup = append(mock.calls.Lookup, callInfo)
	mock.lockLookup.Unlock()
	return mock.LookupFunc(ctx, word)
}

func (mock *dictionaryMock) LookupCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockLookup.RLock()
	calls := mock.calls.Lookup
	mock.lockLookup.RUnlock()
	return calls
}
