package wordset

import (
	"context"
	"sync"

	"github.com/heartmarshall/alphalearn-backend/internal/domain"
)

var _ candidateSource = &candidateSourceMock{}

type candidateSourceMock struct {
	CandidatesFunc func(ctx context.Context, letter string, tier domain.Tier) []string

	calls struct {
		Candidates []struct {
			Ctx    context.Context
			Letter string
			Tier   domain.Tier
		}
	}
	lockCandidates sync.RWMutex
}

func (mock *candidateSourceMock) Candidates(ctx context.Context, letter string, tier domain.Tier) []string {
	if mock.CandidatesFunc == nil {
		panic("candidateSourceMock.CandidatesFunc: method is nil but candidateSource.Candidates was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Letter string
		Tier   domain.Tier
	}{Ctx: ctx, Letter: letter, Tier: tier}
	mock.lockCandidates.Lock()
	mock.calls.Candidates = append(mock.calls.Candidates, callInfo)
	mock.lockCandidates.Unlock()
	return mock.CandidatesFunc(ctx, letter, tier)
}

func (mock *candidateSourceMock) CandidatesCalls() []struct {
	Ctx    context.Context
	Letter string
	Tier   domain.Tier
} {
	mock.lockCandidates.RLock()
	calls := mock.calls.Candidates
	mock.lockCandidates.RUnlock()
	return calls
}
