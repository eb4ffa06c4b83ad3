package learning

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/alphalearn-backend/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc      func(ctx context.Context, s *domain.Session) error
	AddWordsFunc    func(ctx context.Context, sessionID uuid.UUID, words []domain.WordRecord) error
	SaveQuizFunc    func(ctx context.Context, sessionID uuid.UUID, quiz []json.RawMessage) error
	ListByUserFunc  func(ctx context.Context, userID uuid.UUID) ([]domain.SessionSummary, error)
	GetByIDFunc     func(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) (*domain.Session, error)
	StatsByUserFunc func(ctx context.Context, userID uuid.UUID) (domain.TrackingStats, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			S   *domain.Session
		}
		AddWords []struct {
			Ctx       context.Context
			SessionID uuid.UUID
			Words     []domain.WordRecord
		}
		SaveQuiz []struct {
			Ctx       context.Context
			SessionID uuid.UUID
			Quiz      []json.RawMessage
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		GetByID []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			SessionID uuid.UUID
		}
		StatsByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockCreate      sync.RWMutex
	lockAddWords    sync.RWMutex
	lockSaveQuiz    sync.RWMutex
	lockListByUser  sync.RWMutex
	lockGetByID     sync.RWMutex
	lockStatsByUser sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, s *domain.Session) error {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Session
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *sessionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.Session
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) AddWords(ctx context.Context, sessionID uuid.UUID, words []domain.WordRecord) error {
	if mock.AddWordsFunc == nil {
		panic("sessionRepoMock.AddWordsFunc: method is nil but sessionRepo.AddWords was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
		Words     []domain.WordRecord
	}{Ctx: ctx, SessionID: sessionID, Words: words}
	mock.lockAddWords.Lock()
	mock.calls.AddWords = append(mock.calls.AddWords, callInfo)
	mock.lockAddWords.Unlock()
	return mock.AddWordsFunc(ctx, sessionID, words)
}

func (mock *sessionRepoMock) AddWordsCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
	Words     []domain.WordRecord
} {
	mock.lockAddWords.RLock()
	calls := mock.calls.AddWords
	mock.lockAddWords.RUnlock()
	return calls
}

func (mock *sessionRepoMock) SaveQuiz(ctx context.Context, sessionID uuid.UUID, quiz []json.RawMessage) error {
	if mock.SaveQuizFunc == nil {
		panic("sessionRepoMock.SaveQuizFunc: method is nil but sessionRepo.SaveQuiz was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
		Quiz      []json.RawMessage
	}{Ctx: ctx, SessionID: sessionID, Quiz: quiz}
	mock.lockSaveQuiz.Lock()
	mock.calls.SaveQuiz = append(mock.calls.SaveQuiz, callInfo)
	mock.lockSaveQuiz.Unlock()
	return mock.SaveQuizFunc(ctx, sessionID, quiz)
}

func (mock *sessionRepoMock) SaveQuizCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
	Quiz      []json.RawMessage
} {
	mock.lockSaveQuiz.RLock()
	calls := mock.calls.SaveQuiz
	mock.lockSaveQuiz.RUnlock()
	return calls
}

func (mock *sessionRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SessionSummary, error) {
	if mock.ListByUserFunc == nil {
		panic("sessionRepoMock.ListByUserFunc: method is nil but sessionRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *sessionRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *sessionRepoMock) GetByID(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) (*domain.Session, error) {
	if mock.GetByIDFunc == nil {
		panic("sessionRepoMock.GetByIDFunc: method is nil but sessionRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		SessionID uuid.UUID
	}{Ctx: ctx, UserID: userID, SessionID: sessionID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, sessionID)
}

func (mock *sessionRepoMock) GetByIDCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	SessionID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *sessionRepoMock) StatsByUser(ctx context.Context, userID uuid.UUID) (domain.TrackingStats, error) {
	if mock.StatsByUserFunc == nil {
		panic("sessionRepoMock.StatsByUserFunc: method is nil but sessionRepo.StatsByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockStatsByUser.Lock()
	mock.calls.StatsByUser = append(mock.calls.StatsByUser, callInfo)
	mock.lockStatsByUser.Unlock()
	return mock.StatsByUserFunc(ctx, userID)
}

func (mock *sessionRepoMock) StatsByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockStatsByUser.RLock()
	calls := mock.calls.StatsByUser
	mock.lockStatsByUser.RUnlock()
	return calls
}
