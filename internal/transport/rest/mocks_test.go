package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/alphalearn-backend/internal/domain"
	"github.com/heartmarshall/alphalearn-backend/internal/service/auth"
	"github.com/heartmarshall/alphalearn-backend/internal/service/learning"
)

var (
	_ authService     = &authServiceMock{}
	_ wordSetBuilder  = &wordSetBuilderMock{}
	_ learningService = &learningServiceMock{}
)

type authServiceMock struct {
	RegisterFunc func(ctx context.Context, input auth.RegisterInput) (*domain.User, error)
	LoginFunc    func(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error)

	mu            sync.Mutex
	registerCalls []auth.RegisterInput
	loginCalls    []auth.LoginInput
}

func (m *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*domain.User, error) {
	if m.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	m.mu.Lock()
	m.registerCalls = append(m.registerCalls, input)
	m.mu.Unlock()
	return m.RegisterFunc(ctx, input)
}

func (m *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error) {
	if m.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	m.mu.Lock()
	m.loginCalls = append(m.loginCalls, input)
	m.mu.Unlock()
	return m.LoginFunc(ctx, input)
}

func (m *authServiceMock) RegisterCalls() []auth.RegisterInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.registerCalls
}

func (m *authServiceMock) LoginCalls() []auth.LoginInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loginCalls
}

type wordSetBuilderMock struct {
	BuildWordSetFunc func(ctx context.Context, tier domain.Tier) ([]domain.WordRecord, error)

	mu    sync.Mutex
	tiers []domain.Tier
}

func (m *wordSetBuilderMock) BuildWordSet(ctx context.Context, tier domain.Tier) ([]domain.WordRecord, error) {
	if m.BuildWordSetFunc == nil {
		panic("wordSetBuilderMock.BuildWordSetFunc: method is nil but wordSetBuilder.BuildWordSet was just called")
	}
	m.mu.Lock()
	m.tiers = append(m.tiers, tier)
	m.mu.Unlock()
	return m.BuildWordSetFunc(ctx, tier)
}

func (m *wordSetBuilderMock) BuildWordSetCalls() []domain.Tier {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tiers
}

type learningServiceMock struct {
	CreateSessionFunc    func(ctx context.Context, userID uuid.UUID, input learning.CreateSessionInput) (uuid.UUID, error)
	ListSessionsFunc     func(ctx context.Context, userID uuid.UUID) ([]domain.SessionSummary, error)
	GetSessionFunc       func(ctx context.Context, userID, sessionID uuid.UUID) (*domain.Session, error)
	GetTrackingStatsFunc func(ctx context.Context, userID uuid.UUID) (domain.TrackingStats, error)

	mu          sync.Mutex
	createCalls []learning.CreateSessionInput
}

func (m *learningServiceMock) CreateSession(ctx context.Context, userID uuid.UUID, input learning.CreateSessionInput) (uuid.UUID, error) {
	if m.CreateSessionFunc == nil {
		panic("learningServiceMock.CreateSessionFunc: method is nil but learningService.CreateSession was just called")
	}
	m.mu.Lock()
	m.createCalls = append(m.createCalls, input)
	m.mu.Unlock()
	return m.CreateSessionFunc(ctx, userID, input)
}

func (m *learningServiceMock) CreateSessionCalls() []learning.CreateSessionInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

func (m *learningServiceMock) ListSessions(ctx context.Context, userID uuid.UUID) ([]domain.SessionSummary, error) {
	if m.ListSessionsFunc == nil {
		panic("learningServiceMock.ListSessionsFunc: method is nil but learningService.ListSessions was just called")
	}
	return m.ListSessionsFunc(ctx, userID)
}

func (m *learningServiceMock) GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*domain.Session, error) {
	if m.GetSessionFunc == nil {
		panic("learningServiceMock.GetSessionFunc: method is nil but learningService.GetSession was just called")
	}
	return m.GetSessionFunc(ctx, userID, sessionID)
}

func (m *learningServiceMock) GetTrackingStats(ctx context.Context, userID uuid.UUID) (domain.TrackingStats, error) {
	if m.GetTrackingStatsFunc == nil {
		panic("learningServiceMock.GetTrackingStatsFunc: method is nil but learningService.GetTrackingStats was just called")
	}
	return m.GetTrackingStatsFunc(ctx, userID)
}
