package server

import (
	"context"

	"github.com/gridpolicy/gridpolicy/pkg/types"
	"github.com/stretchr/testify/mock"
)

type mockDecider struct {
	mock.Mock
}

func (m *mockDecider) Decide(ctx context.Context, vars types.Variables) types.Decision {
	args := m.Called(ctx, vars)
	return args.Get(0).(types.Decision)
}
