// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/geo"
)

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, query string) (*geo.Resolution, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geo.Resolution), args.Error(1)
}

type MockOrderPublisher struct {
	mock.Mock
}

func (m *MockOrderPublisher) PublishOrderSubmitted(order *model.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendOrderConfirmation(to string, order *model.Order) error {
	args := m.Called(to, order)
	return args.Error(0)
}
