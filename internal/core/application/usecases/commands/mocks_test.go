package commands_test

import (
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderLedger struct{ mock.Mock }

func (m *MockOrderLedger) Place(itemName string, quantity int, unitPrice kernel.Money) order.Order {
	args := m.Called(itemName, quantity, unitPrice)
	return args.Get(0).(order.Order)
}

func (m *MockOrderLedger) Complete(token kernel.Token) bool {
	args := m.Called(token)
	return args.Bool(0)
}

func (m *MockOrderLedger) Order(token kernel.Token) (order.Order, bool) {
	args := m.Called(token)
	return args.Get(0).(order.Order), args.Bool(1)
}

func (m *MockOrderLedger) AllOrders() []order.Order { return nil }

func (m *MockOrderLedger) PendingOrders() []order.Order { return nil }

func (m *MockOrderLedger) Subscribe(_ ports.OrderListener) {}

func (m *MockOrderLedger) Unsubscribe(_ ports.OrderListener) {}
