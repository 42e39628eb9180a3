package caches

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type OTPStoreMock struct {
	mock.Mock
}

func NewOTPStoreMock() *OTPStoreMock {
	return &OTPStoreMock{}
}

func (m *OTPStoreMock) Issue(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *OTPStoreMock) Verify(ctx context.Context, email, code string) error {
	args := m.Called(ctx, email, code)
	return args.Error(0)
}
