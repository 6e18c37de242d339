package application

import (
	"context"
	"errors"
)

// SessionCookie is the auth cookie the dashboard sets after login.
const SessionCookie = "synqchain_auth"

// authenticatedValue is the only cookie value the stub accepts. Real
// session validation lives in an external collaborator; this service
// only honors the boolean "is authenticated" contract.
const authenticatedValue = "1"

// ErrUnauthenticated signals the request carried no valid session cookie.
var ErrUnauthenticated = errors.New("not authenticated")

// User is the demo identity returned for authenticated sessions.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Service implements the cookie-stub session check.
type Service struct {
	demo User
}

func NewService() *Service {
	return &Service{
		demo: User{
			ID:    "u-demo",
			Email: "demo@synqchain.local",
			Name:  "Demo Buyer",
			Role:  "buyer",
		},
	}
}

// CurrentUser returns the demo user when the cookie value is exactly "1".
func (s *Service) CurrentUser(_ context.Context, cookieValue string) (*User, error) {
	if cookieValue != authenticatedValue {
		return nil, ErrUnauthenticated
	}
	user := s.demo
	return &user, nil
}
