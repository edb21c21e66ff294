package grpc

import (
	"context"

	"github.com/dmitrijs2005/adminauth/internal/logging"
	"github.com/dmitrijs2005/adminauth/internal/server/auth"
	"github.com/dmitrijs2005/adminauth/internal/server/services"
	"github.com/dmitrijs2005/adminauth/internal/server/twofactor"
)

// fakeAuth implements AuthService; unset funcs panic so tests only
// exercise what they stub.
type fakeAuth struct {
	login          func(ctx context.Context, email, password string) (*services.LoginResult, error)
	verify         func(ctx context.Context, pendingToken string, code twofactor.Code) (*auth.TokenPair, error)
	refresh        func(ctx context.Context, refreshToken string) (*auth.TokenPair, error)
	principal      func(ctx context.Context, accessToken string) (*services.Principal, error)
	logout         func(ctx context.Context, accessToken string) error
	changePassword func(ctx context.Context, accountID, oldPassword, newPassword string) error
	beginTwoFactor func(ctx context.Context, accountID string) (*twofactor.Material, error)
	confirm        func(ctx context.Context, accountID, code string) error
	disable        func(ctx context.Context, accountID string, code twofactor.Code) error
	regenerate     func(ctx context.Context, accountID string) ([]string, error)
	resetPassword  func(ctx context.Context, resetToken, newPassword string) error
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*services.LoginResult, error) {
	return f.login(ctx, email, password)
}
func (f *fakeAuth) VerifyTwoFactorLogin(ctx context.Context, pendingToken string, code twofactor.Code) (*auth.TokenPair, error) {
	return f.verify(ctx, pendingToken, code)
}
func (f *fakeAuth) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	return f.refresh(ctx, refreshToken)
}
func (f *fakeAuth) GetCurrentPrincipal(ctx context.Context, accessToken string) (*services.Principal, error) {
	return f.principal(ctx, accessToken)
}
func (f *fakeAuth) Logout(ctx context.Context, accessToken string) error {
	return f.logout(ctx, accessToken)
}
func (f *fakeAuth) ChangePassword(ctx context.Context, accountID, oldPassword, newPassword string) error {
	return f.changePassword(ctx, accountID, oldPassword, newPassword)
}
func (f *fakeAuth) BeginTwoFactorEnrollment(ctx context.Context, accountID string) (*twofactor.Material, error) {
	return f.beginTwoFactor(ctx, accountID)
}
func (f *fakeAuth) ConfirmTwoFactorEnrollment(ctx context.Context, accountID, code string) error {
	return f.confirm(ctx, accountID, code)
}
func (f *fakeAuth) DisableTwoFactor(ctx context.Context, accountID string, code twofactor.Code) error {
	return f.disable(ctx, accountID, code)
}
func (f *fakeAuth) RegenerateBackupCodes(ctx context.Context, accountID string) ([]string, error) {
	return f.regenerate(ctx, accountID)
}
func (f *fakeAuth) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	return f.resetPassword(ctx, resetToken, newPassword)
}

func newTestServer(f *fakeAuth) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.Nop{}, f, 0, 0)
}

func withPrincipal(ctx context.Context, p *services.Principal, token string) context.Context {
	ctx = context.WithValue(ctx, principalKey, p)
	return context.WithValue(ctx, accessTokenKey, token)
}
