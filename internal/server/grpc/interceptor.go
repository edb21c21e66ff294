package grpc

import (
	"context"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/adminauth/internal/common"
	pb "github.com/dmitrijs2005/adminauth/internal/proto"
	"github.com/dmitrijs2005/adminauth/internal/server/services"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

type ctxKey string

const (
	principalKey   ctxKey = "principal"
	accessTokenKey ctxKey = "accessToken"
)

// protectedMethods require a valid access token.
var protectedMethods = map[string]bool{
	pb.AuthService_Me_FullMethodName:                    true,
	pb.AuthService_Logout_FullMethodName:                true,
	pb.AuthService_ChangePassword_FullMethodName:        true,
	pb.AuthService_BeginTwoFactor_FullMethodName:        true,
	pb.AuthService_ConfirmTwoFactor_FullMethodName:      true,
	pb.AuthService_DisableTwoFactor_FullMethodName:      true,
	pb.AuthService_RegenerateBackupCodes_FullMethodName: true,
}

// rateLimitedMethods check credentials and are throttled per peer.
var rateLimitedMethods = map[string]bool{
	pb.AuthService_Login_FullMethodName:            true,
	pb.AuthService_VerifyTwoFactor_FullMethodName:  true,
	pb.AuthService_ResetPassword_FullMethodName:    true,
	pb.AuthService_ChangePassword_FullMethodName:   true,
	pb.AuthService_DisableTwoFactor_FullMethodName: true,
}

func principalFromContext(ctx context.Context) (*services.Principal, bool) {
	p, ok := ctx.Value(principalKey).(*services.Principal)
	return p, ok
}

func accessTokenFromContext(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(accessTokenKey).(string)
	return t, ok
}

func bearerToken(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(common.AccessTokenHeaderName)
	if len(values) == 0 {
		return ""
	}
	v := strings.TrimSpace(values[0])
	if len(v) > len(common.BearerPrefix) && strings.EqualFold(v[:len(common.BearerPrefix)], common.BearerPrefix) {
		v = v[len(common.BearerPrefix):]
	}
	return strings.TrimSpace(v)
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if protectedMethods[info.FullMethod] {

		accessToken := bearerToken(ctx)
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		principal, err := s.auth.GetCurrentPrincipal(ctx, accessToken)
		if err != nil {
			return nil, s.toStatus(ctx, err)
		}

		ctx = context.WithValue(ctx, principalKey, principal)
		ctx = context.WithValue(ctx, accessTokenKey, accessToken)
	}

	return handler(ctx, req)
}

func (s *GRPCServer) rateLimitInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if s.limiter != nil && rateLimitedMethods[info.FullMethod] {
		if !s.limiter.get(peerHost(ctx)).Allow() {
			s.logger.Warn(ctx, "rate limited", "method", info.FullMethod, "peer", peerHost(ctx))
			return nil, status.Error(codes.ResourceExhausted, "too many requests")
		}
	}
	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Debug(ctx, "rpc", "method", info.FullMethod, "code", status.Code(err).String(), "duration", time.Since(start).String())
	return resp, err
}

func peerHost(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return "unknown"
	}
	host, _, err := net.SplitHostPort(p.Addr.String())
	if err != nil {
		return p.Addr.String()
	}
	return host
}

// maxTrackedPeers bounds the limiter map; it is reset when full.
const maxTrackedPeers = 10000

// peerLimiter keeps one token bucket per peer host.
type peerLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newPeerLimiter(rps float64, burst int) *peerLimiter {
	if rps <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return &peerLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(rps),
		burst:    burst,
	}
}

func (l *peerLimiter) get(key string) *rate.Limiter {
	l.mu.RLock()
	limiter, ok := l.limiters[key]
	l.mu.RUnlock()
	if ok {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, ok = l.limiters[key]; ok {
		return limiter
	}
	if len(l.limiters) >= maxTrackedPeers {
		l.limiters = make(map[string]*rate.Limiter)
	}
	limiter = rate.NewLimiter(l.limit, l.burst)
	l.limiters[key] = limiter
	return limiter
}
