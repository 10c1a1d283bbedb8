package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/GinYoshida/kanji-quize/internal/config"
	"github.com/GinYoshida/kanji-quize/internal/model"
	"github.com/GinYoshida/kanji-quize/internal/util"
	"github.com/GinYoshida/kanji-quize/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues player and parent tokens. The parent passcode comes
// from injected configuration, never from a literal in handler code, and
// failed attempts are throttled per client in Redis.
type AuthService struct {
	cfg *config.Config
	rdb *redis.Client
}

func NewAuthService(cfg *config.Config, rdb *redis.Client) *AuthService {
	return &AuthService{cfg: cfg, rdb: rdb}
}

// IssuePlayerToken returns a token for the quiz player. An empty userID
// gets a fresh identity so anonymous children can still save progress.
func (s *AuthService) IssuePlayerToken(userID string) (string, string, error) {
	if userID == "" {
		userID = uuid.New().String()
	}
	token, err := util.GenerateJWT(userID, model.RolePlayer, s.cfg.JWT.Secret, s.cfg.JWT.ExpireTime)
	return token, userID, err
}

// VerifyPasscode checks the parent passcode and issues an owner token.
// Returns util.ErrWrongPasscode on mismatch and util.ErrTooManyAttempts
// once the client has exhausted its attempts inside the lockout window.
func (s *AuthService) VerifyPasscode(ctx context.Context, passcode, clientIP, userID string) (string, string, error) {
	if s.cfg.Parent.AttemptThrottle {
		locked, err := s.attemptsExhausted(ctx, clientIP)
		if err == nil && locked {
			return "", "", util.ErrTooManyAttempts
		}
	}

	if !s.passcodeMatches(passcode) {
		if s.cfg.Parent.AttemptThrottle {
			s.recordFailedAttempt(ctx, clientIP)
		}
		return "", "", util.ErrWrongPasscode
	}

	if s.cfg.Parent.AttemptThrottle {
		s.rdb.Del(ctx, attemptKey(clientIP))
	}

	if userID == "" {
		userID = "parent"
	}
	token, err := util.GenerateJWT(userID, model.RoleParent, s.cfg.JWT.Secret, s.cfg.JWT.ExpireTime)
	return token, userID, err
}

func (s *AuthService) passcodeMatches(passcode string) bool {
	if s.cfg.Parent.PasscodeHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.Parent.PasscodeHash), []byte(passcode)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.cfg.Parent.Passcode), []byte(passcode)) == 1
}

func attemptKey(clientIP string) string {
	return "passcode_attempts:" + clientIP
}

func (s *AuthService) attemptsExhausted(ctx context.Context, clientIP string) (bool, error) {
	max := s.cfg.Parent.MaxAttempts
	if max <= 0 {
		max = 5
	}
	count, err := s.rdb.Get(ctx, attemptKey(clientIP)).Int()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	return count >= max, nil
}

func (s *AuthService) recordFailedAttempt(ctx context.Context, clientIP string) {
	lockout := time.Duration(s.cfg.Parent.LockoutMinutes) * time.Minute
	if lockout <= 0 {
		lockout = 15 * time.Minute
	}
	key := attemptKey(clientIP)
	pipe := s.rdb.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, lockout)
	if _, err := pipe.Exec(ctx); err != nil {
		// best effort, the verification itself already failed
		logger.Log.Warn("passcode attempt tracking failed", zap.Error(err))
	}
}
