package services

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"lamsa/internal/clock"
	"lamsa/internal/domain"
)

const adminSubject = "admin"

// ErrInvalidSession covers missing, tampered and expired session tokens.
var ErrInvalidSession = errors.New("invalid session")

type sessionClaims struct {
	Authenticated bool `json:"authenticated"`
	jwt.RegisteredClaims
}

// AuthService checks the single shared admin credential pair and issues
// signed session tokens carried in a client-side cookie.
type AuthService struct {
	username string
	hash     []byte
	secret   []byte
	ttl      time.Duration
	clock    clock.Clock
}

func NewAuthService(username, password, secret string, ttl time.Duration, clk clock.Clock) (*AuthService, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash admin password")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{username: username, hash: h, secret: []byte(secret), ttl: ttl, clock: clk}, nil
}

// Login returns a signed session token when the pair matches.
func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.username {
		return "", ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword(s.hash, []byte(password)) != nil {
		return "", ErrBadCreds
	}
	now := s.clock.Now()
	claims := sessionClaims{
		Authenticated: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   adminSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign session")
	}
	return tok, nil
}

// Verify parses and checks a session token against the signing secret and
// the injected clock.
func (s *AuthService) Verify(token string) (*domain.Session, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}
	var claims sessionClaims
	// Expiry is judged below against the service clock, not wall time.
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if _, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}); err != nil {
		return nil, errors.Wrap(ErrInvalidSession, err.Error())
	}
	if claims.ExpiresAt == nil || !s.clock.Now().Before(claims.ExpiresAt.Time) {
		return nil, ErrInvalidSession
	}
	if !claims.Authenticated || claims.Subject != adminSubject {
		return nil, ErrInvalidSession
	}
	return &domain.Session{
		ID:            claims.ID,
		Subject:       claims.Subject,
		Authenticated: true,
		ExpiresAt:     claims.ExpiresAt.Time,
	}, nil
}

// TTL is how long an issued token stays valid.
func (s *AuthService) TTL() time.Duration { return s.ttl }
