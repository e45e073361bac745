package web

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	sessionCookie = "galaxy_session"
	stateCookie   = "galaxy_oauth_state"
	stateTTL      = 10 * time.Minute

	issuer = "fabled-galaxy"
)

var ErrInvalidSession = errors.New("invalid session")

// Claims is the signed session payload. Subject carries the user id.
type Claims struct {
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar,omitempty"`
	jwt.RegisteredClaims
}

// Sessions issues and verifies HS256 session cookies.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func NewSessions(secret string, ttl time.Duration, secure bool) *Sessions {
	return &Sessions{secret: []byte(secret), ttl: ttl, secure: secure, now: time.Now}
}

func (s *Sessions) Issue(u *domain.User) (string, error) {
	now := s.now()
	claims := &Claims{
		Name:   u.DisplayName,
		Email:  u.Email,
		Avatar: u.AvatarURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return token, nil
}

func (s *Sessions) Parse(raw string) (*domain.User, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidSession)
	}

	return &domain.User{
		ID:          claims.Subject,
		DisplayName: claims.Name,
		Email:       claims.Email,
		AvatarURL:   claims.Avatar,
	}, nil
}

func (s *Sessions) setCookie(c *gin.Context, u *domain.User) error {
	token, err := s.Issue(u)
	if err != nil {
		return err
	}
	s.writeCookie(c, sessionCookie, token, s.ttl)
	return nil
}

func (s *Sessions) clearCookie(c *gin.Context, name string) {
	s.writeCookie(c, name, "", -time.Second)
}

func (s *Sessions) writeCookie(c *gin.Context, name, value string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, int(ttl.Seconds()), "/", "", s.secure, true)
}
