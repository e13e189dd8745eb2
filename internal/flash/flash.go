// Package flash carries one-shot notices across a redirect. Pending notices
// live in a signed, short-lived cookie and are cleared when read.
package flash

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie holding pending notices.
const CookieName = "flash"

// Notice levels.
const (
	LevelSuccess = "success"
	LevelError   = "danger"
)

// Notice is a single message shown on the next rendered page.
type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

type flashClaims struct {
	Notices []Notice `json:"notices"`
	jwt.RegisteredClaims
}

// Flasher signs and reads notice cookies.
type Flasher struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

// New creates a Flasher. secure marks the cookie Secure (HTTPS only).
func New(secret string, ttl time.Duration, secure bool) *Flasher {
	return &Flasher{secret: []byte(secret), ttl: ttl, secure: secure}
}

// Success queues a success notice.
func (f *Flasher) Success(c *gin.Context, message string) {
	f.Add(c, Notice{Level: LevelSuccess, Message: message})
}

// Add queues a notice, keeping any notice already pending in the request.
func (f *Flasher) Add(c *gin.Context, n Notice) {
	pending, _ := f.decode(c)
	pending = append(pending, n)

	now := time.Now()
	claims := flashClaims{
		Notices: pending,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(f.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(f.secret)
	if err != nil {
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(f.ttl.Seconds()), "/", "", f.secure, true)
	c.Set(CookieName, pending)
}

// Pop returns the pending notices and clears the cookie. Tampered or
// expired cookies yield no notices.
func (f *Flasher) Pop(c *gin.Context) []Notice {
	notices, err := f.decode(c)
	if _, cerr := c.Cookie(CookieName); cerr == nil {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(CookieName, "", -1, "/", "", f.secure, true)
	}
	c.Set(CookieName, []Notice(nil))
	if err != nil {
		return nil
	}
	return notices
}

var errNoFlash = errors.New("no flash cookie")

// decode reads notices queued earlier in this request first, then the cookie.
func (f *Flasher) decode(c *gin.Context) ([]Notice, error) {
	if v, ok := c.Get(CookieName); ok {
		if notices, ok := v.([]Notice); ok {
			return notices, nil
		}
	}

	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return nil, errNoFlash
	}

	claims := &flashClaims{}
	_, err = jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return f.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims.Notices, nil
}
