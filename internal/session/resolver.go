package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/mesadeayuda/helpdesk-service/internal/model"
)

// ErrNoSession means the request carries no usable session token. Callers
// treat it as "unauthenticated", never as a fatal condition.
var ErrNoSession = errors.New("no valid session")

// Session is the resolved identity for one request.
type Session struct {
	UserID string     `json:"user_id"`
	Email  string     `json:"email,omitempty"`
	Role   model.Role `json:"role"`
	AreaID *int64     `json:"area_id,omitempty"`
}

// Resolver validates bearer tokens issued by the identity service and
// resolves the user's role and area from the user_roles table. Role lookups
// are cached in redis when a client is configured; the database stays the
// source of truth and staleness is bounded by the TTL.
type Resolver struct {
	db     *gorm.DB
	cache  *redis.Client
	secret []byte
	ttl    time.Duration
}

func NewResolver(db *gorm.DB, cache *redis.Client, secret string, ttl time.Duration) *Resolver {
	return &Resolver{db: db, cache: cache, secret: []byte(secret), ttl: ttl}
}

func (r *Resolver) Resolve(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrNoSession
	}
	userID, email, err := ParseToken(r.secret, token)
	if err != nil {
		return nil, ErrNoSession
	}
	role, areaID := r.lookupRole(ctx, userID)
	return &Session{UserID: userID, Email: email, Role: role, AreaID: areaID}, nil
}

// ParseToken validates an HS256 token and returns its subject and email
// claims. Tokens signed with any other method are rejected.
func ParseToken(secret []byte, raw string) (userID, email string, err error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return secret, nil
	})
	if err != nil || !tok.Valid {
		return "", "", fmt.Errorf("parse token: %w", err)
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("unexpected claims format")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", "", errors.New("token has no subject")
	}
	mail, _ := claims["email"].(string)
	return sub, mail, nil
}

type cachedRole struct {
	Role   string `json:"role"`
	AreaID *int64 `json:"area_id,omitempty"`
}

// lookupRole never fails: a missing role record or a lookup error both
// default to the least-privileged role.
func (r *Resolver) lookupRole(ctx context.Context, userID string) (model.Role, *int64) {
	key := "role:" + userID
	if r.cache != nil {
		if raw, err := r.cache.Get(ctx, key).Result(); err == nil {
			var c cachedRole
			if json.Unmarshal([]byte(raw), &c) == nil {
				return model.NormalizeRole(c.Role), c.AreaID
			}
		}
	}

	var rec model.UserRole
	err := r.db.WithContext(ctx).First(&rec, "user_id = ?", userID).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("session: role lookup for %s: %v", userID, err)
		}
		return model.RoleUser, nil
	}

	role := model.NormalizeRole(rec.Role)
	if r.cache != nil {
		if raw, err := json.Marshal(cachedRole{Role: string(role), AreaID: rec.AreaID}); err == nil {
			if err := r.cache.Set(ctx, key, raw, r.ttl).Err(); err != nil {
				log.Printf("session: cache role for %s: %v", userID, err)
			}
		}
	}
	return role, rec.AreaID
}
