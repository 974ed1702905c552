package utils

import (
	"encoding/hex"
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
)

// PasetoMaker handles local (symmetric) PASETO v4 operations.
type PasetoMaker struct {
	symmetricKey paseto.V4SymmetricKey
}

func NewPasetoMaker(keyHex string) (*PasetoMaker, error) {
	key, err := paseto.V4SymmetricKeyFromHex(keyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid symmetric key: %w", err)
	}

	return &PasetoMaker{
		symmetricKey: key,
	}, nil
}

// GenerateSymmetricKey creates a fresh v4 key. Used once at first boot when no
// hex key is configured.
func GenerateSymmetricKey() string {
	key := paseto.NewV4SymmetricKey()
	return hex.EncodeToString(key.ExportBytes())
}

// CreateToken issues an encrypted v4 local token carrying the role claim the
// authorization middleware checks.
func (m *PasetoMaker) CreateToken(userID, name, role, sessionID string, duration time.Duration) (string, error) {
	token := paseto.NewToken()

	token.SetIssuedAt(time.Now())
	token.SetNotBefore(time.Now())
	token.SetExpiration(time.Now().Add(duration))
	token.SetAudience("civic-workflow")
	token.SetIssuer("civic-service")
	token.SetSubject(userID)

	token.SetString("name", name)
	token.SetString("role", role)
	token.SetString("jti", sessionID)

	encrypted := token.V4Encrypt(m.symmetricKey, nil)

	return encrypted, nil
}

type PayloadPaseto struct {
	UserID    string
	Name      string
	Role      string
	JTI       string
	ExpiresAt time.Time
}

// VerifyToken decrypts and validates a v4 local token.
func (m *PasetoMaker) VerifyToken(tokenString string) (*PayloadPaseto, error) {
	parser := paseto.NewParser()

	parser.AddRule(paseto.NotExpired())
	parser.AddRule(paseto.ForAudience("civic-workflow"))
	parser.AddRule(paseto.ValidAt(time.Now()))

	parsedToken, err := parser.ParseV4Local(m.symmetricKey, tokenString, nil)
	if err != nil {
		return nil, fmt.Errorf("token decryption/verification failed: %w", err)
	}

	claims := parsedToken.Claims()

	userID, _ := claims["sub"].(string)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)
	jti, _ := claims["jti"].(string)

	var exp time.Time
	if t, ok := claims["exp"].(time.Time); ok {
		exp = t
	} else if s, ok := claims["exp"].(string); ok {
		if parsed, err := time.Parse(time.RFC3339, s); err == nil {
			exp = parsed
		}
	} else if f, ok := claims["exp"].(float64); ok {
		exp = time.Unix(int64(f), 0)
	}

	payload := &PayloadPaseto{
		UserID:    userID,
		Name:      name,
		Role:      role,
		JTI:       jti,
		ExpiresAt: exp,
	}

	return payload, nil
}
