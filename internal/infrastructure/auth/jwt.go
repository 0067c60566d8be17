package auth

import (
	"errors"
	"time"

	"portfolio_studio/internal/domain/entities"
	"portfolio_studio/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

const (
	audienceProposal = "proposal-session"
	audienceUser     = "back-office"
)

type proposalClaims struct {
	jwt.RegisteredClaims
	ProposalID string `json:"proposal_id"`
}

type userClaims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles"`
}

// JWTSessionTokens signs and verifies the two token kinds the service hands
// out: per-proposal session tokens and back-office user tokens. HS256 with a
// shared secret; the audience claim keeps the two kinds from being swapped.

type JWTSessionTokens struct {
	secret []byte
}

var _ interfaces.ISessionTokens = (*JWTSessionTokens)(nil)

func NewJWTSessionTokens(secret string) *JWTSessionTokens {
	return &JWTSessionTokens{secret: []byte(secret)}
}

func (t *JWTSessionTokens) MintProposalToken(proposalID string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := proposalClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{audienceProposal},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		ProposalID: proposalID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *JWTSessionTokens) ParseProposalToken(token string) (string, error) {
	var claims proposalClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, t.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(audienceProposal),
	)
	if err != nil || !parsed.Valid || claims.ProposalID == "" {
		return "", ErrInvalidToken
	}
	return claims.ProposalID, nil
}

func (t *JWTSessionTokens) MintUserToken(u entities.User, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, string(r))
	}
	claims := userClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			Audience:  jwt.ClaimStrings{audienceUser},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Roles: roles,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *JWTSessionTokens) ParseUserToken(token string) (string, []entities.Role, error) {
	var claims userClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, t.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(audienceUser),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", nil, ErrInvalidToken
	}

	roles := make([]entities.Role, 0, len(claims.Roles))
	for _, r := range claims.Roles {
		roles = append(roles, entities.Role(r))
	}
	return claims.Subject, roles, nil
}

func (t *JWTSessionTokens) keyFunc(_ *jwt.Token) (interface{}, error) {
	return t.secret, nil
}
