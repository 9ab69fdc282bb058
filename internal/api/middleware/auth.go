package middleware

import (
	"crypto/rsa"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/api/shared/errors"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	AUTH_TYPE_KEY    contextKey = "auth_type"
	AUTH_SUBJECT_KEY contextKey = "auth_subject"
	JWT_CLAIMS_KEY   contextKey = "jwt_claims"
	CALLER_KEY       contextKey = "caller"
)

const (
	AUTH_TYPE_JWT    = "jwt"
	AUTH_TYPE_APIKEY = "apikey"
)

// clockSkew is the tolerance applied to exp and nbf
const clockSkew = 30 * time.Second

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	APIKeys      []string
}

// AuthResult holds the result of authentication
type AuthResult struct {
	Success     bool
	AuthType    string // AUTH_TYPE_JWT or AUTH_TYPE_APIKEY
	Claims      *jwt.RegisteredClaims
	AuthSubject string
	Caller      *common.Address // set when the JWT subject is an account address
	Error       error
}

// Authenticator checks Authorization headers. JWTs carry the account that sends
// ledger transactions; API keys belong to operators.
type Authenticator struct {
	publicKey *rsa.PublicKey
	keyErr    error
	apiKeys   [][]byte
	parser    *jwt.Parser
}

// NewAuthenticator parses the configured credentials once
func NewAuthenticator(cfg AuthConfig) *Authenticator {
	a := &Authenticator{
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(clockSkew),
		),
	}

	if cfg.JWTPublicKey == "" {
		a.keyErr = errors.New("JWT public key not configured")
	} else if a.publicKey, a.keyErr = jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.JWTPublicKey)); a.keyErr != nil {
		a.keyErr = fmt.Errorf("failed to parse RSA public key: %w", a.keyErr)
	}

	for _, key := range cfg.APIKeys {
		if key != "" {
			a.apiKeys = append(a.apiKeys, []byte(key))
		}
	}
	return a
}

// Authenticate validates an Authorization header against cfg
func Authenticate(authHeader string, cfg AuthConfig) AuthResult {
	return NewAuthenticator(cfg).Authenticate(authHeader)
}

// Authenticate validates an Authorization header of the form "<scheme> <credentials>"
func (a *Authenticator) Authenticate(authHeader string) AuthResult {
	if authHeader == "" {
		return AuthResult{Error: errors.New("missing Authorization header")}
	}
	scheme, credentials, ok := strings.Cut(authHeader, " ")
	if !ok || credentials == "" {
		return AuthResult{Error: errors.New("invalid Authorization header format")}
	}

	switch strings.ToLower(scheme) {
	case "bearer":
		claims, err := a.verifyJWT(credentials)
		if err != nil {
			return AuthResult{Error: err}
		}
		result := AuthResult{
			Success:     true,
			AuthType:    AUTH_TYPE_JWT,
			Claims:      claims,
			AuthSubject: claims.Subject,
		}
		if common.IsHexAddress(claims.Subject) {
			caller := common.HexToAddress(claims.Subject)
			result.Caller = &caller
		}
		return result

	case "apikey":
		if err := a.verifyAPIKey(credentials); err != nil {
			return AuthResult{Error: err}
		}
		return AuthResult{Success: true, AuthType: AUTH_TYPE_APIKEY}

	default:
		return AuthResult{Error: fmt.Errorf("unsupported authorization type: %s", scheme)}
	}
}

func (a *Authenticator) verifyJWT(tokenString string) (*jwt.RegisteredClaims, error) {
	if a.keyErr != nil {
		return nil, a.keyErr
	}

	claims := &jwt.RegisteredClaims{}
	_, err := a.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return a.publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return claims, nil
}

func (a *Authenticator) verifyAPIKey(apiKey string) error {
	if len(a.apiKeys) == 0 {
		return errors.New("no API keys configured")
	}
	for _, key := range a.apiKeys {
		if subtle.ConstantTimeCompare(key, []byte(apiKey)) == 1 {
			return nil
		}
	}
	return errors.New("invalid API key")
}

// CallerAuth returns a gin middleware that only accepts a JWT whose subject is the
// hex address of the caller. The address is stored under CALLER_KEY.
func CallerAuth(cfg AuthConfig) gin.HandlerFunc {
	return authenticate(NewAuthenticator(cfg), AUTH_TYPE_JWT)
}

// APIKeyAuth returns a gin middleware that only accepts API keys
func APIKeyAuth(cfg AuthConfig) gin.HandlerFunc {
	return authenticate(NewAuthenticator(cfg), AUTH_TYPE_APIKEY)
}

func authenticate(a *Authenticator, allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := a.Authenticate(c.GetHeader("Authorization"))

		switch {
		case !result.Success:
		case !slices.Contains(allowed, result.AuthType):
			result.Success = false
			result.Error = fmt.Errorf("%s authentication is not accepted for this endpoint", result.AuthType)
		case result.AuthType == AUTH_TYPE_JWT && result.Caller == nil:
			result.Success = false
			result.Error = fmt.Errorf("token subject %q is not an address", result.AuthSubject)
		}

		if !result.Success {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(result.Error),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			apiErr := apierrors.NewUnauthorizedError("Authentication failed", result.Error.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apiErr})
			return
		}

		c.Set(string(AUTH_TYPE_KEY), result.AuthType)
		if result.AuthSubject != "" {
			c.Set(string(AUTH_SUBJECT_KEY), result.AuthSubject)
		}
		if result.Claims != nil {
			c.Set(string(JWT_CLAIMS_KEY), result.Claims)
		}
		if result.Caller != nil {
			c.Set(string(CALLER_KEY), *result.Caller)
			c.Request = c.Request.WithContext(logger.WithFields(c.Request.Context(), zap.String("caller", result.Caller.Hex())))
		}

		c.Next()
	}
}

// Caller returns the address authenticated by CallerAuth
func Caller(c *gin.Context) (common.Address, bool) {
	v, ok := c.Get(string(CALLER_KEY))
	if !ok {
		return common.Address{}, false
	}
	addr, ok := v.(common.Address)
	return addr, ok
}
