package middleware

import (
	"net/http"
	"regexp"
	"time"

	"nft-lifecycle-engine/internal/core/domain"
	"nft-lifecycle-engine/pkg/apperror"
	"nft-lifecycle-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// HeaderWalletAddress carries the caller's wallet identity. The service
	// signs with a custodial operator key, so the header is identity only.
	HeaderWalletAddress = "X-Wallet-Address"

	// Context keys
	CtxSession   = "session"
	CtxRequestID = "request_id"
)

var walletAddressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// WalletSession resolves the caller's wallet from the request header and
// stores a normalized domain.Session in the context.
func WalletSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		addr := c.GetHeader(HeaderWalletAddress)
		if addr == "" {
			response.Error(c, apperror.Validation("missing X-Wallet-Address header"))
			c.Abort()
			return
		}
		if !walletAddressRe.MatchString(addr) {
			response.Error(c, apperror.Validation("invalid wallet address"))
			c.Abort()
			return
		}
		c.Set(CtxSession, domain.NewSession(addr))
		c.Next()
	}
}

// SessionFrom extracts the wallet session set by WalletSession.
func SessionFrom(c *gin.Context) (domain.Session, bool) {
	v, ok := c.Get(CtxSession)
	if !ok {
		return domain.Session{}, false
	}
	session, ok := v.(domain.Session)
	return session, ok
}

// RequestID assigns each request a correlation id, reused in response
// envelopes and logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(CtxRequestID, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString(CtxRequestID)).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize returns middleware that limits the request body size.
// Once the limit is exceeded the reader returns an error and the
// request is rejected with 413 Payload Too Large.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
