package acess_log

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	RayTraceHeader = "X-Request-ID"
	rayTraceKey    = "RayTraceCode"
)

// Identify devolve o usuário autenticado do request, se houver.
type Identify func(c *gin.Context) (userUUID *uuid.UUID, identifier string)

// RayTrace devolve o código de rastreio do request, criando um se necessário.
func RayTrace(c *gin.Context) string {
	if v, ok := c.Get(rayTraceKey); ok {
		if code, ok := v.(string); ok && code != "" {
			return code
		}
	}
	code := c.GetHeader(RayTraceHeader)
	if code == "" {
		code = uuid.NewString()
	}
	c.Set(rayTraceKey, code)
	c.Header(RayTraceHeader, code)
	return code
}

// Middleware registra cada request depois que o handler responde.
func Middleware(identify Identify) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now().UTC()
		trace := RayTrace(c)

		c.Next()

		latency := time.Since(start)
		entry := AccessLog{
			RayTraceCode: trace,
			Method:       c.Request.Method,
			Path:         c.Request.URL.Path,
			Query:        c.Request.URL.RawQuery,
			Host:         c.Request.Host,
			StatusCode:   c.Writer.Status(),
			// Size() é -1 quando nada foi escrito
			ResponseBytes: max(c.Writer.Size(), 0),
			IP:            c.ClientIP(),
			UserAgent:     c.Request.UserAgent(),
			Referer:       c.Request.Referer(),
			ContentType:   c.ContentType(),
			UserLanguage:  c.GetHeader("Accept-Language"),
			RequestTime:   start,
			LatencyMs:     float64(latency.Microseconds()) / 1000,
		}
		if identify != nil {
			entry.UserUUID, entry.Identifier = identify(c)
		}

		log.Debug().
			Str("component", "http").
			Str("ray_trace", trace).
			Str("method", entry.Method).
			Str("path", entry.Path).
			Int("status", entry.StatusCode).
			Dur("latency", latency).
			Msg("request")

		logAsync(c.Request.Context(), entry)
	}
}
