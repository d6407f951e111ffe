package middleware

import (
  "fmt"
  "net/http"
  "strings"
  "github.com/gin-gonic/gin"
  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"
  "github.com/growthbridge/growthbridge-backend/internal/logger"
  "github.com/growthbridge/growthbridge-backend/internal/requestdata"
)

// AuthMiddleware is the verification half of the platform's auth boundary.
// Token issuance and session management live in the identity service; this
// backend only checks the bearer token and resolves the caller's user id.
type AuthMiddleware struct {
  log           *logger.Logger
  jwtSecretKey  string
}

func NewAuthMiddleware(log *logger.Logger, jwtSecretKey string) *AuthMiddleware {
  middlewareLogger := log.With("Middleware", "AuthMiddleware")
  return &AuthMiddleware{log: middlewareLogger, jwtSecretKey: jwtSecretKey}
}

func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
  return func(c *gin.Context) {
    tokenString := extractToken(c)
    if tokenString == "" {
      c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
      return
    }
    userID, err := am.resolveUserID(tokenString)
    if err != nil {
      am.log.Debug("Token rejected", "error", err)
      c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
      return
    }
    ctx := requestdata.WithRequestData(c.Request.Context(), &requestdata.RequestData{
      TokenString: tokenString,
      UserID:      userID,
    })
    c.Request = c.Request.WithContext(ctx)
    c.Next()
  }
}

func (am *AuthMiddleware) resolveUserID(tokenString string) (uuid.UUID, error) {
  token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
    if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
      return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
    }
    return []byte(am.jwtSecretKey), nil
  })
  if err != nil || !token.Valid {
    return uuid.Nil, fmt.Errorf("invalid token")
  }
  claims, ok := token.Claims.(jwt.MapClaims)
  if !ok {
    return uuid.Nil, fmt.Errorf("invalid token claims")
  }
  sub, err := claims.GetSubject()
  if err != nil || sub == "" {
    return uuid.Nil, fmt.Errorf("token has no subject")
  }
  userID, err := uuid.Parse(sub)
  if err != nil {
    return uuid.Nil, fmt.Errorf("token subject is not a user id")
  }
  return userID, nil
}

func extractToken(c *gin.Context) string {
  authHeader := c.GetHeader("Authorization")
  if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
    return authHeader[7:]
  }
  if qToken := c.Query("token"); qToken != "" {
    return qToken
  }
  return ""
}
