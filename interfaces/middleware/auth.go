package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/model"
	"streamhub/domain/repository"
	"streamhub/infrastructure/utils"
)

const (
	// ContextUserKey holds the authenticated model.User.
	ContextUserKey = "user"
	// ContextUserIDKey holds the authenticated user's bson.ObjectID.
	ContextUserIDKey = "user_id"

	accessTokenCookie = "accessToken"
)

// Auth resolves the caller from the access-token cookie or the Authorization
// bearer header and loads the full user record into the request context.
func Auth(tokens utils.ITokenManager, userRepo repository.IUser) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := bearerOrCookie(ctx)
		if tokenString == "" {
			abortUnauthorized(ctx, "Unauthorized request")
			return
		}

		claims, err := tokens.VerifyAccessToken(tokenString)
		if err != nil {
			abortUnauthorized(ctx, "Invalid access token")
			return
		}
		userID, err := bson.ObjectIDFromHex(claims.Subject)
		if err != nil {
			abortUnauthorized(ctx, "Invalid access token")
			return
		}

		user, err := userRepo.GetByID(ctx.Request.Context(), userID)
		if err != nil {
			abortUnauthorized(ctx, "Invalid access token")
			return
		}

		ctx.Set(ContextUserKey, user)
		ctx.Set(ContextUserIDKey, user.ID)
		ctx.Next()
	}
}

func bearerOrCookie(ctx *gin.Context) string {
	if cookie, err := ctx.Cookie(accessTokenCookie); err == nil && cookie != "" {
		return cookie
	}
	header := ctx.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

func abortUnauthorized(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized,
		model.NewApiResponse(http.StatusUnauthorized, nil, message))
}
