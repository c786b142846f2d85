package response

import (
	"context"
	"fmt"
	"net/http"

	"sayyes-srv/pkg/discord"
	"sayyes-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with the given data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error writes an error response. HTTPError values keep their status code and
// message; anything else becomes a 500. Server errors are reported to Discord
// when a client is configured.
func Error(c *gin.Context, err error, discordClient discord.IDiscord) {
	if httpErr, ok := err.(*errors.HTTPError); ok {
		if httpErr.StatusCode >= http.StatusInternalServerError {
			notifyDiscord(c, discordClient, httpErr.Message)
		}
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		return
	}

	notifyDiscord(c, discordClient, err.Error())
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

// PanicError writes a 500 response for a recovered panic.
func PanicError(c *gin.Context, recovered any, discordClient discord.IDiscord) {
	notifyDiscord(c, discordClient, fmt.Sprintf("panic: %v", recovered))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

func notifyDiscord(c *gin.Context, discordClient discord.IDiscord, detail string) {
	if discordClient == nil {
		return
	}
	ctx := context.Background()
	_ = discordClient.SendError(ctx,
		fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
		detail, nil)
}
