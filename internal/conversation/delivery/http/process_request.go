package http

import "github.com/gin-gonic/gin"

func (h *handler) processChatRequest(c *gin.Context) (chatReq, error) {
	var req chatReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errMalformedBody
	}

	if req.message() == "" {
		return req, errMessageRequired
	}
	return req, nil
}
