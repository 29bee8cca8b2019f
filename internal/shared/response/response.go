package response

import "github.com/gin-gonic/gin"

// The bulk-upload contract keeps error bodies flat: any non-2xx answer is a
// JSON object with a "message" field the client can show verbatim.

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, 401, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, 500, message)
}
