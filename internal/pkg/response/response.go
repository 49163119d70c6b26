package response

import "github.com/gin-gonic/gin"

// Error writes the flat {"error": message} body every endpoint in this API
// uses for failures.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(200, data)
}
