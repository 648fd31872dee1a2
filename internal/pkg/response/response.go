package response

import "github.com/gin-gonic/gin"

// The client contract is a flat envelope: {"success": true, ...} on
// success with payload fields at the top level, {"success": false,
// "message": ...} on failure.

func Success(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(200, body)
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}
