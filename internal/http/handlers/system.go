package handlers

import (
	"net/http"

	intconfig "busbooking/internal/config"
	"busbooking/internal/payment"

	"github.com/gin-gonic/gin"
)

var (
	jwtSecret []byte
	gateway   payment.Gateway
	gwSecret  string
)

// Configure wires the process-wide collaborators: the JWT secret and
// the long-lived payment gateway client built at startup.
func Configure(secret []byte, gw payment.Gateway, gatewaySecret string) {
	jwtSecret = secret
	gateway = gw
	gwSecret = gatewaySecret
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "bus booking backend running"})
}

func DBCheck(c *gin.Context) {
	if intconfig.DB == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database not connected"})
		return
	}
	var count int
	err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM users").Scan(&count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database query failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "users_in_db": count})
}
