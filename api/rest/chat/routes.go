package chat

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// chat turns trigger paid completion calls, so the route carries its own
// per-client rate limit on top of any edge limits.
const chatRate = "30-M"

// registers chat routes
func RegisterRoutes(router *gin.RouterGroup, agentClient Chatter) {
	rate, err := limiter.NewRateFromFormatted(chatRate)
	if err != nil {
		panic(err)
	}

	middleware := mgin.NewMiddleware(limiter.New(memory.NewStore(), rate))

	router.POST("/chat", middleware, Handler(agentClient))
}
