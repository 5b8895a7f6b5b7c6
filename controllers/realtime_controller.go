package controllers

import (
	"net/http"

	"healthcoach/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	RT *services.RealtimeHub
}

func NewRealtimeController(rt *services.RealtimeHub) *RealtimeController {
	return &RealtimeController{RT: rt}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// MessagesWS streams message.created events to the authenticated user. The
// hub's write loop owns the connection; this handler only reads until the
// client disconnects.
func (rc *RealtimeController) MessagesWS(c *gin.Context) {
	uid := c.GetUint("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := services.NewWSClient(uid, conn)
	rc.RT.Register(cl)

	cl.ReadUntilClosed()
	rc.RT.Unregister(cl)
}
