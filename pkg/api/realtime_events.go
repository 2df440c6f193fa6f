package api

import (
	"encoding/json"
	"strings"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/labstack/echo"
	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	"github.com/rmg-x/consolectl/pkg/api/resource"
	"github.com/rmg-x/consolectl/pkg/monitor"
)

// realtimeEventsHandler upgrades the request to a websocket and streams
// the monitor event firehose to the client.
func (h *Handler) realtimeEventsHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		conn, _, _, err := ws.UpgradeHTTP(c.Request(), c.Response())
		if err != nil {
			log.Error("api: failed to upgrade to websocket: ", err)
			return nil
		}
		defer conn.Close()

		sub, err := h.nc.Subscribe(monitor.SubjectPrefix+".*.events.*", func(msg *nats.Msg) {
			// Get console name and topic from NATS subject
			strippedSubject := strings.TrimPrefix(msg.Subject, monitor.SubjectPrefix+".")
			s := strings.Split(strippedSubject, ".")
			if len(s) != 3 {
				return
			}
			console := s[0]
			topic := s[2]

			// Parse the message and send it
			var data interface{}
			if err := json.Unmarshal(msg.Data, &data); err == nil {
				event := resource.NewRealtimeEvent(console, topic, data)
				out, _ := json.Marshal(event)
				if err := wsutil.WriteServerMessage(conn, ws.OpText, out); err != nil {
					log.Error("api: failed to send realtime event: ", err)
				}
			}
		})
		if err != nil {
			log.Error("api: failed to subscribe to monitor events: ", err)
			return nil
		}
		defer sub.Unsubscribe()

		// Block until the client closes the connection. We don't expect
		// payload from the client, the read only detects the close.
		for {
			if _, _, err := wsutil.ReadClientData(conn); err != nil {
				log.Debug("api: realtime event stream closed: ", err)
				return nil
			}
		}
	}
}
