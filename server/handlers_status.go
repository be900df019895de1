package server

import (
	"encoding/json"

	jp "github.com/go-mclib/picocraft/java_protocol"
	"github.com/go-mclib/picocraft/java_protocol/packets"
	ns "github.com/go-mclib/picocraft/net_structures"
)

func init() {
	registerHandler(jp.StateStatus, packets.StatusRequest{}.ID(), handleStatusRequest)
	registerHandler(jp.StateStatus, packets.PingRequest{}.ID(), handlePingRequest)
}

type statusVersion struct {
	Name     string `json:"name"`
	Protocol int    `json:"protocol"`
}

type statusPlayers struct {
	Max    int   `json:"max"`
	Online int   `json:"online"`
	Sample []any `json:"sample"`
}

type statusDescription struct {
	Text string `json:"text"`
}

type statusResponseBody struct {
	Version            statusVersion     `json:"version"`
	Players            statusPlayers     `json:"players"`
	Description        statusDescription `json:"description"`
	EnforcesSecureChat bool              `json:"enforcesSecureChat"`
}

// handleStatusRequest answers the server-list ping with the current
// player count and configured MOTD. The connection stays in Status
// afterwards to receive the matching PingRequest.
func handleStatusRequest(c *conn, wire *jp.WirePacket) error {
	if _, err := decodeAs[packets.StatusRequest](wire); err != nil {
		return err
	}

	body := statusResponseBody{
		Version:     statusVersion{Name: VersionName, Protocol: ProtocolVersion},
		Players:     statusPlayers{Max: c.server.Config.MaxPlayers, Online: c.server.players.count(), Sample: []any{}},
		Description: statusDescription{Text: c.server.Config.MOTD},
	}
	blob, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return c.send(&packets.StatusResponse{JSON: ns.String(blob)})
}

func handlePingRequest(c *conn, wire *jp.WirePacket) error {
	p, err := decodeAs[packets.PingRequest](wire)
	if err != nil {
		return err
	}
	if err := c.send(&packets.PongResponse{Payload: p.Timestamp}); err != nil {
		return err
	}
	// A status exchange ends with the pong: close the connection.
	return c.netConn.Close()
}
