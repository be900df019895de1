package server

import (
	jp "github.com/go-mclib/picocraft/java_protocol"
	"github.com/go-mclib/picocraft/java_protocol/packets"
)

func init() {
	registerHandler(jp.StateLogin, packets.Hello{}.ID(), handleHello)
	registerHandler(jp.StateLogin, packets.LoginAcknowledged{}.ID(), handleLoginAcknowledged)
	registerHandler(jp.StateLogin, packets.CustomQueryAnswer{}.ID(), handleCustomQueryAnswer)
	registerHandler(jp.StateLogin, packets.CookieResponseLogin{}.ID(), handleCookieResponseLogin)
}

// handleHello accepts the client's self-reported name and UUID at face
// value (see the authentication non-goal: there is no Mojang session
// server round trip here) and answers with LoginSuccess immediately.
func handleHello(c *conn, wire *jp.WirePacket) error {
	p, err := decodeAs[packets.Hello](wire)
	if err != nil {
		return err
	}
	c.pendingUsername = string(p.Name)
	c.pendingUUID = p.PlayerUUID
	return c.send(&packets.LoginSuccess{UUID: p.PlayerUUID, Username: p.Name})
}

// handleLoginAcknowledged switches the connection into Configuration once
// the client has acknowledged LoginSuccess.
func handleLoginAcknowledged(c *conn, wire *jp.WirePacket) error {
	if _, err := decodeAs[packets.LoginAcknowledged](wire); err != nil {
		return err
	}
	c.state = jp.StateConfiguration
	return sendConfigurationStart(c)
}

// handleCustomQueryAnswer accepts plugin-channel login responses without
// acting on them: this core declares no login plugin channels of its own.
func handleCustomQueryAnswer(c *conn, wire *jp.WirePacket) error {
	_, err := decodeAs[packets.CustomQueryAnswer](wire)
	return err
}

func handleCookieResponseLogin(c *conn, wire *jp.WirePacket) error {
	_, err := decodeAs[packets.CookieResponseLogin](wire)
	return err
}
