package net

import (
	"fmt"
	"log"
	"net"
	"strings"
)

const (
	// ShareScheme prefixes links handed to remote pointer devices.
	ShareScheme       = "sketchboard://"
	DefaultBridgePort = 8888
)

// routeTarget only picks a route; dialing UDP sends no packet.
const routeTarget = "8.8.8.8:80"

// LANHost is the address other devices should use to reach this machine:
// the source address of the default route, else the first private IPv4 on
// an interface that is up, else loopback.
func LANHost() string {
	if ip := routeIP(routeTarget); ip != nil {
		return ip.String()
	}
	if ip := privateIP(); ip != nil {
		return ip.String()
	}
	log.Println("[NET] No LAN address found, share link will use loopback")
	return "127.0.0.1"
}

func routeIP(target string) net.IP {
	conn, err := net.Dial("udp4", target)
	if err != nil {
		return nil
	}
	defer conn.Close()
	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok || addr.IP.IsLoopback() {
		return nil
	}
	return addr.IP
}

func privateIP() net.IP {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, a := range addrs {
			if n, ok := a.(*net.IPNet); ok {
				if ip4 := n.IP.To4(); ip4 != nil && ip4.IsPrivate() {
					return ip4
				}
			}
		}
	}
	return nil
}

// ShareLink is the link shown to users for pairing a pointer device.
func ShareLink(host string, port int) string {
	return fmt.Sprintf("%s%s%s", ShareScheme, net.JoinHostPort(host, fmt.Sprint(port)), BridgePath)
}

// BridgeURL turns a share link or a bare host:port into the websocket URL
// of the bridge.
func BridgeURL(link string) string {
	link = strings.TrimPrefix(link, ShareScheme)
	link = strings.TrimPrefix(link, "ws://")
	if !strings.Contains(link, "/") {
		link += BridgePath
	}
	return "ws://" + link
}
