package net

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/mdns"
)

const ServiceType = "_sketchboard._tcp"

// Board is a SketchBoard instance found on the LAN.
type Board struct {
	Name    string
	Addr    string
	Session string
}

// Advertise announces the pointer bridge on port. Shut the returned server
// down when the bridge stops.
func Advertise(port int, session string) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	info := []string{"SketchBoard", "session=" + session, "path=" + BridgePath}
	service, err := mdns.NewMDNSService(host, ServiceType, "", "", port, nil, info)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	log.Printf("[MDNS] Advertising %s on port %d", ServiceType, port)
	return server, nil
}

// Browse queries the LAN for boards until timeout, calling found for each
// usable answer.
func Browse(timeout time.Duration, found func(Board)) error {
	entries := make(chan *mdns.ServiceEntry, 8)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for e := range entries {
			if b, ok := boardFromEntry(e); ok {
				found(b)
			}
		}
	}()

	params := mdns.DefaultParams(ServiceType)
	params.Entries = entries
	params.Timeout = timeout
	err := mdns.Query(params)
	close(entries)
	wg.Wait()
	if err != nil {
		return fmt.Errorf("mDNS query: %w", err)
	}
	return nil
}

func boardFromEntry(e *mdns.ServiceEntry) (Board, bool) {
	if e == nil || e.AddrV4 == nil || e.Port == 0 {
		return Board{}, false
	}
	b := Board{
		Name: strings.TrimSuffix(e.Name, "."),
		Addr: fmt.Sprintf("%s:%d", e.AddrV4.String(), e.Port),
	}
	for _, f := range e.InfoFields {
		if v, ok := strings.CutPrefix(f, "session="); ok {
			b.Session = v
		}
	}
	return b, true
}
