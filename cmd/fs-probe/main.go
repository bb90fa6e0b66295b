package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"FlowScope/internal/config"
	"FlowScope/internal/probe"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcap"
)

const defaultSnapshotLen int32 = 1600

func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to the configuration file.")
	iface := flag.String("iface", "", "Interface to capture from (overrides the configured one).")
	flag.Parse()

	// 1. Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	interfaceName := cfg.Probe.Interface
	if *iface != "" {
		interfaceName = *iface
	}
	if interfaceName == "" {
		log.Fatalf("No capture interface configured; set probe.interface or pass -iface.")
	}
	snapshotLen := cfg.Probe.SnapshotLen
	if snapshotLen <= 0 {
		snapshotLen = defaultSnapshotLen
	}

	// 2. Initialize NATS publisher
	pub, err := probe.NewPublisher(cfg.Probe.NATSURL, cfg.Probe.Subject)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer pub.Close()

	// 3. Open device for live capture
	handle, err := pcap.OpenLive(interfaceName, snapshotLen, cfg.Probe.Promiscuous, pcap.BlockForever)
	if err != nil {
		log.Fatalf("Error opening device %s: %v", interfaceName, err)
	}
	defer handle.Close()
	log.Printf("Capture started on %s. Publishing flow records to NATS...", interfaceName)

	// 4. Graceful shutdown on signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// 5. Process packets until interrupted
	packetSource := gopacket.NewPacketSource(handle, handle.LinkType())
	go func() {
		for packet := range packetSource.Packets() {
			rec, err := probe.ParsePacket(packet.Data())
			if err != nil {
				// Non-IPv4 traffic is out of capture scope.
				continue
			}
			if err := pub.Publish(rec); err != nil {
				log.Printf("Failed to publish flow record: %v", err)
			}
		}
	}()

	<-sigChan
	log.Println("Shutdown signal received, stopping probe.")
}
